package deck

import (
	"fmt"
	"testing"

	"github.com/cardcaller/musicbingo"
	"github.com/cardcaller/musicbingo/buildlog"
	"github.com/cardcaller/musicbingo/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playlistOf(n int) []bingo.Song {
	out := make([]bingo.Song, n)
	for i := 0; i < n; i++ {
		out[i] = bingo.Song(fmt.Sprintf("S_%03d", i+1))
	}
	return out
}

func ptr(v int) *int { return &v }

func TestAssembleWithoutTargetsUsesRandomConstructor(t *testing.T) {
	playlist := playlistOf(50)
	d, err := Assemble(playlist, 5, 3, nil, nil, nil, true, rng.New(1), buildlog.New())
	require.NoError(t, err)
	require.Len(t, d.Cards, 5)
	for _, c := range d.Cards {
		assert.Equal(t, bingo.FreeSpace, c.Cells[1][1])
	}
}

func TestAssembleAssignsAllThreeRolesWhenEnoughSlots(t *testing.T) {
	playlist := playlistOf(100)
	d, err := Assemble(playlist, 10, 5, ptr(10), ptr(20), ptr(30), true, rng.New(4), buildlog.New())
	require.NoError(t, err)
	require.Len(t, d.Cards, 10)

	roles := make(map[bingo.Role]int)
	for _, c := range d.Cards {
		roles[c.Role]++
	}
	assert.Equal(t, 1, roles[bingo.RoleA])
	assert.Equal(t, 1, roles[bingo.RoleB])
	assert.Equal(t, 1, roles[bingo.RoleC])
	assert.Equal(t, 7, roles[bingo.RoleOther])
}

func TestAssembleDropsRolesWhenTooFewSlots(t *testing.T) {
	playlist := playlistOf(100)
	d, err := Assemble(playlist, 2, 5, ptr(10), ptr(20), ptr(30), true, rng.New(4), buildlog.New())
	require.NoError(t, err)
	require.Len(t, d.Cards, 2)

	roles := make(map[bingo.Role]int)
	for _, c := range d.Cards {
		roles[c.Role]++
	}
	assert.LessOrEqual(t, roles[bingo.RoleA]+roles[bingo.RoleB]+roles[bingo.RoleC], 2)
}

func TestAssembleRejectsInfeasibleTargets(t *testing.T) {
	playlist := playlistOf(50)
	_, err := Assemble(playlist, 5, 5, ptr(20), ptr(10), ptr(30), true, rng.New(1), buildlog.New())
	require.Error(t, err)
	var verr *bingo.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAssembleInfersDefaultR1R2(t *testing.T) {
	playlist := playlistOf(100)
	// r1, r2 nil: defaults resolve to max(N, 0.35R)=max(5,10)=10 and
	// max(2N, 0.65R)=max(10,19)=19. Should build without error.
	d, err := Assemble(playlist, 5, 5, nil, nil, ptr(30), true, rng.New(1), buildlog.New())
	require.NoError(t, err)
	assert.Len(t, d.Cards, 5)
}

func TestAssembleDoesNotRevealRolesBySlotOrder(t *testing.T) {
	playlist := playlistOf(100)
	seenFirstSlotRole := make(map[bingo.Role]bool)
	for seed := int64(0); seed < 20; seed++ {
		d, err := Assemble(playlist, 5, 5, ptr(10), ptr(20), ptr(30), true, rng.New(seed), buildlog.New())
		require.NoError(t, err)
		seenFirstSlotRole[d.Cards[0].Role] = true
	}
	assert.Greater(t, len(seenFirstSlotRole), 1, "role assignment must vary across seeds, not be pinned to a slot")
}
