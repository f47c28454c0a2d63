package cardgen

import "github.com/cardcaller/musicbingo"

// rowEmptyCells returns the still-empty, non-FREE cells of one row, in
// column order.
func rowEmptyCells(b *builder, row int) [][2]int {
	var out [][2]int
	for col := 0; col < b.n; col++ {
		if b.isEmpty(row, col) {
			out = append(out, [2]int{row, col})
		}
	}
	return out
}

// centerCrossCells returns the still-empty cells of the center row and
// center column combined, deduplicating the shared cell so it is only
// counted once (§4.4.3: "sharing the FREE cell when present").
func centerCrossCells(b *builder) [][2]int {
	row, col := b.center()
	var out [][2]int
	seen := make(map[[2]int]bool)
	for c := 0; c < b.n; c++ {
		cell := [2]int{row, c}
		if b.isEmpty(cell[0], cell[1]) && !seen[cell] {
			out = append(out, cell)
			seen[cell] = true
		}
	}
	for r := 0; r < b.n; r++ {
		cell := [2]int{r, col}
		if b.isEmpty(cell[0], cell[1]) && !seen[cell] {
			out = append(out, cell)
			seen[cell] = true
		}
	}
	return out
}

// offCrossCells returns the still-empty cells that lie on neither the
// center row nor the center column, for the Card C blocker (§4.4.3 step 3).
func offCrossCells(b *builder) [][2]int {
	row, col := b.center()
	var out [][2]int
	for r := 0; r < b.n; r++ {
		if r == row {
			continue
		}
		for c := 0; c < b.n; c++ {
			if c == col {
				continue
			}
			if b.isEmpty(r, c) {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

// filterUnused returns the subset of pool not present in used.
func filterUnused(pool []bingo.Song, used map[bingo.Song]bool) []bingo.Song {
	out := make([]bingo.Song, 0, len(pool))
	for _, s := range pool {
		if !used[s] {
			out = append(out, s)
		}
	}
	return out
}
