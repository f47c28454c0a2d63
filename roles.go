package bingo

// Role identifies which of the four card constructors built a card. The
// deck assembler chooses one role per slot before any card body is built
// (§4.4.5 step 4); the role is never revealed by a card's position in the
// deck.
type Role string

const (
	// RoleA is the blackout-at-exactly-R constructor. Exactly one card per
	// deck is assigned this role when targets are given and K >= 1.
	RoleA Role = "blackout"
	// RoleB is the one-line-at-exactly-r1 constructor, blocked from an
	// earlier blackout by a LATE song off the target line.
	RoleB Role = "one_line"
	// RoleC is the two-lines-at-exactly-r2 constructor, blocked the same
	// way as RoleB.
	RoleC Role = "two_lines"
	// RoleOther is used for every slot not chosen for A, B, or C. In a deck
	// built with targets it still carries a blocker so it cannot blackout
	// before R; in a deck built without targets every card has this role
	// and none carries a blocker.
	RoleOther Role = "other"
)

// AllRoles is every role this module builds cards for.
var AllRoles = []Role{RoleA, RoleB, RoleC, RoleOther}

// Quality flags soft construction issues that don't rise to a fatal error.
type Quality string

const (
	// QualityOnTarget is the default quality. For a Role A card it means the
	// retry loop found a candidate that met the line-avoidance thresholds;
	// cards of every other role are not checked and always carry it.
	QualityOnTarget Quality = "on_target"
	// QualityBestEffort means the retry budget for a Role A card was
	// exhausted without meeting the line-avoidance thresholds, and the
	// last candidate was accepted anyway (§7 BestEffortAcceptance).
	QualityBestEffort Quality = "best_effort"
)

// Targets is the operator-chosen round triple (r1, r2, R). Each field is a
// 1-based round index, or nil when the caller wants it inferred.
type Targets struct {
	First  *int `json:"first,omitempty"`
	Second *int `json:"second,omitempty"`
	Full   *int `json:"full,omitempty"`
}

// MilestoneRecord is the per-card result of a simulation run: the
// smallest round at which each milestone became true, and which place (if
// any) the card won. A nil field means the milestone never triggered
// during the playlist.
type MilestoneRecord struct {
	CardIndex int  `json:"card_index"`
	OneLine   *int `json:"one_line,omitempty"`
	TwoLines  *int `json:"two_lines,omitempty"`
	Full      *int `json:"full,omitempty"`
	Place     *int `json:"place,omitempty"`
}
