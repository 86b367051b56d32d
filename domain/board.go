package domain

// Theme is the board display mode propagated to the presentation layer.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite display mode.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// List is a named, ordered column grouping cards. ColorVar is a display
// token the core treats as opaque. Order is assigned once at creation
// and never reassigned.
type List struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ColorVar string `json:"colorVar"`
	Order    int    `json:"order"`
}

// Card is a single work item belonging to exactly one list. CreatedAt
// is the creation instant in Unix milliseconds and only drives display
// ordering. ListID may dangle after external edits of the persisted
// document; orphaned cards are dropped from views, never a failure.
type Card struct {
	ID          string `json:"id"`
	ListID      string `json:"listId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
}

// BoardState is the full persisted aggregate. It is serialized and
// loaded as one document, never partial fields.
type BoardState struct {
	Lists      []List `json:"lists"`
	Cards      []Card `json:"cards"`
	Theme      Theme  `json:"theme"`
	SearchTerm string `json:"searchTerm"`
}

// Clone returns a deep copy so callers never alias the canonical
// collections held by the board store.
func (s BoardState) Clone() BoardState {
	out := BoardState{Theme: s.Theme, SearchTerm: s.SearchTerm}
	if s.Lists != nil {
		out.Lists = make([]List, len(s.Lists))
		copy(out.Lists, s.Lists)
	}
	if s.Cards != nil {
		out.Cards = make([]Card, len(s.Cards))
		copy(out.Cards, s.Cards)
	}
	return out
}

// CardIndex returns the position of the card with the given id, or -1.
func (s BoardState) CardIndex(id string) int {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			return i
		}
	}
	return -1
}
