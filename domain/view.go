package domain

import (
	"sort"
	"strings"
)

// ListView pairs a list with the cards visible under it.
type ListView struct {
	List  List   `json:"list"`
	Cards []Card `json:"cards"`
}

// BoardView is the derived presentation projection of a BoardState:
// lists in stable ascending Order, cards filtered by the search term
// and sorted newest first. It is recomputed on every read and never
// mutates the canonical collections.
type BoardView struct {
	Lists      []ListView `json:"lists"`
	Theme      Theme      `json:"theme"`
	SearchTerm string     `json:"searchTerm"`
}

// MatchesSearch reports whether the card's title or description
// contains term case-insensitively. An empty term matches everything.
func (c Card) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle)
}

// NewBoardView computes the projection for the given state. Cards whose
// ListID references no known list are dropped.
func NewBoardView(s BoardState) BoardView {
	lists := make([]List, len(s.Lists))
	copy(lists, s.Lists)
	sort.SliceStable(lists, func(i, j int) bool { return lists[i].Order < lists[j].Order })

	byList := make(map[string][]Card, len(lists))
	for _, c := range s.Cards {
		if !c.MatchesSearch(s.SearchTerm) {
			continue
		}
		byList[c.ListID] = append(byList[c.ListID], c)
	}

	view := BoardView{
		Lists:      make([]ListView, 0, len(lists)),
		Theme:      s.Theme,
		SearchTerm: s.SearchTerm,
	}
	for _, l := range lists {
		cards := byList[l.ID]
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].CreatedAt > cards[j].CreatedAt })
		view.Lists = append(view.Lists, ListView{List: l, Cards: cards})
	}
	return view
}
