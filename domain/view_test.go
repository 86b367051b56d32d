package domain

import (
	"reflect"
	"testing"
)

func viewFixture() BoardState {
	return BoardState{
		Lists: []List{
			{ID: "list-b", Title: "Second", Order: 1},
			{ID: "list-a", Title: "First", Order: 0},
		},
		Cards: []Card{
			{ID: "card-1", ListID: "list-a", Title: "Buy milk", Description: "", CreatedAt: 100},
			{ID: "card-2", ListID: "list-a", Title: "Clean", Description: "", CreatedAt: 200},
			{ID: "card-3", ListID: "list-b", Title: "Call plumber", Description: "about the milk frother", CreatedAt: 300},
			{ID: "card-4", ListID: "list-gone", Title: "Orphan", Description: "", CreatedAt: 400},
		},
		Theme: ThemeLight,
	}
}

func TestNewBoardViewSortsListsByOrder(t *testing.T) {
	view := NewBoardView(viewFixture())
	if len(view.Lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(view.Lists))
	}
	if view.Lists[0].List.ID != "list-a" || view.Lists[1].List.ID != "list-b" {
		t.Fatalf("lists not sorted by order: %s, %s", view.Lists[0].List.ID, view.Lists[1].List.ID)
	}
}

func TestNewBoardViewSortsCardsNewestFirst(t *testing.T) {
	view := NewBoardView(viewFixture())
	cards := view.Lists[0].Cards
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards in list-a, got %d", len(cards))
	}
	if cards[0].ID != "card-2" || cards[1].ID != "card-1" {
		t.Fatalf("cards not newest first: %s, %s", cards[0].ID, cards[1].ID)
	}
}

func TestNewBoardViewDropsOrphanedCards(t *testing.T) {
	view := NewBoardView(viewFixture())
	for _, lv := range view.Lists {
		for _, c := range lv.Cards {
			if c.ID == "card-4" {
				t.Fatalf("orphaned card rendered under list %s", lv.List.ID)
			}
		}
	}
}

func TestNewBoardViewFiltersCaseInsensitively(t *testing.T) {
	state := viewFixture()
	state.SearchTerm = "MILK"
	view := NewBoardView(state)

	var got []string
	for _, lv := range view.Lists {
		for _, c := range lv.Cards {
			got = append(got, c.ID)
		}
	}
	// Title match in list-a, description match in list-b.
	want := []string{"card-1", "card-3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("filtered cards = %v, want %v", got, want)
	}
}

func TestNewBoardViewEmptyTermIncludesAll(t *testing.T) {
	state := viewFixture()
	state.SearchTerm = ""
	view := NewBoardView(state)
	total := 0
	for _, lv := range view.Lists {
		total += len(lv.Cards)
	}
	// card-4 is orphaned; the other three render.
	if total != 3 {
		t.Fatalf("expected 3 visible cards, got %d", total)
	}
}

func TestNewBoardViewDoesNotMutateState(t *testing.T) {
	state := viewFixture()
	before := state.Clone()
	state.SearchTerm = "milk"
	before.SearchTerm = "milk"
	_ = NewBoardView(state)
	if !reflect.DeepEqual(state, before) {
		t.Fatalf("projection mutated the canonical state")
	}
}

func TestMatchesSearch(t *testing.T) {
	card := Card{Title: "Buy milk", Description: "two liters"}
	cases := []struct {
		term string
		want bool
	}{
		{"", true},
		{"milk", true},
		{"MILK", true},
		{"liters", true},
		{"bread", false},
	}
	for _, tc := range cases {
		if got := card.MatchesSearch(tc.term); got != tc.want {
			t.Fatalf("MatchesSearch(%q) = %v, want %v", tc.term, got, tc.want)
		}
	}
}
