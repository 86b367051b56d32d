package domain

import (
	"reflect"
	"testing"
)

func TestThemeToggleTwiceRestores(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark {
		t.Fatalf("light should toggle to dark")
	}
	if got := ThemeLight.Toggle().Toggle(); got != ThemeLight {
		t.Fatalf("double toggle = %q, want light", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := SeedBoard()
	clone := original.Clone()
	if !reflect.DeepEqual(original, clone) {
		t.Fatalf("clone differs from original")
	}

	clone.Cards[0].Title = "tampered"
	clone.Lists[0].Title = "tampered"
	if original.Cards[0].Title == "tampered" || original.Lists[0].Title == "tampered" {
		t.Fatalf("clone aliases the original collections")
	}
}

func TestSeedBoardShape(t *testing.T) {
	seed := SeedBoard()
	if len(seed.Lists) != 3 {
		t.Fatalf("expected 3 seed lists, got %d", len(seed.Lists))
	}
	if len(seed.Cards) != 4 {
		t.Fatalf("expected 4 seed cards, got %d", len(seed.Cards))
	}
	for i, l := range seed.Lists {
		if l.Order != i {
			t.Fatalf("seed list %s has order %d, want %d", l.ID, l.Order, i)
		}
	}
	if seed.Theme != ThemeLight {
		t.Fatalf("seed theme = %q, want light", seed.Theme)
	}
	for i := 1; i < len(seed.Cards); i++ {
		if seed.Cards[i].CreatedAt <= seed.Cards[i-1].CreatedAt {
			t.Fatalf("seed card timestamps are not staggered")
		}
	}
}

func TestCardIndex(t *testing.T) {
	seed := SeedBoard()
	if i := seed.CardIndex("card-3"); i < 0 || seed.Cards[i].ID != "card-3" {
		t.Fatalf("CardIndex failed to locate card-3, got %d", i)
	}
	if i := seed.CardIndex("card-missing"); i != -1 {
		t.Fatalf("CardIndex for missing card = %d, want -1", i)
	}
}
