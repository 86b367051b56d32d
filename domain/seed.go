package domain

import "time"

// DefaultListColor is the display token assigned to lists created at runtime.
const DefaultListColor = "--list-neutral"

// SeedBoard returns the fixed fallback state used when no persisted
// document exists or the stored one is unreadable.
func SeedBoard() BoardState {
	base := time.Now().Add(-time.Hour).UnixMilli()
	return BoardState{
		Lists: []List{
			{ID: "list-1", Title: "To Do", ColorVar: "--list-todo", Order: 0},
			{ID: "list-2", Title: "In Progress", ColorVar: "--list-progress", Order: 1},
			{ID: "list-3", Title: "Done", ColorVar: "--list-done", Order: 2},
		},
		Cards: []Card{
			{ID: "card-1", ListID: "list-1", Title: "Plan the sprint", Description: "Collect open items and rough estimates", CreatedAt: base},
			{ID: "card-2", ListID: "list-1", Title: "Review pull requests", Description: "Two reviews pending since yesterday", CreatedAt: base + 60_000},
			{ID: "card-3", ListID: "list-2", Title: "Fix login redirect", Description: "Redirect loops when the session expires", CreatedAt: base + 120_000},
			{ID: "card-4", ListID: "list-3", Title: "Update dependencies", Description: "", CreatedAt: base + 180_000},
		},
		Theme:      ThemeLight,
		SearchTerm: "",
	}
}
