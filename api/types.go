package api

import (
	"context"

	"board-api/domain"
	"board-api/store"
)

// Board is the operation surface handlers invoke. It mirrors the board
// store one-to-one: discrete intents in, committed snapshots out.
type Board interface {
	Snapshot() domain.BoardState
	View() domain.BoardView
	AddCard(listID, title, description string) domain.Card
	UpdateCard(cardID, title, description string) domain.BoardState
	DeleteCard(cardID string) domain.BoardState
	ReorderCards(sourceListID, cardID, targetListID string) domain.BoardState
	AddList(title string) domain.List
	ToggleTheme() domain.Theme
	SetSearchTerm(term string) domain.BoardState
	Subscribe(fn func(store.Change))
}

// Deduper prevents reapplying duplicate mutation intents.
type Deduper interface {
	// Add records the idempotency key and returns true if it was newly added.
	Add(ctx context.Context, key string) (bool, error)
}
