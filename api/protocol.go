package api

import "board-api/domain"

const intentMaxSize = 64 * 1024 // 64 KiB

type addListRequest struct {
	Title string `json:"title"`
}

type addCardRequest struct {
	ListID      string `json:"listId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateCardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// moveCardRequest is the terminal drop event of a drag gesture. The
// source list is part of the payload for gesture symmetry only; the
// board ignores it.
type moveCardRequest struct {
	SourceListID   string `json:"sourceListId"`
	TargetListID   string `json:"targetListId"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

type moveCardResponse struct {
	IdempotencyKey string `json:"idempotencyKey"`
}

type searchRequest struct {
	Term string `json:"term"`
}

type themeResponse struct {
	Theme domain.Theme `json:"theme"`
}
