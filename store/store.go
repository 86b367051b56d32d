package store

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"board-api/domain"
)

// Loader reads a previously persisted board document. ok is false when
// no document exists under the board key.
type Loader interface {
	Load(ctx context.Context) (state domain.BoardState, ok bool, err error)
}

// Change describes one committed state transition. Seq increases by
// exactly one per commit, so subscribers can detect and discard stale
// snapshots.
type Change struct {
	Seq   uint64
	State domain.BoardState
}

// BoardStore is the single authoritative holder of the board aggregate.
// Every mutation goes through its operation set; each committed
// transition notifies subscribers exactly once with a deep copy of the
// new state. Operations never fail: an unmatched entity id is a silent
// no-op that still commits, so a stale UI reference can never surface
// as an error.
type BoardStore struct {
	logger *log.Logger

	mu    sync.Mutex
	state domain.BoardState
	seq   uint64

	subMu sync.Mutex
	subs  []func(Change)
}

// New creates a store holding the seed board.
func New(logger *log.Logger) *BoardStore {
	return &BoardStore{logger: logger, state: domain.SeedBoard()}
}

// Load adopts a previously persisted snapshot when one exists and
// parses; otherwise the seed state stays in place. It never fails and
// triggers no persistence side effect.
func (s *BoardStore) Load(ctx context.Context, loader Loader) {
	state, ok, err := loader.Load(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("board document unreadable, keeping seed state")
		return
	}
	if !ok {
		s.logger.Debug("no persisted board document, keeping seed state")
		return
	}
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Subscribe registers fn to be called once per committed transition.
// Subscribers receive a snapshot they may read but must not retain as
// mutable state; each commit hands out a fresh deep copy.
func (s *BoardStore) Subscribe(fn func(Change)) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

// Snapshot returns a deep copy of the current state.
func (s *BoardStore) Snapshot() domain.BoardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// View computes the filtered, sorted read projection of the current state.
func (s *BoardStore) View() domain.BoardView {
	return domain.NewBoardView(s.Snapshot())
}

// commit replaces the canonical state, bumps the sequence and notifies
// subscribers outside the state lock.
func (s *BoardStore) commit(mutate func(*domain.BoardState)) domain.BoardState {
	s.mu.Lock()
	next := s.state.Clone()
	mutate(&next)
	s.state = next
	s.seq++
	change := Change{Seq: s.seq, State: next.Clone()}
	s.mu.Unlock()

	s.subMu.Lock()
	subs := s.subs
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(change)
	}
	return change.State
}

// SetCardList rewrites the owning list of the matching card. Writing
// the current list id again is an idempotent success, and an unmatched
// card id leaves the collections untouched; both still commit.
func (s *BoardStore) SetCardList(cardID, listID string) domain.BoardState {
	return s.commit(func(st *domain.BoardState) {
		if i := st.CardIndex(cardID); i >= 0 {
			st.Cards[i].ListID = listID
		}
	})
}

// ReorderCards applies a drop intent. The source list id is part of the
// gesture payload for signature symmetry only and is ignored; the
// operation delegates entirely to SetCardList.
func (s *BoardStore) ReorderCards(sourceListID, cardID, targetListID string) domain.BoardState {
	_ = sourceListID
	return s.SetCardList(cardID, targetListID)
}

// AddCard appends a new card to the given list and returns it. The
// list id is not validated; referential integrity is the caller's
// concern at creation time per the board contract.
func (s *BoardStore) AddCard(listID, title, description string) domain.Card {
	card := domain.Card{
		ID:          domain.NewCardID(),
		ListID:      listID,
		Title:       title,
		Description: description,
		CreatedAt:   domain.Now(),
	}
	s.commit(func(st *domain.BoardState) {
		st.Cards = append(st.Cards, card)
	})
	return card
}

// UpdateCard replaces title and description on the matching card. ID,
// ListID and CreatedAt are never touched.
func (s *BoardStore) UpdateCard(cardID, title, description string) domain.BoardState {
	return s.commit(func(st *domain.BoardState) {
		if i := st.CardIndex(cardID); i >= 0 {
			st.Cards[i].Title = title
			st.Cards[i].Description = description
		}
	})
}

// DeleteCard removes the matching card from the collection.
func (s *BoardStore) DeleteCard(cardID string) domain.BoardState {
	return s.commit(func(st *domain.BoardState) {
		if i := st.CardIndex(cardID); i >= 0 {
			st.Cards = append(st.Cards[:i], st.Cards[i+1:]...)
		}
	})
}

// AddList appends a new list with the default color token and an Order
// equal to the pre-call list count, and returns it. There is no
// delete-list or reorder-list operation.
func (s *BoardStore) AddList(title string) domain.List {
	var list domain.List
	s.commit(func(st *domain.BoardState) {
		list = domain.List{
			ID:       domain.NewListID(),
			Title:    title,
			ColorVar: domain.DefaultListColor,
			Order:    len(st.Lists),
		}
		st.Lists = append(st.Lists, list)
	})
	return list
}

// ToggleTheme flips the display mode and returns the new value.
func (s *BoardStore) ToggleTheme() domain.Theme {
	state := s.commit(func(st *domain.BoardState) {
		st.Theme = st.Theme.Toggle()
	})
	return state.Theme
}

// SetSearchTerm stores the term verbatim, no trimming or debouncing.
func (s *BoardStore) SetSearchTerm(term string) domain.BoardState {
	return s.commit(func(st *domain.BoardState) {
		st.SearchTerm = term
	})
}
