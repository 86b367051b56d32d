package storage

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"board-api/domain"
	"board-api/store"
)

// Saver is the persistence operation the writer drives.
type Saver interface {
	Save(ctx context.Context, state domain.BoardState) error
}

// Writer persists committed board snapshots in the background. A single
// worker drains the buffered channel so document writes never reorder;
// when the buffer is saturated the commit is saved inline instead of
// being dropped. Write failures are logged and never propagate back to
// the in-memory state, which stays authoritative for the session.
type Writer struct {
	saver          Saver
	logger         *log.Logger
	jobs           chan store.Change
	handoffTimeout time.Duration
	saveTimeout    time.Duration

	saveMu    sync.Mutex
	lastSaved uint64
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWriter creates a Writer with the given buffer size and timeouts.
func NewWriter(saver Saver, logger *log.Logger, buffer int, handoffTimeout, saveTimeout time.Duration) *Writer {
	if logger == nil {
		panic("logger is required")
	}
	if buffer <= 0 {
		buffer = 256
	}
	if saveTimeout <= 0 {
		saveTimeout = 10 * time.Second
	}
	return &Writer{
		saver:          saver,
		logger:         logger,
		jobs:           make(chan store.Change, buffer),
		handoffTimeout: handoffTimeout,
		saveTimeout:    saveTimeout,
	}
}

// Start launches the background worker.
func (w *Writer) Start() {
	w.wg.Add(1)
	go w.worker()
}

// Close drains outstanding snapshots and stops the worker.
func (w *Writer) Close() {
	w.closeOnce.Do(func() {
		close(w.jobs)
	})
	w.wg.Wait()
}

// Commit is the subscriber entry point: it hands the snapshot to the
// worker, waiting at most the handoff timeout, and saves inline when
// the buffer stays saturated.
func (w *Writer) Commit(ch store.Change) {
	if ok, closed := w.trySend(ch); closed {
		return
	} else if ok {
		return
	}

	if w.handoffTimeout > 0 {
		timer := time.NewTimer(w.handoffTimeout)
		ok, closed := w.sendWithTimer(ch, timer.C)
		timer.Stop()
		if closed || ok {
			return
		}
	}

	w.logger.Warn("save buffer saturated; persisting inline")
	w.save(ch)
}

func (w *Writer) worker() {
	defer w.wg.Done()
	for ch := range w.jobs {
		w.save(ch)
	}
}

// save writes the snapshot unless a newer one has already been
// persisted. saveMu is held across the guard check and the write
// itself: the worker and an inline caller can both reach here, and an
// older write still in flight must not land after a newer one.
func (w *Writer) save(ch store.Change) {
	w.saveMu.Lock()
	defer w.saveMu.Unlock()

	if ch.Seq <= w.lastSaved {
		return
	}
	w.lastSaved = ch.Seq

	ctx, cancel := context.WithTimeout(context.Background(), w.saveTimeout)
	err := w.saver.Save(ctx, ch.State)
	cancel()
	if err != nil {
		w.logger.WithError(err).WithField("seq", ch.Seq).Warn("board save failed; in-memory state remains authoritative")
	}
}

func (w *Writer) trySend(ch store.Change) (ok bool, closed bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			closed = true
		}
	}()

	select {
	case w.jobs <- ch:
		return true, false
	default:
		return false, false
	}
}

func (w *Writer) sendWithTimer(ch store.Change, timer <-chan time.Time) (ok bool, closed bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			closed = true
		}
	}()

	select {
	case w.jobs <- ch:
		return true, false
	case <-timer:
		return false, false
	}
}
