package domain

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastStamp int64

// nextStamp returns a strictly increasing nanosecond stamp. Two calls
// within the same clock tick still produce distinct values.
func nextStamp() int64 {
	for {
		now := time.Now().UnixNano()
		last := atomic.LoadInt64(&lastStamp)
		if now <= last {
			now = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastStamp, last, now) {
			return now
		}
	}
}

// NewCardID generates a card id unique for the process lifetime and
// across persisted sessions.
func NewCardID() string {
	return "card-" + strconv.FormatInt(nextStamp(), 36)
}

// NewListID generates a list id with the same guarantees as NewCardID.
func NewListID() string {
	return "list-" + strconv.FormatInt(nextStamp(), 36)
}

// Now returns the current instant in Unix milliseconds, the resolution
// CreatedAt is stored at.
func Now() int64 {
	return time.Now().UnixMilli()
}
