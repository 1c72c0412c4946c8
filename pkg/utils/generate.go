package utils

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu       sync.Mutex
	lastIssued int64
)

// GenerateBookingID returns a millisecond-timestamp id, bumped past the
// last issued value so ids stay unique and monotonic even within the same
// millisecond. Opaque to clients.
func GenerateBookingID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastIssued {
		now = lastIssued + 1
	}
	lastIssued = now

	return strconv.FormatInt(now, 10)
}
