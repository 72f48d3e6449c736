// internal/poller/types.go
package poller

import "time"

// PollResult is a snapshot produced when a response frame is consumed.
type PollResult struct {
	At time.Time

	// Value is the scaled display value.
	Value float64

	// Raw is the lossy-ASCII response text the value was decoded
	// from, kept for diagnostics.
	Raw string

	Err error // non-nil means the frame was malformed; never fatal
}
