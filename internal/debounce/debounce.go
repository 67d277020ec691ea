// Package debounce converts a rapid stream of text edits into a throttled
// stream of committed values. The core is scheduler-agnostic: Edit returns a
// sequence number and a wait duration, and the caller schedules the timer
// (the UI uses tea.Tick; tests call Expire directly). Only the latest
// sequence number can ever commit, so cancel-and-reschedule is just "bump
// the sequence".
//
// All methods must be called from a single goroutine; the Bubble Tea update
// loop satisfies that.
package debounce

import "time"

// DefaultQuiet is the quiet period after the last edit before a commit.
const DefaultQuiet = 450 * time.Millisecond

// Input buffers raw edits and commits them after a quiet period.
type Input struct {
	quiet     time.Duration
	seq       int
	buffer    string
	committed string
}

// New returns an Input with the given quiet period. Non-positive durations
// fall back to DefaultQuiet.
func New(quiet time.Duration) *Input {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Input{quiet: quiet}
}

// Edit records a raw edit and invalidates any pending commit. The caller
// should schedule a timer for the returned wait and then call Expire with
// the returned sequence number.
func (in *Input) Edit(v string) (seq int, wait time.Duration) {
	in.buffer = v
	in.seq++
	return in.seq, in.quiet
}

// Expire fires a previously scheduled debounce timer. It commits the buffer
// only when seq is still the latest edit and the buffer actually differs
// from the committed value; a stale timer or an unchanged value emits
// nothing.
func (in *Input) Expire(seq int) (string, bool) {
	if seq != in.seq {
		return "", false
	}
	if in.buffer == in.committed {
		return "", false
	}
	in.committed = in.buffer
	return in.committed, true
}

// Reset adopts an externally applied value. The buffer reflects it
// immediately, any pending timer is invalidated, and nothing is emitted.
func (in *Input) Reset(v string) {
	in.buffer = v
	in.committed = v
	in.seq++
}

// Clear bypasses the debounce and commits an empty string immediately. It is
// a no-op when the buffer is already empty.
func (in *Input) Clear() (string, bool) {
	if in.buffer == "" {
		return "", false
	}
	in.buffer = ""
	in.committed = ""
	in.seq++
	return "", true
}

// Buffer returns the latest raw edit, committed or not.
func (in *Input) Buffer() string {
	return in.buffer
}

// Committed returns the last committed value.
func (in *Input) Committed() string {
	return in.committed
}
