package debounce

import (
	"testing"
	"time"
)

func TestEdit_OnlyLatestTimerCommits(t *testing.T) {
	in := New(DefaultQuiet)

	// Edits at t, t+100, t+200: each schedules a timer, each supersedes the
	// previous one. Only the last may fire.
	seq1, wait := in.Edit("p")
	if wait != DefaultQuiet {
		t.Fatalf("wait = %v, want %v", wait, DefaultQuiet)
	}
	seq2, _ := in.Edit("ph")
	seq3, _ := in.Edit("phone")

	if _, ok := in.Expire(seq1); ok {
		t.Fatal("stale timer seq1 should not commit")
	}
	if _, ok := in.Expire(seq2); ok {
		t.Fatal("stale timer seq2 should not commit")
	}
	v, ok := in.Expire(seq3)
	if !ok || v != "phone" {
		t.Fatalf("Expire(seq3) = (%q, %v), want (\"phone\", true)", v, ok)
	}
	if in.Committed() != "phone" {
		t.Fatalf("Committed = %q, want %q", in.Committed(), "phone")
	}
}

func TestExpire_UnchangedValueEmitsNothing(t *testing.T) {
	in := New(time.Millisecond)
	seq, _ := in.Edit("phone")
	if _, ok := in.Expire(seq); !ok {
		t.Fatal("first commit should fire")
	}

	// Typing the committed value again must not re-emit.
	seq, _ = in.Edit("phone")
	if _, ok := in.Expire(seq); ok {
		t.Fatal("commit of unchanged value should be suppressed")
	}
}

func TestReset_AdoptsExternalValueSilently(t *testing.T) {
	in := New(time.Millisecond)
	seq, _ := in.Edit("phone")

	// A sibling action cleared the committed value externally.
	in.Reset("")
	if in.Buffer() != "" {
		t.Fatalf("Buffer = %q, want empty after reset", in.Buffer())
	}
	if _, ok := in.Expire(seq); ok {
		t.Fatal("pending timer must be invalidated by reset")
	}

	// Resetting to the already-buffered value produces zero commits.
	in.Reset("")
	seq, _ = in.Edit("")
	if _, ok := in.Expire(seq); ok {
		t.Fatal("reset to identical value should not re-emit")
	}
}

func TestClear_ImmediateAndIdempotent(t *testing.T) {
	in := New(time.Millisecond)
	seq, _ := in.Edit("phone")

	v, ok := in.Clear()
	if !ok || v != "" {
		t.Fatalf("Clear = (%q, %v), want (\"\", true)", v, ok)
	}
	if _, ok := in.Expire(seq); ok {
		t.Fatal("clear must invalidate the pending timer")
	}

	// Second clear is a no-op.
	if _, ok := in.Clear(); ok {
		t.Fatal("Clear on an empty buffer should be a no-op")
	}
}

func TestNew_NonPositiveQuietUsesDefault(t *testing.T) {
	in := New(0)
	if _, wait := in.Edit("x"); wait != DefaultQuiet {
		t.Fatalf("wait = %v, want %v", wait, DefaultQuiet)
	}
}
