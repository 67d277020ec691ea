package browse

import "testing"

func TestPage_Derivations(t *testing.T) {
	tests := []struct {
		name       string
		page       Page
		canPrev    bool
		canNext    bool
		number     int
		count      int
	}{
		{"first of three", Page{Offset: 0, PageSize: 12, Total: 34}, false, true, 1, 3},
		{"middle", Page{Offset: 12, PageSize: 12, Total: 34}, true, true, 2, 3},
		{"last partial", Page{Offset: 24, PageSize: 12, Total: 34}, true, false, 3, 3},
		{"exact fit last", Page{Offset: 12, PageSize: 12, Total: 24}, true, false, 2, 2},
		{"empty result", Page{Offset: 0, PageSize: 12, Total: 0}, false, false, 1, 1},
		{"single short page", Page{Offset: 0, PageSize: 12, Total: 5}, false, false, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.CanPrev(); got != tt.canPrev {
				t.Errorf("CanPrev = %v, want %v", got, tt.canPrev)
			}
			if got := tt.page.CanNext(); got != tt.canNext {
				t.Errorf("CanNext = %v, want %v", got, tt.canNext)
			}
			if got := tt.page.Number(); got != tt.number {
				t.Errorf("Number = %d, want %d", got, tt.number)
			}
			if got := tt.page.Count(); got != tt.count {
				t.Errorf("Count = %d, want %d", got, tt.count)
			}
		})
	}
}

func TestPage_InvariantsOverReachableStates(t *testing.T) {
	// Walk every reachable offset for a handful of totals and check the
	// windowing equivalences hold.
	for _, total := range []int{0, 1, 12, 13, 34, 120} {
		f := NewFilters(12)
		for i := 0; i < 20; i++ {
			p := f.PageFor(total)
			if p.CanPrev() != (f.Offset > 0) {
				t.Fatalf("offset %d total %d: CanPrev mismatch", f.Offset, total)
			}
			if p.CanNext() != (f.Offset+f.PageSize < total) {
				t.Fatalf("offset %d total %d: CanNext mismatch", f.Offset, total)
			}
			if f.Offset < 0 || f.Offset%f.PageSize != 0 {
				t.Fatalf("offset %d violates invariants", f.Offset)
			}
			f = f.Advance(total)
		}
		// Retreat all the way back down; never below zero.
		for i := 0; i < 20; i++ {
			f = f.Retreat()
			if f.Offset < 0 {
				t.Fatalf("Retreat produced negative offset %d", f.Offset)
			}
		}
		if f.Offset != 0 {
			t.Fatalf("Retreat chain should end at 0, got %d", f.Offset)
		}
	}
}

func TestAdvance_NoOpOnLastPage(t *testing.T) {
	f := NewFilters(12)
	f.Offset = 24
	if got := f.Advance(34); got.Offset != 24 {
		t.Fatalf("Advance past last page moved offset to %d", got.Offset)
	}
}
