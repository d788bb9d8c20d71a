package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunVisitsEveryIndex(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]bool)

	err := Run(context.Background(), 3, 10, func(_ context.Context, i int) error {
		mu.Lock()
		seen[i] = true
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 10 {
		t.Errorf("expected 10 indexes, got %d", len(seen))
	}
}

func TestRunRespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	err := Run(context.Background(), 2, 8, func(_ context.Context, _ int) error {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peak.Load() > 2 {
		t.Errorf("expected at most 2 concurrent calls, saw %d", peak.Load())
	}
}

func TestRunReturnsFirstError(t *testing.T) {
	boom := errors.New("insert failed")
	var calls atomic.Int32

	err := Run(context.Background(), 1, 5, func(_ context.Context, i int) error {
		calls.Add(1)
		if i == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if calls.Load() > 3 {
		t.Errorf("expected the batch to stop shortly after the failure, got %d calls", calls.Load())
	}
}

func TestRunEmptyAndZeroLimit(t *testing.T) {
	if err := Run(context.Background(), 4, 0, nil); err != nil {
		t.Fatalf("empty batch should succeed, got %v", err)
	}

	var calls atomic.Int32
	err := Run(context.Background(), 0, 3, func(_ context.Context, _ int) error {
		calls.Add(1)
		return nil
	})
	if err != nil || calls.Load() != 3 {
		t.Errorf("expected 3 sequential calls, got %d (err %v)", calls.Load(), err)
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want [][2]int
	}{
		{"empty", 0, 3, nil},
		{"exact", 6, 3, [][2]int{{0, 3}, {3, 6}}},
		{"remainder", 7, 3, [][2]int{{0, 3}, {3, 6}, {6, 7}}},
		{"size_below_one", 2, 0, [][2]int{{0, 1}, {1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunks(tt.n, tt.size)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d chunks, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}
