package sentseg

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestDefaultWorkerBudget(t *testing.T) {
	n, err := DefaultWorkerBudget()
	if err != nil {
		t.Fatalf("DefaultWorkerBudget failed: %v", err)
	}
	if n < 1 {
		t.Errorf("expected positive budget, got %d", n)
	}

	again, err := DefaultWorkerBudget()
	if err != nil || again != n {
		t.Errorf("expected cached budget %d, got %d (err %v)", n, again, err)
	}
}

func TestBudget_QueriedOnce(t *testing.T) {
	var calls atomic.Int32
	b := newBudget(func() (int, error) {
		calls.Add(1)
		return 6, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := b.get()
			if err != nil || n != 6 {
				t.Errorf("get() = %d, %v; want 6, nil", n, err)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 host query, got %d", got)
	}
}

func TestBudget_Unavailable(t *testing.T) {
	hostErr := errors.New("no sysfs")
	tests := []struct {
		name  string
		query func() (int, error)
	}{
		{name: "query error", query: func() (int, error) { return 0, hostErr }},
		{name: "zero CPUs", query: func() (int, error) { return 0, nil }},
		{name: "negative CPUs", query: func() (int, error) { return -1, nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBudget(tt.query)
			_, err := b.get()
			if !errors.Is(err, ErrBudgetUnavailable) {
				t.Fatalf("expected ErrBudgetUnavailable, got %v", err)
			}
			// The failure is cached, not retried.
			_, again := b.get()
			if again == nil || again.Error() != err.Error() {
				t.Errorf("expected cached error %v, got %v", err, again)
			}
		})
	}
}
