package sentseg

import (
	"fmt"
	"sync"

	"github.com/tklauser/numcpus"
)

// budget caches a worker count queried from the host at most once.
type budget struct {
	get func() (int, error)
}

func newBudget(query func() (int, error)) *budget {
	return &budget{
		get: sync.OnceValues(func() (int, error) {
			n, err := query()
			if err != nil {
				return 0, fmt.Errorf("%w: %w", ErrBudgetUnavailable, err)
			}
			if n < 1 {
				return 0, fmt.Errorf("%w: host reported %d CPUs", ErrBudgetUnavailable, n)
			}
			return n, nil
		}),
	}
}

var processBudget = newBudget(numcpus.GetOnline)

// DefaultWorkerBudget returns the number of online logical CPUs. The host
// is queried on the first call only; later calls, including concurrent
// first calls, observe the same value or the same error.
func DefaultWorkerBudget() (int, error) {
	return processBudget.get()
}
