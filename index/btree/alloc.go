package btree

import (
	"fmt"
	"sync"
)

// Allocator supplies memory for tree nodes. Trees never allocate a node without a
// successful Reserve first, and Release every node they hand back when destroyed.
//
// The default allocator draws from the Go heap and never fails. Clients wanting to
// cap the memory of one or more trees may use a Quota.
type Allocator interface {
	// Reserve obtains memory for n nodes, either for all of them or for none.
	// A refusal is reported as an error.
	Reserve(n int) error
	// Release gives back the memory of n nodes.
	Release(n int)
}

type heap struct{}

func (heap) Reserve(int) error { return nil }
func (heap) Release(int)       {}

// Quota is an allocator which limits the number of nodes in use. A quota may be
// shared between several trees; it is safe for concurrent use.
type Quota struct {
	mu    sync.Mutex
	limit int
	inUse int
}

// NewQuota creates an allocator which will hand out memory for at most limit nodes
// at a time.
func NewQuota(limit int) *Quota {
	return &Quota{limit: limit}
}

// Reserve obtains memory for n nodes. If this would exceed the limit of q, nothing
// is reserved and an error wrapping ErrAllocation is returned.
func (q *Quota) Reserve(n int) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.inUse+n > q.limit {
		return fmt.Errorf("%w: quota of %d nodes exhausted (%d in use, %d requested)",
			ErrAllocation, q.limit, q.inUse, n)
	}
	q.inUse += n
	return nil
}

// Release gives back the memory of n nodes.
// Releasing more nodes than are in use is a programming error and will panic.
func (q *Quota) Release(n int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	assertThat(n <= q.inUse, "quota: release of %d nodes with only %d in use", n, q.inUse)
	q.inUse -= n
}

// InUse returns the number of nodes currently reserved.
func (q *Quota) InUse() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inUse
}

// SetLimit changes the limit of q. Lowering the limit below the number of nodes in use
// does not take memory away from anyone, it merely refuses further reservations.
func (q *Quota) SetLimit(limit int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.limit = limit
}
