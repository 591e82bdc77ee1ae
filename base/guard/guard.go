package guard

import (
	"sync/atomic"

	"github.com/mintora/goapi/domain"
)

// Guard is an exclusive, non-recursive lock shared by every mutating entry point
// of the engine. Acquire never blocks: the external transfer primitives may run
// arbitrary third-party logic, and a callback re-entering the engine while a
// mutation is in flight must be rejected, not queued.
type Guard struct {
	held int32
}

func New() *Guard {
	return &Guard{}
}

// Acquire takes the guard or returns domain.ErrReentrancy when it is already held.
func (g *Guard) Acquire() error {
	if !atomic.CompareAndSwapInt32(&g.held, 0, 1) {
		return domain.ErrReentrancy
	}
	return nil
}

// Release frees the guard. Must be called on every exit path of the holder.
func (g *Guard) Release() {
	atomic.StoreInt32(&g.held, 0)
}
