package ring

import "sync/atomic"

// atomicCounter is a thin wrapper kept separate from Buffer's mutex-guarded
// data path: the overrun counter must stay correct and lock-free even though
// the sample data itself is protected by a mutex (see Buffer).
type atomicCounter struct {
	v atomic.Uint64
}

func (c *atomicCounter) add(n uint64)    { c.v.Add(n) }
func (c *atomicCounter) load() uint64    { return c.v.Load() }
func (c *atomicCounter) store(n uint64)  { c.v.Store(n) }
