package engine

import "sync/atomic"

// Gate is the shared interaction lock. While locked, all input-driven
// transitions are no-ops. Renderers may read it from other goroutines,
// hence the atomic.
type Gate struct {
	locked atomic.Bool
}

func (g *Gate) Lock()        { g.locked.Store(true) }
func (g *Gate) Unlock()      { g.locked.Store(false) }
func (g *Gate) Locked() bool { return g.locked.Load() }
