package gesture

import "sync"

// Cell is a synchronized single-slot holder for the latest snapshot. The
// pipeline goroutine overwrites it once per processed frame; HTTP handlers
// and the tray read it concurrently. No history is retained.
type Cell struct {
	mu  sync.RWMutex
	cur Snapshot
}

// NewCell returns a Cell primed with the no-hand status.
func NewCell() *Cell {
	return &Cell{
		cur: Snapshot{Number: NoNumber, Name: StatusNoHand},
	}
}

// Set replaces the current snapshot.
func (c *Cell) Set(s Snapshot) {
	c.mu.Lock()
	c.cur = s
	c.mu.Unlock()
}

// Get returns the current snapshot.
func (c *Cell) Get() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur
}
