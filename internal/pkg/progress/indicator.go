// Package progress implements the shared loading indicator. Overlapping
// operations increment and decrement one counter; the indicator reads as
// active until the counter returns to zero.
package progress

import (
	"sync"
)

type Indicator struct {
	mu    sync.Mutex
	count int
}

func NewIndicator() *Indicator {
	return &Indicator{}
}

// Begin marks the start of an operation that should hold the indicator.
func (i *Indicator) Begin() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.count++
}

// End releases one hold. The counter never goes below zero, so an unmatched
// End cannot leave the indicator stuck.
func (i *Indicator) End() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.count > 0 {
		i.count--
	}
}

// Active reports whether any operation still holds the indicator.
func (i *Indicator) Active() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.count > 0
}
