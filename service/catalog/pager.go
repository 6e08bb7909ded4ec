package catalog

import (
	"sync"
	"time"
)

// Pager reveals a result set in fixed-size increments, driven by the
// scroll-sentinel visibility signal. One reveal may be in flight at a time:
// triggers arriving inside the settle window are ignored, never queued.
// Running out of results is the terminal state, not an error.
type Pager struct {
	mu        sync.Mutex
	increment int
	settle    time.Duration
	now       func() time.Time

	total      int
	revealed   int
	lastReveal time.Time
}

func NewPager(increment int, settle time.Duration) *Pager {
	if increment <= 0 {
		increment = 12
	}
	return &Pager{increment: increment, settle: settle, now: time.Now}
}

// Reset re-bases the pager on a new result count, revealing the first
// increment. Called whenever the underlying result set changes.
func (p *Pager) Reset(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total < 0 {
		total = 0
	}
	p.total = total
	p.revealed = min(p.increment, total)
	p.lastReveal = time.Time{}
}

// Reveal handles one sentinel-visibility trigger. Returns true when the
// window grew. Triggers during the settle window and triggers with nothing
// left to reveal are no-ops.
func (p *Pager) Reveal() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.revealed >= p.total {
		return false
	}
	if !p.lastReveal.IsZero() && p.now().Sub(p.lastReveal) < p.settle {
		return false
	}
	p.revealed = min(p.revealed+p.increment, p.total)
	p.lastReveal = p.now()
	return true
}

// Revealed returns the current window size.
func (p *Pager) Revealed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.revealed
}

// HasMore reports whether another reveal can grow the window.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.revealed < p.total
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
