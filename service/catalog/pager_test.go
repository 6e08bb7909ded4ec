package catalog

import (
	"testing"
	"time"
)

// fixedClock lets tests step through the settle window deterministically.
type fixedClock struct{ t time.Time }

func (f *fixedClock) now() time.Time          { return f.t }
func (f *fixedClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestPager(increment int, settle time.Duration) (*Pager, *fixedClock) {
	clock := &fixedClock{t: time.Unix(1_700_000_000, 0)}
	p := NewPager(increment, settle)
	p.now = clock.now
	return p, clock
}

func TestPager_ResetRevealsFirstIncrement(t *testing.T) {
	p, _ := newTestPager(12, 600*time.Millisecond)
	p.Reset(30)
	if got := p.Revealed(); got != 12 {
		t.Errorf("Revealed() = %d, want 12", got)
	}
	if !p.HasMore() {
		t.Error("HasMore() = false, want true")
	}
}

func TestPager_ResetClampsToTotal(t *testing.T) {
	p, _ := newTestPager(12, 600*time.Millisecond)
	p.Reset(7)
	if got := p.Revealed(); got != 7 {
		t.Errorf("Revealed() = %d, want 7", got)
	}
	if p.HasMore() {
		t.Error("HasMore() = true, want false")
	}
}

func TestPager_RevealGrowsByIncrement(t *testing.T) {
	p, _ := newTestPager(12, 600*time.Millisecond)
	p.Reset(30)
	if !p.Reveal() {
		t.Fatal("first Reveal() = false, want true")
	}
	if got := p.Revealed(); got != 24 {
		t.Errorf("Revealed() = %d, want 24", got)
	}
}

func TestPager_SettleWindowSwallowsTriggers(t *testing.T) {
	p, clock := newTestPager(12, 600*time.Millisecond)
	p.Reset(100)

	if !p.Reveal() {
		t.Fatal("first Reveal() = false, want true")
	}
	// Burst of sentinel triggers inside the window: all ignored, none queued.
	for i := 0; i < 5; i++ {
		clock.advance(50 * time.Millisecond)
		if p.Reveal() {
			t.Fatalf("Reveal() inside settle window grew the window (trigger %d)", i)
		}
	}
	if got := p.Revealed(); got != 24 {
		t.Errorf("Revealed() = %d, want 24 after burst", got)
	}

	clock.advance(600 * time.Millisecond)
	if !p.Reveal() {
		t.Fatal("Reveal() after settle window = false, want true")
	}
	if got := p.Revealed(); got != 36 {
		t.Errorf("Revealed() = %d, want 36", got)
	}
}

func TestPager_LastRevealClampsAndTerminates(t *testing.T) {
	p, clock := newTestPager(12, 600*time.Millisecond)
	p.Reset(17)

	if !p.Reveal() {
		t.Fatal("Reveal() = false, want true")
	}
	if got := p.Revealed(); got != 17 {
		t.Errorf("Revealed() = %d, want 17 (clamped to total)", got)
	}
	if p.HasMore() {
		t.Error("HasMore() = true at end of results")
	}
	clock.advance(time.Hour)
	if p.Reveal() {
		t.Error("Reveal() with nothing left = true, want false")
	}
}

func TestPager_ResetClearsSettleWindow(t *testing.T) {
	p, _ := newTestPager(12, 600*time.Millisecond)
	p.Reset(100)
	p.Reveal()
	// A new result set re-bases the window; the next trigger works at once.
	p.Reset(100)
	if got := p.Revealed(); got != 12 {
		t.Errorf("Revealed() = %d, want 12 after reset", got)
	}
	if !p.Reveal() {
		t.Error("Reveal() right after Reset = false, want true")
	}
}

func TestPager_ZeroTotal(t *testing.T) {
	p, _ := newTestPager(12, 600*time.Millisecond)
	p.Reset(0)
	if got := p.Revealed(); got != 0 {
		t.Errorf("Revealed() = %d, want 0", got)
	}
	if p.Reveal() {
		t.Error("Reveal() on empty result set = true, want false")
	}
}
