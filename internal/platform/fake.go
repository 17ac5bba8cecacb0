package platform

import (
	"context"
	"sync"

	"github.com/gvassallo/layerwm/internal/wm"
)

// Fake is an in-memory backend for tests and headless runs. Pushed events
// are delivered to Run's channel; applied layouts are recorded.
type Fake struct {
	Size wm.Screen

	mu      sync.Mutex
	applied []wm.WindowLayout
	hidden  [][]wm.Window
	events  chan Event
	closed  bool
}

// NewFake returns a fake backend with the given screen size.
func NewFake(size wm.Screen) *Fake {
	return &Fake{
		Size:   size,
		events: make(chan Event, 16),
	}
}

func (f *Fake) ScreenSize() (wm.Screen, error) {
	return f.Size, nil
}

func (f *Fake) Run(ctx context.Context, events chan<- Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-f.events:
			if !ok {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Push queues an event for delivery through Run.
func (f *Fake) Push(ev Event) {
	f.events <- ev
}

func (f *Fake) Apply(layout wm.WindowLayout, hidden []wm.Window) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied = append(f.applied, layout)
	f.hidden = append(f.hidden, hidden)
	return nil
}

// LastApplied returns the most recently applied layout.
func (f *Fake) LastApplied() (wm.WindowLayout, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.applied) == 0 {
		return wm.WindowLayout{}, false
	}
	return f.applied[len(f.applied)-1], true
}

// LastHidden returns the hidden set of the most recent Apply.
func (f *Fake) LastHidden() []wm.Window {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.hidden) == 0 {
		return nil
	}
	return f.hidden[len(f.hidden)-1]
}

// Applied returns how many layouts have been applied.
func (f *Fake) Applied() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.applied)
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.events)
	}
	return nil
}
