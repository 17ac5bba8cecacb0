package daemon

import (
	"context"

	"github.com/gvassallo/layerwm/internal/platform"
)

// EventPump is the suture service that drives the engine from the display
// backend's event stream.
type EventPump struct {
	engine  *Engine
	backend platform.Backend
}

func NewEventPump(engine *Engine, backend platform.Backend) *EventPump {
	return &EventPump{engine: engine, backend: backend}
}

func (p *EventPump) String() string { return "daemon.EventPump" }

// Serve runs the backend event loop and feeds each event to the engine.
// It blocks until ctx is cancelled or the backend fails.
func (p *EventPump) Serve(ctx context.Context) error {
	events := make(chan platform.Event, 16)

	errC := make(chan error, 1)
	go func() {
		errC <- p.backend.Run(ctx, events)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errC:
			return err
		case ev := <-events:
			p.engine.HandleEvent(ev)
		}
	}
}
