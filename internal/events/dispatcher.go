package events

import (
	"context"
	"log/slog"
)

// Publisher delivers an event to whatever transport fans it out to clients.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Dispatcher decouples request handling from notification delivery: mutations
// enqueue and move on, a single worker drains the queue. A full queue drops
// the event; change notifications must never break the API, and the client
// refetch loop heals missed events anyway.
type Dispatcher struct {
	publisher Publisher
	queue     chan Event
}

func NewDispatcher(publisher Publisher) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		queue:     make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.publisher.Publish(context.Background(), ev); err != nil {
			slog.Error("event publish failed", "action", ev.Action, "error", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		slog.Warn("event queue full, dropping event", "action", ev.Action)
	}
}
