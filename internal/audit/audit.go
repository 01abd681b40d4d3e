package audit

import "go.uber.org/zap"

// Event records one mutation against the demo store.
type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
}

// Dispatcher logs mutation events off the request path. The queue is
// bounded; when it fills, events are dropped rather than blocking a handler.
type Dispatcher struct {
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.log.Info("audit",
			zap.String("user_id", ev.UserID),
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
			zap.String("entity_id", ev.EntityID),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event")
	}
}
