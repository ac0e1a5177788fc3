package audit

import "go.uber.org/zap"

type Event struct {
	Actor        string
	Action       string
	Entity       string
	EntityID     string
	RestaurantID *uint
	Metadata     any
}

// Dispatcher records audit events off the request path. A full queue
// drops the event rather than slowing the API down.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			zap.L().Error("audit write failed",
				zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		zap.L().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
