// Package notify delivers lifecycle events to the notification store as a
// best-effort side effect. Publishing never blocks the caller and never
// reports failure back to it, so a sink outage cannot affect the transition
// that produced the event.
package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/repository"
)

// Event is a notification addressed to an account.
type Event struct {
	UserID  string
	Title   string
	Message string
	Link    string
}

// Notifier is what the lifecycle engine publishes through.
type Notifier interface {
	Publish(ev Event)
}

// Dispatcher queues events on a buffered channel and persists them from a
// single worker goroutine.
type Dispatcher struct {
	events chan Event
	store  repository.NotificationRepository
	log    zerolog.Logger
	wg     sync.WaitGroup
}

// NewDispatcher starts the worker. buffer bounds how many undelivered events
// may be pending; beyond that Publish drops.
func NewDispatcher(store repository.NotificationRepository, log zerolog.Logger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		events: make(chan Event, buffer),
		store:  store,
		log:    log.With().Str("component", "notify").Logger(),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Publish enqueues an event without blocking. If the queue is full the event
// is dropped with a warning; delivery is best-effort.
func (d *Dispatcher) Publish(ev Event) {
	select {
	case d.events <- ev:
	default:
		d.log.Warn().Str("user_id", ev.UserID).Str("title", ev.Title).Msg("notification queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	close(d.events)
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for ev := range d.events {
		n := &models.Notification{
			UserID:  ev.UserID,
			Title:   ev.Title,
			Message: ev.Message,
			Link:    ev.Link,
		}
		if err := d.store.Create(n); err != nil {
			d.log.Error().Err(err).Str("user_id", ev.UserID).Str("title", ev.Title).Msg("failed to store notification")
			continue
		}
		d.log.Debug().Str("user_id", ev.UserID).Str("title", ev.Title).Msg("notification stored")
	}
}
