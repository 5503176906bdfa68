package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"storefront/internal/storage"
)

// Recorder persists events to the local event store through a bounded
// queue. Track never blocks: when the queue is full the event is dropped,
// so a slow disk can never stall a checkout.
type Recorder struct {
	store   *storage.EventStore
	ch      chan Event
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	retention time.Duration
	sched     *cron.Cron
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithRetention schedules a cleanup of events older than days on the given
// cron expression. Zero days disables cleanup.
func WithRetention(days int, cronSpec string) RecorderOption {
	return func(r *Recorder) {
		if days <= 0 || cronSpec == "" {
			return
		}
		r.retention = time.Duration(days) * 24 * time.Hour
		c := cron.New()
		if _, err := c.AddFunc(cronSpec, r.cleanup); err != nil {
			slog.Error("analytics: invalid cleanup schedule", "spec", cronSpec, "error", err)
			return
		}
		r.sched = c
	}
}

// NewRecorder starts the flush loop (and the retention schedule, when
// configured).
func NewRecorder(store *storage.EventStore, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		store:   store,
		ch:      make(chan Event, 256),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, o := range opts {
		o(r)
	}
	go r.flushLoop()
	if r.sched != nil {
		r.sched.Start()
	}
	return r
}

func (r *Recorder) Track(_ context.Context, e Event) {
	select {
	case r.ch <- e:
	default:
		// queue full, drop rather than apply backpressure
		slog.Warn("analytics: event dropped", "kind", string(e.Kind))
	}
}

func (r *Recorder) flushLoop() {
	defer close(r.stopped)
	for {
		select {
		case e := <-r.ch:
			r.persist(e)
		case <-r.done:
			// drain what's queued, then exit
			for {
				select {
				case e := <-r.ch:
					r.persist(e)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) persist(e Event) {
	row := storage.EventRow{
		Kind:       string(e.Kind),
		Path:       e.Path,
		SearchText: e.SearchText,
		ItemID:     e.ItemID,
		MethodID:   e.MethodID,
		Payload:    string(e.Payload),
	}
	if err := r.store.Insert(row); err != nil {
		slog.Error("analytics: persist failed", "kind", row.Kind, "error", err)
	}
}

func (r *Recorder) cleanup() {
	cutoff := time.Now().Add(-r.retention)
	n, err := r.store.DeleteOlderThan(cutoff)
	if err != nil {
		slog.Error("analytics: retention cleanup failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("analytics: retention cleanup", "deleted", n)
	}
}

// Close stops the retention schedule, flushes queued events and waits for
// the flush loop to exit.
func (r *Recorder) Close() {
	r.once.Do(func() {
		if r.sched != nil {
			r.sched.Stop()
		}
		close(r.done)
	})
	<-r.stopped
}
