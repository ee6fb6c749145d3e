// Package errorreport collects errors reported by view-models so the UI can
// show and dismiss them. Reporting never fails and never blocks.
package errorreport

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/parlor/internal/log"
	"github.com/zjrosen/parlor/internal/pubsub"
)

const defaultLimit = 50

// Report is one reported error.
type Report struct {
	ID  string
	Err error
	At  time.Time
}

// Message returns the error text.
func (r Report) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Queue keeps the most recent reports, oldest first.
type Queue struct {
	mu      sync.Mutex
	reports []Report
	limit   int
	now     func() time.Time
	broker  *pubsub.Broker[Report]
}

// Option configures a Queue.
type Option func(*Queue)

// WithLimit caps how many reports are kept. Older reports are dropped first.
func WithLimit(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.limit = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		limit:  defaultLimit,
		now:    time.Now,
		broker: pubsub.NewBroker[Report](),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// ReportError implements chat.ErrorReporter. Nil errors are ignored.
func (q *Queue) ReportError(err error) {
	if err == nil {
		return
	}
	r := Report{ID: uuid.NewString(), Err: err, At: q.now()}

	q.mu.Lock()
	q.reports = append(q.reports, r)
	if over := len(q.reports) - q.limit; over > 0 {
		q.reports = append([]Report(nil), q.reports[over:]...)
	}
	q.mu.Unlock()

	log.ErrorErr(log.CatRoom, "Reported error", err, "report", r.ID)
	q.broker.Publish(pubsub.CreatedEvent, r)
}

// Reports returns a copy of the queued reports.
func (q *Queue) Reports() []Report {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Report(nil), q.reports...)
}

// Latest returns the most recent report.
func (q *Queue) Latest() (Report, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.reports) == 0 {
		return Report{}, false
	}
	return q.reports[len(q.reports)-1], true
}

// Dismiss removes the report with id.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	var removed *Report
	for i, r := range q.reports {
		if r.ID == id {
			removed = &r
			q.reports = append(q.reports[:i:i], q.reports[i+1:]...)
			break
		}
	}
	q.mu.Unlock()

	if removed == nil {
		return false
	}
	q.broker.Publish(pubsub.DeletedEvent, *removed)
	return true
}

// Subscribe streams created and dismissed reports until ctx is done.
func (q *Queue) Subscribe(ctx context.Context) <-chan pubsub.Event[Report] {
	return q.broker.Subscribe(ctx)
}

// Close stops all subscriptions.
func (q *Queue) Close() { q.broker.Close() }
