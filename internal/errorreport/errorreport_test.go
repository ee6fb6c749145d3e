package errorreport

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parlor/internal/pubsub"
)

func TestQueue_ReportError(t *testing.T) {
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	q := NewQueue(WithClock(func() time.Time { return at }))
	defer q.Close()

	events := q.Subscribe(context.Background())
	q.ReportError(errors.New("could not join call"))

	reports := q.Reports()
	require.Len(t, reports, 1)
	require.NotEmpty(t, reports[0].ID)
	require.Equal(t, at, reports[0].At)
	require.Equal(t, "could not join call", reports[0].Message())

	event := <-events
	require.Equal(t, pubsub.CreatedEvent, event.Type)
	require.Equal(t, reports[0].ID, event.Payload.ID)
}

func TestQueue_IgnoresNil(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.ReportError(nil)

	require.Empty(t, q.Reports())
	_, ok := q.Latest()
	require.False(t, ok)
}

func TestQueue_LimitDropsOldest(t *testing.T) {
	q := NewQueue(WithLimit(2))
	defer q.Close()

	for i := range 3 {
		q.ReportError(fmt.Errorf("error %d", i))
	}

	reports := q.Reports()
	require.Len(t, reports, 2)
	require.Equal(t, "error 1", reports[0].Message())
	latest, ok := q.Latest()
	require.True(t, ok)
	require.Equal(t, "error 2", latest.Message())
}

func TestQueue_Dismiss(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.ReportError(errors.New("first"))
	q.ReportError(errors.New("second"))
	first := q.Reports()[0]

	events := q.Subscribe(context.Background())
	require.True(t, q.Dismiss(first.ID))
	require.False(t, q.Dismiss(first.ID))

	reports := q.Reports()
	require.Len(t, reports, 1)
	require.Equal(t, "second", reports[0].Message())

	event := <-events
	require.Equal(t, pubsub.DeletedEvent, event.Type)
	require.Equal(t, first.ID, event.Payload.ID)
}
