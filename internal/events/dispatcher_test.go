package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var got []Event
	d.Subscribe(EventOrderPlaced, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventOrderPlaced, UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "u1", got[0].UserID)
	require.NotEmpty(t, got[0].ID)
	require.False(t, got[0].Timestamp.IsZero())
}

func TestPublishContinuesPastFailingHandler(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var reached bool
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		reached = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
	require.True(t, reached)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventOrderPlaced}))
}
