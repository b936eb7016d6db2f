package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish_DeliversToSubscriber(t *testing.T) {
	bus := NewEventBus()

	var received []TaskChanged
	SubscribeTyped[TaskChanged](bus, TypeTaskCreated, func(e EventT[TaskChanged]) error {
		received = append(received, e.Data)
		return nil
	})

	err := bus.Publish(NewEvent(context.Background(), TypeTaskCreated, TaskChanged{Id: 7, Date: "2024-03-01", Title: "Math"}))

	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, 7, received[0].Id)
}

func TestPublish_TypeMismatchIsSkipped(t *testing.T) {
	bus := NewEventBus()

	called := false
	SubscribeTyped[StudySessionFinished](bus, TypeTaskCreated, func(e EventT[StudySessionFinished]) error {
		called = true
		return nil
	})

	err := bus.Publish(NewEvent(context.Background(), TypeTaskCreated, TaskChanged{Id: 1}))

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestPublish_CollectsHandlerErrors(t *testing.T) {
	bus := NewEventBus()

	bus.Subscribe(TypeTaskDeleted, func(e Event) error {
		return errors.New("boom")
	})
	secondCalled := false
	bus.Subscribe(TypeTaskDeleted, func(e Event) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(NewEvent(context.Background(), TypeTaskDeleted, TaskChanged{Id: 1}))

	assert.Error(t, err)
	assert.True(t, secondCalled)
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	bus := NewEventBus()

	count := 0
	unsubscribe := bus.Subscribe(TypeTaskUpdated, func(e Event) error {
		count++
		return nil
	})

	assert.NoError(t, bus.Publish(NewEvent(context.Background(), TypeTaskUpdated, TaskChanged{Id: 1})))
	unsubscribe()
	assert.NoError(t, bus.Publish(NewEvent(context.Background(), TypeTaskUpdated, TaskChanged{Id: 1})))

	assert.Equal(t, 1, count)
}
