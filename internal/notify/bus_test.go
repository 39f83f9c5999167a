package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryBus(t *testing.T) {
	t.Run("delivers to every subscriber and fills in id and time", func(t *testing.T) {
		bus := NewBus()
		first, stopFirst := bus.Subscribe()
		defer stopFirst()
		second, stopSecond := bus.Subscribe()
		defer stopSecond()

		bus.Publish(Notice{Level: LevelInfo, Message: "hello"})

		a := <-first
		b := <-second
		assert.Equal(t, "hello", a.Message)
		assert.Equal(t, a.ID, b.ID)
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.Time.IsZero())
	})

	t.Run("unsubscribed channels stop receiving", func(t *testing.T) {
		bus := NewBus()
		notices, unsubscribe := bus.Subscribe()
		unsubscribe()

		bus.Publish(Notice{Level: LevelInfo, Message: "after"})

		_, open := <-notices
		assert.False(t, open)
	})

	t.Run("helpers tag the level", func(t *testing.T) {
		bus := NewBus()
		notices, unsubscribe := bus.Subscribe()
		defer unsubscribe()

		Error(bus, "boom")
		Success(bus, "done")
		FieldError(bus, "email", "is required")

		got := []Notice{<-notices, <-notices, <-notices}
		require.Len(t, got, 3)
		assert.Equal(t, LevelError, got[0].Level)
		assert.Equal(t, LevelSuccess, got[1].Level)
		assert.Equal(t, "email", got[2].Field)
	})
}
