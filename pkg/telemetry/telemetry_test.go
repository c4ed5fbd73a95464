package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHub(t *testing.T) {
	hub := NewHub()
	require.NotNil(t, hub)
	assert.NotNil(t, hub.subs)
	assert.False(t, hub.closed)
}

func TestHub_PublishSubscribe(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch, unsub := hub.Subscribe()
	defer unsub()

	hub.Publish(Event{Type: EventImageLoaded, Key: "cat.png", SessionID: "s1"})

	select {
	case received := <-ch:
		assert.Equal(t, EventImageLoaded, received.Type)
		assert.Equal(t, "cat.png", received.Key)
		assert.False(t, received.Timestamp.IsZero())
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for event")
	}
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch1, unsub1 := hub.Subscribe()
	defer unsub1()
	ch2, unsub2 := hub.Subscribe()
	defer unsub2()

	hub.Publish(Event{Type: EventConfigReloaded})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, EventConfigReloaded, ev.Type)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for event")
		}
	}
}

func TestHub_SubscribeFiltersTypes(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	images, unsub := hub.Subscribe(EventImageLoaded, EventImageFailed)
	defer unsub()

	hub.Publish(Event{Type: EventRenderComplete})
	hub.Publish(Event{Type: EventConfigReloaded})
	hub.Publish(Event{Type: EventImageFailed, Key: "x.png"})

	require.Len(t, images, 1)
	ev := <-images
	assert.Equal(t, EventImageFailed, ev.Type)
	assert.Equal(t, "x.png", ev.Key)
}

func TestHub_DropsWhenSubscriberFull(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch, unsub := hub.Subscribe()
	defer unsub()

	for i := 0; i < 100; i++ {
		hub.Publish(Event{Type: EventRenderComplete})
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch, unsub := hub.Subscribe()
	unsub()
	unsub()

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_Close(t *testing.T) {
	hub := NewHub()
	ch, _ := hub.Subscribe()
	hub.Close()
	hub.Close()

	_, open := <-ch
	assert.False(t, open)

	late, unsub := hub.Subscribe()
	defer unsub()
	_, open = <-late
	assert.False(t, open, "subscribing after close yields a closed channel")

	hub.Publish(Event{Type: EventImageFailed})
}

func TestHub_NilPublish(t *testing.T) {
	var hub *Hub
	assert.NotPanics(t, func() { hub.Publish(Event{Type: EventImageLoaded}) })
}
