package sse

import "testing"

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe()
	defer cleanup()

	hub.Publish(Event{Event: "notification", Data: "hola"})

	got := <-ch
	if got.Event != "notification" || got.Data != "hola" {
		t.Errorf("received %+v, want notification/hola", got)
	}
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe()
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe()
	defer cleanup2()

	if hub.SubscriberCount() != 2 {
		t.Fatalf("SubscriberCount = %d, want 2", hub.SubscriberCount())
	}

	hub.Publish(Event{Event: "notification"})

	if (<-ch1).Event != "notification" {
		t.Error("first subscriber missed the event")
	}
	if (<-ch2).Event != "notification" {
		t.Error("second subscriber missed the event")
	}
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	cleanup()
	cleanup() // double cleanup must not panic

	if hub.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d after cleanup, want 0", hub.SubscriberCount())
	}
}

func TestPublishDoesNotBlockOnFullChannel(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	defer cleanup()

	// Channel capacity is 10; publishing more must not block.
	for i := 0; i < 25; i++ {
		hub.Publish(Event{Event: "notification", Data: i})
	}
}
