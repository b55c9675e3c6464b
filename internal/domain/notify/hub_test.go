package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestPublishReachesLocalConnections(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Shutdown()

	conn := &Connection{Send: make(chan []byte, 4)}
	hub.Register(conn)
	waitForConnections(t, hub, 1)

	hub.Publish(context.Background(), "inquiry_created", map[string]string{"guest_name": "Anna"})

	select {
	case payload := <-conn.Send:
		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Fatalf("failed to decode event: %v", err)
		}
		if event.Type != "inquiry_created" {
			t.Errorf("event type = %s, want inquiry_created", event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Error("expected timestamp to be set")
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Shutdown()

	conn := &Connection{Send: make(chan []byte, 1)}
	hub.Register(conn)
	waitForConnections(t, hub, 1)

	hub.Publish(context.Background(), "booking_created", nil)
	hub.Publish(context.Background(), "booking_updated", nil)

	if got := len(conn.Send); got != 1 {
		t.Errorf("buffered events = %d, want 1 (overflow dropped)", got)
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Shutdown()

	conn := &Connection{Send: make(chan []byte, 1)}
	hub.Register(conn)
	waitForConnections(t, hub, 1)

	hub.Unregister(conn)
	waitForConnections(t, hub, 0)

	select {
	case _, ok := <-conn.Send:
		if ok {
			t.Error("expected send channel closed")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}

func waitForConnections(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ConnectionCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("connection count = %d, want %d", hub.ConnectionCount(), want)
}
