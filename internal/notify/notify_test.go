package notify

import (
	"context"
	"testing"
)

func TestHubFanOut(t *testing.T) {
	hub := NewHub()
	ch1, cancel1 := hub.Subscribe()
	defer cancel1()
	ch2, cancel2 := hub.Subscribe()
	defer cancel2()

	hub.CartChanged(context.Background(), "u1")

	for i, ch := range []<-chan string{ch1, ch2} {
		select {
		case got := <-ch:
			if got != "u1" {
				t.Fatalf("subscriber %d: expected u1, got %q", i, got)
			}
		default:
			t.Fatalf("subscriber %d: no event delivered", i)
		}
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	cancel()

	hub.CartChanged(context.Background(), "u1")

	if _, open := <-ch; open {
		t.Fatal("expected channel closed after cancel")
	}
}

func TestHubCancelIsIdempotent(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	cancel()
	cancel()
}

func TestHubDoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	defer cancel()

	// Buffer is 16; publishing past it must drop, not deadlock.
	for i := 0; i < 100; i++ {
		hub.CartChanged(context.Background(), "u1")
	}
}

func TestMultiNotifiesAll(t *testing.T) {
	a := NewHub()
	b := NewHub()
	chA, cancelA := a.Subscribe()
	defer cancelA()
	chB, cancelB := b.Subscribe()
	defer cancelB()

	Multi{a, b}.CartChanged(context.Background(), "u2")

	for i, ch := range []<-chan string{chA, chB} {
		select {
		case got := <-ch:
			if got != "u2" {
				t.Fatalf("notifier %d: expected u2, got %q", i, got)
			}
		default:
			t.Fatalf("notifier %d: no event delivered", i)
		}
	}
}
