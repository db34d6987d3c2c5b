package events

import "testing"

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second []Event
	bus.Subscribe(func(e Event) { first = append(first, e) })
	bus.Subscribe(func(e Event) { second = append(second, e) })

	bus.Publish(Event{Kind: KindPointsChanged, UserID: "u1"})
	bus.Publish(Event{Kind: KindBadgeChanged, UserID: "u1"})

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("subscribers saw %d and %d events, want 2 each", len(first), len(second))
	}
	if first[0].Kind != KindPointsChanged || first[1].Kind != KindBadgeChanged {
		t.Errorf("events delivered out of order: %+v", first)
	}
}

func TestBus_PanickingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(func(Event) { panic("listener bug") })
	var delivered int
	bus.Subscribe(func(Event) { delivered++ })

	bus.Publish(Event{Kind: KindItemChanged, UserID: "u1"})

	if delivered != 1 {
		t.Errorf("second subscriber saw %d events, want 1", delivered)
	}
}
