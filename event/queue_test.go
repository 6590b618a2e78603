package event

import (
	"testing"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue(16)

	eq.Push(GameEvent{Type: EventSpinStarted})
	eq.Push(GameEvent{Type: EventColumnStopped, Payload: &ColumnStoppedPayload{Column: 1}})
	eq.Push(GameEvent{Type: EventSpinResolved})

	got := eq.Consume()
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	wantOrder := []EventType{EventSpinStarted, EventColumnStopped, EventSpinResolved}
	for i, want := range wantOrder {
		if got[i].Type != want {
			t.Errorf("Expected event %d to be type %d, got %d", i, want, got[i].Type)
		}
	}

	if again := eq.Consume(); again != nil {
		t.Errorf("Expected empty queue after consume, got %d events", len(again))
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	eq := NewEventQueue(8)

	total := 20 // laps the ring twice
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventColumnStopped, Payload: i})
	}

	got := eq.Consume()
	if len(got) != 8 {
		t.Fatalf("Expected a full ring of 8 events after overflow, got %d", len(got))
	}
	for i, ev := range got {
		if want := total - 8 + i; ev.Payload.(int) != want {
			t.Errorf("Expected event %d to carry payload %d, got %v", i, want, ev.Payload)
		}
	}
}

func TestEventQueueCapacityRoundsUp(t *testing.T) {
	eq := NewEventQueue(6)

	// A power-of-two ring of at least the requested size holds all 8
	for i := 0; i < 8; i++ {
		eq.Push(GameEvent{Type: EventColumnStopped, Payload: i})
	}

	got := eq.Consume()
	if len(got) != 8 {
		t.Fatalf("Expected all 8 events retained, got %d", len(got))
	}
}

type countingHandler struct {
	types  []EventType
	events []GameEvent
}

func (h *countingHandler) HandleEvent(ev GameEvent) {
	h.events = append(h.events, ev)
}

func (h *countingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchesByType(t *testing.T) {
	eq := NewEventQueue(16)
	router := NewRouter(eq)

	stops := &countingHandler{types: []EventType{EventColumnStopped}}
	all := &countingHandler{types: []EventType{EventSpinStarted, EventColumnStopped, EventSpinResolved}}
	router.Register(stops)
	router.Register(all)

	eq.Push(GameEvent{Type: EventSpinStarted})
	eq.Push(GameEvent{Type: EventColumnStopped})
	eq.Push(GameEvent{Type: EventSpinResolved})
	router.DispatchAll()

	if len(stops.events) != 1 {
		t.Errorf("Expected 1 column-stop event, got %d", len(stops.events))
	}
	if len(all.events) != 3 {
		t.Errorf("Expected 3 events for catch-all handler, got %d", len(all.events))
	}
	if !router.HasHandlers(EventColumnStopped) {
		t.Error("Expected registered handlers for column-stop")
	}
	if router.HasHandlers(EventPauseToggled) {
		t.Error("Expected no handlers for pause toggle")
	}
}
