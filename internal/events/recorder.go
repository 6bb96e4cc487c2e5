package events

import (
	"sync"
)

// Recorder is a listener that keeps every event it receives, in order
type Recorder struct {
	id       string
	priority int

	mu     sync.Mutex
	events []Event
}

// NewRecorder creates a recorder at PriorityRecording
func NewRecorder(id string) *Recorder {
	return &Recorder{id: id, priority: PriorityRecording}
}

func (r *Recorder) ID() string    { return r.id }
func (r *Recorder) Priority() int { return r.priority }

// HandleEvent implements EventListener
func (r *Recorder) HandleEvent(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns the recorded events with the given type
func (r *Recorder) OfType(eventType EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, e := range r.events {
		if e.GetType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Turns returns the recorded turn events
func (r *Recorder) Turns() []*TurnEvent {
	var out []*TurnEvent
	for _, e := range r.OfType(EventTypeTurnTaken) {
		if turn, ok := e.(*TurnEvent); ok {
			out = append(out, turn)
		}
	}
	return out
}

// Reset drops everything recorded
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
