package mdeck

import (
	"sync"
	"time"

	"github.com/HopIT-Hub/mdeck-go/internal/protocol"
)

// EventReader turns a Session's raw input reports into discrete
// Events by diffing each report against the last-known DeviceState.
type EventReader struct {
	session *Session

	mu    sync.Mutex
	state DeviceState
}

// NewEventReader returns a reader over session, with all buttons and
// encoders initially assumed up.
func NewEventReader(session *Session) *EventReader {
	kind := session.Kind()
	return &EventReader{
		session: session,
		state: DeviceState{
			Buttons:  make([]bool, kind.KeyCount()),
			Encoders: make([]bool, kind.EncoderCount()),
		},
	}
}

// State returns a copy of the last-known button/encoder state.
func (r *EventReader) State() DeviceState {
	r.mu.Lock()
	defer r.mu.Unlock()

	buttons := make([]bool, len(r.state.Buttons))
	copy(buttons, r.state.Buttons)
	encoders := make([]bool, len(r.state.Encoders))
	copy(encoders, r.state.Encoders)
	return DeviceState{Buttons: buttons, Encoders: encoders}
}

// Read blocks for the next input report and returns the Events it
// produces relative to the reader's current state. A report that
// changes nothing (InputNoData, or a state vector identical to the
// last one) yields no events. A zero timeout blocks indefinitely.
func (r *EventReader) Read(timeout time.Duration) ([]Event, error) {
	input, err := r.session.ReadInput(timeout)
	if err != nil {
		return nil, err
	}
	if input.IsEmpty() {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch input.Kind {
	case protocol.InputButtonStateChange:
		return diffBoolStates(&r.state.Buttons, input.Buttons, EventButtonDown, EventButtonUp), nil
	case protocol.InputEncoderStateChange:
		return diffBoolStates(&r.state.Encoders, input.Buttons, EventEncoderDown, EventEncoderUp), nil
	case protocol.InputEncoderTwist:
		return twistEvents(input.Twist), nil
	default:
		return nil, nil
	}
}

// diffBoolStates XORs incoming against *state index by index, emitting
// downEvent/upEvent for each index whose value changed, then commits
// incoming as the new state.
func diffBoolStates(state *[]bool, incoming []bool, downEvent, upEvent EventKind) []Event {
	var events []Event
	for i := range *state {
		var next bool
		if i < len(incoming) {
			next = incoming[i]
		}
		if next == (*state)[i] {
			continue
		}
		kind := upEvent
		if next {
			kind = downEvent
		}
		events = append(events, Event{Kind: kind, Index: uint8(i)})
	}
	*state = incoming
	return events
}

func twistEvents(twist []int8) []Event {
	var events []Event
	for i, change := range twist {
		if change == 0 {
			continue
		}
		events = append(events, Event{Kind: EventEncoderTwist, Index: uint8(i), Change: change})
	}
	return events
}
