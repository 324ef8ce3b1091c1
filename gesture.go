package gesture

import "fmt"

// Kind identifies a recognized gesture.
type Kind uint8

const (
	KindTap    Kind = iota // single contact released quickly without travel
	KindHold               // single contact held in place for HoldTime
	KindDrag               // single contact moved past the distance budget
	KindPinch              // two contacts changed their separation
	KindRotate             // two contacts turned around each other
	KindPan2               // two contacts moved in a common direction
	KindPan3               // three contacts moved in a common direction
)

var kindNames = [...]string{"tap", "hold", "drag", "pinch", "rotate", "pan2", "pan3"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Phase identifies the kind of raw contact event delivered by the host.
type Phase uint8

const (
	PhaseStart  Phase = iota // contact touched down
	PhaseMove                // contact moved to a new position
	PhaseEnd                 // contact lifted normally
	PhaseCancel              // contact was taken away by the host
)

var phaseNames = [...]string{"start", "move", "end", "cancel"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// ContactEvent is one raw sample from the host input system.
type ContactEvent struct {
	Phase    Phase
	ID       int
	Position Vec2
}

// Event is a recognized gesture in tagged form. Only the fields relevant to
// Kind are set:
//
//   - KindTap, KindHold, KindDrag: Contact
//   - KindPinch: Value (signed change in separation)
//   - KindRotate: Value (signed degrees, already scaled by RotateGain)
//   - KindPan2, KindPan3: Direction and Contacts
type Event struct {
	Kind      Kind
	Contact   Contact
	Value     float64
	Direction Vec2
	Contacts  []Contact
}

// EventSink receives every gesture the Recognizer emits, after the registered
// callbacks have run. It is the integration point for ECS worlds and recorders.
type EventSink interface {
	EmitEvent(event Event)
}
