// Package ecs provides ECS adapters for gesture.
package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
// Subscribe to this in your ECS systems to receive taps, drags, pinches and
// pans.
var GestureEventType = events.NewEventType[gesture.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Gestures are
// published to GestureEventType and can be consumed with Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) gesture.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event gesture.Event) {
	// Contacts is shared with the recognizer's payload; copy it so queued
	// events stay stable until they are processed.
	if len(event.Contacts) > 0 {
		event.Contacts = append([]gesture.Contact(nil), event.Contacts...)
	}
	GestureEventType.Publish(s.world, event)
}
