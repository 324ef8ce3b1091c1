// Package ecs provides ECS adapters for gesture's event sink.
//
// The primary adapter is [NewDonburiSink], which bridges recognized gestures
// (tap, hold, drag, pinch, rotate, pans) into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	recognizer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
