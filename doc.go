// Package gesture is a multi-pointer gesture recognizer for touch and mouse
// input.
//
// A [Recognizer] consumes raw contact events (start, move, end, cancel) and
// reports a small vocabulary of gestures:
//
//   - Tap: one contact pressed and released quickly without travelling
//   - Hold: one contact held in place for [Config.HoldTime]
//   - Drag: one contact that travelled past [Config.DistanceThreshold]
//   - Pinch, Rotate, Pan2: two contacts moving relative to each other
//   - Pan3: three contacts moving together
//
// # Quick start
//
//	r, err := gesture.New(gesture.DefaultConfig(), gesture.Handlers{
//		Tap:   func(c gesture.Contact) { fmt.Println("tap at", c.Position) },
//		Pinch: func(d float64) { zoom += d * 0.005 },
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
// Feed host events with [Recognizer.Start], [Recognizer.Move],
// [Recognizer.End] and [Recognizer.Cancel], and call [Recognizer.Update]
// once per frame with the frame duration so that Hold can fire while the
// contact is stationary. The ebiteninput package does both for Ebitengine
// games.
//
// # Tap, Hold and Drag
//
// The first contact arms a session with a travel budget of
// DistanceThreshold. Every move charges its length against the budget. Once
// the budget is spent the contact drags and can no longer tap or hold. If
// it stays within budget, Hold fires from the timer after HoldTime;
// releasing earlier fires Tap. Adding a second contact or cancelling ends
// the session without a result.
//
// # Multi-contact gestures
//
// With exactly two contacts, every move reports Pinch (change in
// separation), Rotate (change in angle, degrees times [RotateGain]) and Pan2
// (shared motion). With exactly three, every move reports Pan3. Samples
// whose geometry is degenerate are dropped rather than reported as NaN.
//
// Gestures are also available as tagged [Event] values through an
// [EventSink]; the ecs package bridges them into a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package gesture
