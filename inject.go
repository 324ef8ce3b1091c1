package gesture

// InjectStart queues a synthetic contact start. Injected events are consumed
// one per frame by Update, in the order they were queued, and go through the
// same path as host input.
func (r *Recognizer) InjectStart(id int, x, y float64) {
	r.inject(ContactEvent{Phase: PhaseStart, ID: id, Position: Vec2{x, y}})
}

// InjectMove queues a synthetic move of contact id to (x, y).
func (r *Recognizer) InjectMove(id int, x, y float64) {
	r.inject(ContactEvent{Phase: PhaseMove, ID: id, Position: Vec2{x, y}})
}

// InjectEnd queues a synthetic release of contact id.
func (r *Recognizer) InjectEnd(id int) {
	r.inject(ContactEvent{Phase: PhaseEnd, ID: id})
}

// InjectCancel queues a synthetic cancel of contact id.
func (r *Recognizer) InjectCancel(id int) {
	r.inject(ContactEvent{Phase: PhaseCancel, ID: id})
}

// InjectTap is a convenience that queues a start followed by an end at the
// same position. Consumes two frames.
func (r *Recognizer) InjectTap(id int, x, y float64) {
	r.InjectStart(id, x, y)
	r.InjectEnd(id)
}

// InjectDrag queues a full single-contact drag: start at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, a final move
// to (toX, toY), and a release. The whole sequence consumes frames+1 frames.
// Minimum frames is 2.
func (r *Recognizer) InjectDrag(id int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectStart(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		r.InjectMove(id, x, y)
	}
	r.InjectMove(id, toX, toY)
	r.InjectEnd(id)
}

// Pending reports how many injected events are still queued.
func (r *Recognizer) Pending() int {
	return len(r.injectQueue)
}

func (r *Recognizer) inject(ev ContactEvent) {
	if r.closed {
		return
	}
	r.injectQueue = append(r.injectQueue, ev)
}

// processInjected pops one event from the inject queue and handles it.
// Returns true if an event was consumed.
func (r *Recognizer) processInjected() bool {
	if len(r.injectQueue) == 0 {
		return false
	}
	ev := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
	r.Handle(ev)
	return true
}
