package gesture

import (
	"time"

	"go.uber.org/zap"
)

// Recognizer turns a stream of raw contact events into gestures. It owns the
// active contact set, the single tap/hold session, and the callback registry.
//
// A Recognizer is not safe for concurrent use. The host delivers contact
// events and calls Update (or Advance) from the same goroutine, typically
// its frame loop. Callbacks run synchronously; contact events submitted from
// inside a callback are queued and processed after the current event, and
// time advanced from inside a callback is applied after those.
type Recognizer struct {
	cfg      Config
	contacts contactTracker
	session  tapHoldSession
	handlers handlerRegistry
	sink     EventSink
	log      *zap.Logger

	busy     bool
	pending  []ContactEvent
	deferred time.Duration
	closed   bool

	injectQueue []ContactEvent
	script      *ScriptRunner
}

// New creates a Recognizer with the given tuning and callbacks. Any field of
// h may be nil.
func New(cfg Config, h Handlers) (*Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Recognizer{
		cfg:     cfg,
		session: newTapHoldSession(cfg),
		log:     zap.NewNop(),
	}
	r.handlers.add(h)
	return r, nil
}

// Config returns the tuning the Recognizer was created with.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// SetEventSink sets the optional sink that receives every emitted gesture.
// Pass nil to detach.
func (r *Recognizer) SetEventSink(sink EventSink) {
	r.sink = sink
}

// Contacts returns a copy of the active contacts in start order.
func (r *Recognizer) Contacts() []Contact {
	return r.contacts.snapshot()
}

// Closed reports whether Close has been called.
func (r *Recognizer) Closed() bool {
	return r.closed
}

// Start reports that contact id touched down at pos.
func (r *Recognizer) Start(id int, pos Vec2) {
	r.Handle(ContactEvent{Phase: PhaseStart, ID: id, Position: pos})
}

// Move reports that contact id is now at pos.
func (r *Recognizer) Move(id int, pos Vec2) {
	r.Handle(ContactEvent{Phase: PhaseMove, ID: id, Position: pos})
}

// End reports that contact id lifted. The position of the last Move is used
// for the gesture payload.
func (r *Recognizer) End(id int) {
	r.Handle(ContactEvent{Phase: PhaseEnd, ID: id})
}

// Cancel reports that the host took contact id away. A cancelled contact never
// produces Tap or Hold.
func (r *Recognizer) Cancel(id int) {
	r.Handle(ContactEvent{Phase: PhaseCancel, ID: id})
}

// Handle processes one raw contact event. Events for unknown ids are ignored.
func (r *Recognizer) Handle(ev ContactEvent) {
	if r.closed {
		return
	}
	if r.busy {
		r.pending = append(r.pending, ev)
		return
	}
	r.busy = true
	r.process(ev)
	for len(r.pending) > 0 && !r.closed {
		next := r.pending[0]
		copy(r.pending, r.pending[1:])
		r.pending = r.pending[:len(r.pending)-1]
		r.process(next)
	}
	r.pending = r.pending[:0]
	r.busy = false
	r.flushDeferred()
}

func (r *Recognizer) process(ev ContactEvent) {
	switch ev.Phase {
	case PhaseStart:
		r.handleStart(ev.ID, ev.Position)
	case PhaseMove:
		r.handleMove(ev.ID, ev.Position)
	case PhaseEnd:
		r.handleEnd(ev.ID)
	case PhaseCancel:
		r.handleCancel(ev.ID)
	}
}

func (r *Recognizer) handleStart(id int, pos Vec2) {
	if !r.contacts.begin(id, pos) {
		r.log.Debug("duplicate contact start ignored", zap.Int("id", id))
		return
	}
	if r.contacts.len() == 1 {
		r.session.arm()
		r.log.Debug("session armed", zap.Int("id", id), zapVec("pos", pos))
	}
	r.evaluate(id)
}

func (r *Recognizer) handleMove(id int, pos Vec2) {
	if !r.contacts.update(id, pos) {
		return
	}
	r.evaluate(id)
}

func (r *Recognizer) handleEnd(id int) {
	c, ok := r.contacts.find(id)
	if !ok {
		return
	}
	if r.contacts.len() == 1 {
		tap := r.session.tapped()
		r.resetSession("contact ended")
		if tap {
			r.log.Debug("tap", zap.Int("id", id), zapVec("pos", c.Position))
			r.fireTap(c)
		}
	} else {
		r.resetSession("contact ended")
	}
	r.contacts.remove(id)
}

func (r *Recognizer) handleCancel(id int) {
	r.resetSession("contact cancelled")
	r.contacts.remove(id)
}

// evaluate runs the evaluator for the current arity after contact id changed.
func (r *Recognizer) evaluate(id int) {
	switch r.contacts.len() {
	case 1:
		c := r.contacts.at(0)
		r.session.travel(c.Delta.Len())
		if r.session.canDrag() {
			r.fireDrag(c)
		}
	case 2:
		r.resetSession("two contacts")
		a, b := r.contacts.at(0), r.contacts.at(1)
		if v, ok := evalPinch(a, b); ok {
			r.firePinch(v)
		} else {
			r.suppressed(KindPinch, id)
		}
		if v, ok := evalRotate(a, b); ok {
			r.fireRotate(v)
		} else {
			r.suppressed(KindRotate, id)
		}
		if v, ok := evalPan2(a, b); ok {
			r.firePan2(v, [2]Contact{a, b})
		} else {
			r.suppressed(KindPan2, id)
		}
	case 3:
		r.resetSession("three contacts")
		a, b, c := r.contacts.at(0), r.contacts.at(1), r.contacts.at(2)
		if v, ok := evalPan3(a, b, c); ok {
			r.firePan3(v, [3]Contact{a, b, c})
		} else {
			r.suppressed(KindPan3, id)
		}
	default:
		r.resetSession("too many contacts")
	}
}

// resetSession stops the hold timer and returns the session to idle.
func (r *Recognizer) resetSession(reason string) {
	if !r.session.armed() {
		return
	}
	r.session.reset()
	r.log.Debug("session reset", zap.String("reason", reason))
}

// Advance moves the hold timer forward by dt. Hold fires from here once the
// single active contact has been down for HoldTime without exhausting its
// travel budget. Time advanced from inside a callback is held back and
// applied after the callback's queued contact events have been processed.
func (r *Recognizer) Advance(dt time.Duration) {
	if r.closed {
		return
	}
	if r.busy {
		if dt > 0 {
			r.deferred += dt
		}
		return
	}
	ticks := r.session.timer.advance(dt)
	for i := 0; i < ticks; i++ {
		if !r.session.tick() {
			continue
		}
		if r.contacts.len() != 1 {
			r.resetSession("hold without single contact")
			return
		}
		c := r.contacts.at(0)
		r.resetSession("hold")
		r.log.Debug("hold", zap.Int("id", c.ID), zapVec("pos", c.Position))
		r.busy = true
		r.fireHold(c)
		r.busy = false
		r.drainPending()
		r.flushDeferred()
		return
	}
}

// flushDeferred applies time passed to Advance while a callback was running.
func (r *Recognizer) flushDeferred() {
	if r.deferred <= 0 || r.busy || r.closed {
		return
	}
	dt := r.deferred
	r.deferred = 0
	r.Advance(dt)
}

// drainPending processes contact events queued by callbacks fired outside
// Handle.
func (r *Recognizer) drainPending() {
	if len(r.pending) == 0 {
		return
	}
	queued := r.pending
	r.pending = nil
	for _, ev := range queued {
		r.Handle(ev)
	}
}

// Update advances the Recognizer by one host frame: it steps an attached
// script, delivers at most one injected contact event, and advances the hold
// timer by dt.
func (r *Recognizer) Update(dt time.Duration) {
	if r.closed {
		return
	}
	if r.script != nil {
		r.script.step(r, dt)
	}
	r.processInjected()
	r.Advance(dt)
}

// Close tears the Recognizer down. The hold timer is stopped, all contacts
// are dropped, and every callback is unregistered; subsequent calls are
// no-ops.
func (r *Recognizer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.session.reset()
	r.contacts.clear()
	r.handlers.clear()
	r.pending = nil
	r.deferred = 0
	r.injectQueue = nil
	r.script = nil
	r.sink = nil
	r.log.Debug("recognizer closed")
}
