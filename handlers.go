package gesture

// Handlers is the record of optional gesture callbacks passed to New. Any
// field may be nil; a missing handler never affects recognition, only
// delivery.
type Handlers struct {
	Tap    func(Contact)
	Hold   func(Contact)
	Drag   func(Contact)
	Pinch  func(delta float64)
	Rotate func(degrees float64)
	Pan2   func(direction Vec2, contacts [2]Contact)
	Pan3   func(direction Vec2, contacts [3]Contact)
}

// --- Handler registry ---

type handler[F any] struct {
	id uint32
	fn F
}

// removeHandler returns s without the handler id. It never writes to s's
// backing array, so a fire loop ranging over s when a callback removes a
// handler keeps iterating the list it started with.
func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			out := make([]handler[F], 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

type handlerRegistry struct {
	tap    []handler[func(Contact)]
	hold   []handler[func(Contact)]
	drag   []handler[func(Contact)]
	pinch  []handler[func(float64)]
	rotate []handler[func(float64)]
	pan2   []handler[func(Vec2, [2]Contact)]
	pan3   []handler[func(Vec2, [3]Contact)]
	nextID uint32
}

func (r *handlerRegistry) next() uint32 {
	r.nextID++
	return r.nextID
}

func (r *handlerRegistry) clear() {
	*r = handlerRegistry{nextID: r.nextID}
}

// add registers every non-nil field of h.
func (r *handlerRegistry) add(h Handlers) {
	if h.Tap != nil {
		r.tap = append(r.tap, handler[func(Contact)]{id: r.next(), fn: h.Tap})
	}
	if h.Hold != nil {
		r.hold = append(r.hold, handler[func(Contact)]{id: r.next(), fn: h.Hold})
	}
	if h.Drag != nil {
		r.drag = append(r.drag, handler[func(Contact)]{id: r.next(), fn: h.Drag})
	}
	if h.Pinch != nil {
		r.pinch = append(r.pinch, handler[func(float64)]{id: r.next(), fn: h.Pinch})
	}
	if h.Rotate != nil {
		r.rotate = append(r.rotate, handler[func(float64)]{id: r.next(), fn: h.Rotate})
	}
	if h.Pan2 != nil {
		r.pan2 = append(r.pan2, handler[func(Vec2, [2]Contact)]{id: r.next(), fn: h.Pan2})
	}
	if h.Pan3 != nil {
		r.pan3 = append(r.pan3, handler[func(Vec2, [3]Contact)]{id: r.next(), fn: h.Pan3})
	}
}

// CallbackHandle allows removing a callback registered with one of the
// Recognizer.On* methods.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind Kind
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case KindTap:
		h.reg.tap = removeHandler(h.reg.tap, h.id)
	case KindHold:
		h.reg.hold = removeHandler(h.reg.hold, h.id)
	case KindDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case KindPinch:
		h.reg.pinch = removeHandler(h.reg.pinch, h.id)
	case KindRotate:
		h.reg.rotate = removeHandler(h.reg.rotate, h.id)
	case KindPan2:
		h.reg.pan2 = removeHandler(h.reg.pan2, h.id)
	case KindPan3:
		h.reg.pan3 = removeHandler(h.reg.pan3, h.id)
	}
}

// --- Recognizer-level registration ---

// OnTap registers a callback for Tap gestures.
func (r *Recognizer) OnTap(fn func(Contact)) CallbackHandle {
	id := r.handlers.next()
	r.handlers.tap = append(r.handlers.tap, handler[func(Contact)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: KindTap}
}

// OnHold registers a callback for Hold gestures.
func (r *Recognizer) OnHold(fn func(Contact)) CallbackHandle {
	id := r.handlers.next()
	r.handlers.hold = append(r.handlers.hold, handler[func(Contact)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: KindHold}
}

// OnDrag registers a callback for Drag gestures.
func (r *Recognizer) OnDrag(fn func(Contact)) CallbackHandle {
	id := r.handlers.next()
	r.handlers.drag = append(r.handlers.drag, handler[func(Contact)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: KindDrag}
}

// OnPinch registers a callback for Pinch gestures. The argument is the signed
// change in distance between the two contacts.
func (r *Recognizer) OnPinch(fn func(delta float64)) CallbackHandle {
	id := r.handlers.next()
	r.handlers.pinch = append(r.handlers.pinch, handler[func(float64)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: KindPinch}
}

// OnRotate registers a callback for Rotate gestures. The argument is in
// degrees, scaled by RotateGain.
func (r *Recognizer) OnRotate(fn func(degrees float64)) CallbackHandle {
	id := r.handlers.next()
	r.handlers.rotate = append(r.handlers.rotate, handler[func(float64)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: KindRotate}
}

// OnPan2 registers a callback for two-finger pans.
func (r *Recognizer) OnPan2(fn func(direction Vec2, contacts [2]Contact)) CallbackHandle {
	id := r.handlers.next()
	r.handlers.pan2 = append(r.handlers.pan2, handler[func(Vec2, [2]Contact)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: KindPan2}
}

// OnPan3 registers a callback for three-finger pans.
func (r *Recognizer) OnPan3(fn func(direction Vec2, contacts [3]Contact)) CallbackHandle {
	id := r.handlers.next()
	r.handlers.pan3 = append(r.handlers.pan3, handler[func(Vec2, [3]Contact)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, kind: KindPan3}
}

// --- Event dispatch ---

func (r *Recognizer) fireContact(kind Kind, list []handler[func(Contact)], c Contact) {
	for _, h := range list {
		h.fn(c)
	}
	r.emit(Event{Kind: kind, Contact: c})
}

func (r *Recognizer) fireTap(c Contact)  { r.fireContact(KindTap, r.handlers.tap, c) }
func (r *Recognizer) fireHold(c Contact) { r.fireContact(KindHold, r.handlers.hold, c) }
func (r *Recognizer) fireDrag(c Contact) { r.fireContact(KindDrag, r.handlers.drag, c) }

func (r *Recognizer) firePinch(delta float64) {
	for _, h := range r.handlers.pinch {
		h.fn(delta)
	}
	r.emit(Event{Kind: KindPinch, Value: delta})
}

func (r *Recognizer) fireRotate(deg float64) {
	for _, h := range r.handlers.rotate {
		h.fn(deg)
	}
	r.emit(Event{Kind: KindRotate, Value: deg})
}

func (r *Recognizer) firePan2(dir Vec2, contacts [2]Contact) {
	for _, h := range r.handlers.pan2 {
		h.fn(dir, contacts)
	}
	r.emit(Event{Kind: KindPan2, Direction: dir, Contacts: contacts[:]})
}

func (r *Recognizer) firePan3(dir Vec2, contacts [3]Contact) {
	for _, h := range r.handlers.pan3 {
		h.fn(dir, contacts)
	}
	r.emit(Event{Kind: KindPan3, Direction: dir, Contacts: contacts[:]})
}

func (r *Recognizer) emit(ev Event) {
	if r.sink != nil {
		r.sink.EmitEvent(ev)
	}
}
