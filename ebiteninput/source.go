// Package ebiteninput feeds Ebitengine touch and mouse input into a
// gesture.Recognizer.
//
// Call [Source.Update] once per ebiten.Game.Update. It polls the active
// touches (and, optionally, the left mouse button), turns frame-to-frame
// differences into contact start, move and end events, and advances the
// recognizer's hold timer by one tick of the game loop.
package ebiteninput

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gesture"
)

// MouseContactID is the contact id reported for the left mouse button.
// Touch contacts use their ebiten.TouchID, which is never negative.
const MouseContactID = -1

// inputState is the subset of ebiten's input API the Source polls.
type inputState interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	CursorPosition() (int, int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	TPS() int
}

// ebitenState reads live input from Ebitengine.
type ebitenState struct{}

func (ebitenState) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenState) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }
func (ebitenState) CursorPosition() (int, int)                  { return ebiten.CursorPosition() }

func (ebitenState) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenState) TPS() int { return ebiten.TPS() }

// Options configures a Source.
type Options struct {
	// Mouse reports the left mouse button as contact MouseContactID.
	Mouse bool

	// ScreenToWorld, if set, converts screen coordinates before they reach
	// the recognizer (for example through a camera).
	ScreenToWorld func(x, y float64) (float64, float64)
}

// liveContact is a contact the Source has reported as started.
type liveContact struct {
	id   int
	pos  gesture.Vec2
	seen bool
}

// sample is one contact observed during the current frame.
type sample struct {
	id  int
	pos gesture.Vec2
}

// Source polls Ebitengine input and drives a gesture.Recognizer.
type Source struct {
	r    *gesture.Recognizer
	in   inputState
	opts Options

	live     []liveContact
	touchBuf []ebiten.TouchID
	frame    []sample
}

// New creates a Source that feeds r from Ebitengine's input state.
func New(r *gesture.Recognizer, opts Options) *Source {
	return newSource(r, ebitenState{}, opts)
}

func newSource(r *gesture.Recognizer, in inputState, opts Options) *Source {
	return &Source{r: r, in: in, opts: opts}
}

// Update polls input, reports changes to the recognizer, and advances it by
// one frame (1/TPS).
func (s *Source) Update() {
	s.poll()
	s.sync()
	tps := s.in.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	s.r.Update(time.Second / time.Duration(tps))
}

// Close cancels every live contact. The recognizer itself is left open.
func (s *Source) Close() {
	for _, lc := range s.live {
		s.r.Cancel(lc.id)
	}
	s.live = s.live[:0]
}

// poll collects this frame's contacts into s.frame, touches in ebiten's
// order followed by the mouse.
func (s *Source) poll() {
	s.frame = s.frame[:0]
	s.touchBuf = s.in.AppendTouchIDs(s.touchBuf[:0])
	for _, tid := range s.touchBuf {
		x, y := s.in.TouchPosition(tid)
		s.frame = append(s.frame, sample{id: int(tid), pos: s.toWorld(x, y)})
	}
	if s.opts.Mouse && s.in.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := s.in.CursorPosition()
		s.frame = append(s.frame, sample{id: MouseContactID, pos: s.toWorld(x, y)})
	}
}

func (s *Source) toWorld(x, y int) gesture.Vec2 {
	wx, wy := float64(x), float64(y)
	if s.opts.ScreenToWorld != nil {
		wx, wy = s.opts.ScreenToWorld(wx, wy)
	}
	return gesture.Vec2{X: wx, Y: wy}
}

// sync diffs s.frame against the live contacts: moved contacts first, then
// lifted ones, then new ones, so the arity seen by each event matches the
// previous frame as long as possible.
func (s *Source) sync() {
	for i := range s.live {
		s.live[i].seen = false
	}

	var fresh []sample
	for _, smp := range s.frame {
		i := s.liveIndex(smp.id)
		if i < 0 {
			fresh = append(fresh, smp)
			continue
		}
		lc := &s.live[i]
		lc.seen = true
		if lc.pos != smp.pos {
			lc.pos = smp.pos
			s.r.Move(lc.id, smp.pos)
		}
	}

	kept := s.live[:0]
	for _, lc := range s.live {
		if lc.seen {
			kept = append(kept, lc)
			continue
		}
		s.r.End(lc.id)
	}
	s.live = kept

	for _, smp := range fresh {
		s.live = append(s.live, liveContact{id: smp.id, pos: smp.pos, seen: true})
		s.r.Start(smp.id, smp.pos)
	}
}

func (s *Source) liveIndex(id int) int {
	for i := range s.live {
		if s.live[i].id == id {
			return i
		}
	}
	return -1
}
