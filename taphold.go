package gesture

import "time"

// sessionState tags whether a tap/hold session is live.
type sessionState uint8

const (
	sessionIdle sessionState = iota
	sessionArmed
)

// holdTimer is the session's cooperative clock. It only advances through
// advance, which the Recognizer calls from the host frame loop, and it never
// produces ticks while stopped. Wall-clock time is accumulated and released
// in whole periods.
type holdTimer struct {
	period  time.Duration
	running bool
	accum   time.Duration
	elapsed time.Duration
}

func (t *holdTimer) start() {
	t.stop()
	t.running = true
}

func (t *holdTimer) stop() {
	t.running = false
	t.accum = 0
	t.elapsed = 0
}

// advance adds dt to the timer and returns the number of whole ticks that
// became due. Each due tick is already counted in elapsed.
func (t *holdTimer) advance(dt time.Duration) int {
	if !t.running || dt <= 0 {
		return 0
	}
	t.accum += dt
	n := int(t.accum / t.period)
	t.accum -= time.Duration(n) * t.period
	return n
}

// tick counts one period toward elapsed.
func (t *holdTimer) tick() {
	t.elapsed += t.period
}

// tapHoldSession decides between Tap, Hold, and Drag for a single contact by
// racing elapsed time against a travel budget.
type tapHoldSession struct {
	threshold float64
	holdTime  time.Duration

	state  sessionState
	budget float64
	timer  holdTimer
}

func newTapHoldSession(cfg Config) tapHoldSession {
	return tapHoldSession{
		threshold: cfg.DistanceThreshold,
		holdTime:  cfg.HoldTime,
		budget:    cfg.DistanceThreshold,
		timer:     holdTimer{period: cfg.TickPeriod},
	}
}

// arm starts a fresh session. A running timer from a previous session is
// stopped first.
func (s *tapHoldSession) arm() {
	s.timer.stop()
	s.state = sessionArmed
	s.budget = s.threshold
	s.timer.start()
}

// reset returns the session to idle without resolving it.
func (s *tapHoldSession) reset() {
	s.timer.stop()
	s.state = sessionIdle
	s.budget = s.threshold
}

func (s *tapHoldSession) armed() bool {
	return s.state == sessionArmed
}

// travel charges a movement of length d against the budget.
func (s *tapHoldSession) travel(d float64) {
	if s.state != sessionArmed {
		return
	}
	s.budget -= d
}

// canDrag reports whether the contact has travelled past the threshold.
func (s *tapHoldSession) canDrag() bool {
	return s.state == sessionArmed && s.budget <= 0
}

// withinBudget reports whether the contact is still considered stationary.
func (s *tapHoldSession) withinBudget() bool {
	return s.budget > 0 && s.budget <= s.threshold
}

// held reports whether the press has lasted at least holdTime.
func (s *tapHoldSession) held() bool {
	return s.timer.elapsed >= s.holdTime
}

// tick counts one timer period and reports whether the session now resolves
// to Hold. The caller fires Hold and resets.
func (s *tapHoldSession) tick() bool {
	if s.state != sessionArmed {
		return false
	}
	s.timer.tick()
	return s.held() && s.withinBudget()
}

// tapped reports whether releasing the contact now is a Tap. Hold is only
// ever reported by tick. It does not reset.
func (s *tapHoldSession) tapped() bool {
	return s.state == sessionArmed && s.withinBudget() && !s.held()
}
