package gesture

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `yaml:"action"`
	ID     int     `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	FromX  float64 `yaml:"fromX"`
	FromY  float64 `yaml:"fromY"`
	ToX    float64 `yaml:"toX"`
	ToY    float64 `yaml:"toY"`
	Frames int     `yaml:"frames"`
	MS     int     `yaml:"ms"`
}

// script is the top-level structure of a gesture script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays a scripted sequence of contact events through a
// Recognizer, one step per frame. Attach it with SetScriptRunner.
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
	wait   time.Duration
	done   bool
}

// LoadScript parses a YAML or JSON gesture script:
//
//	steps:
//	  - {action: start, id: 1, x: 100, y: 100}
//	  - {action: wait, ms: 1100}
//	  - {action: end, id: 1}
//
// Supported actions are start, move, end, cancel, tap, drag and wait.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "start", "move", "end", "cancel", "tap", "drag":
		case "wait":
			if st.MS < 0 {
				return nil, fmt.Errorf("parse gesture script: step %d: negative wait %dms", i, st.MS)
			}
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the Recognizer. The runner is
// stepped from Update before injected input is processed. Pass nil to detach.
func (r *Recognizer) SetScriptRunner(runner *ScriptRunner) {
	r.script = runner
}

// Done reports whether every step of the script has been executed and its
// injected input consumed.
func (s *ScriptRunner) Done() bool {
	return s.done
}

// step advances the runner by one frame of length dt.
func (s *ScriptRunner) step(r *Recognizer, dt time.Duration) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.Pending() > 0 {
		return
	}
	if s.wait > 0 {
		s.wait -= dt
		if s.wait > 0 {
			return
		}
		s.wait = 0
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "start":
		r.InjectStart(st.ID, st.X, st.Y)
	case "move":
		r.InjectMove(st.ID, st.X, st.Y)
	case "end":
		r.InjectEnd(st.ID)
	case "cancel":
		r.InjectCancel(st.ID)
	case "tap":
		r.InjectTap(st.ID, st.X, st.Y)
	case "drag":
		r.InjectDrag(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		s.wait = time.Duration(st.MS) * time.Millisecond
	}

	// Check if we've reached the end after executing.
	if s.cursor >= len(s.steps) && s.wait == 0 && r.Pending() == 0 {
		s.done = true
	}
}
