package snaek

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `yaml:"action"`
	Label  string `yaml:"label,omitempty"`
	X      int16  `yaml:"x,omitempty"`
	Y      int16  `yaml:"y,omitempty"`
	FromX  int16  `yaml:"fromX,omitempty"`
	FromY  int16  `yaml:"fromY,omitempty"`
	ToX    int16  `yaml:"toX,omitempty"`
	ToY    int16  `yaml:"toY,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

// testScript is the top-level structure of a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual testing.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a test script. Scripts are YAML; JSON scripts parse
// unchanged since JSON is a subset of YAML.
//
//	steps:
//	  - {action: screenshot, label: initial}
//	  - {action: click, x: 40, y: 12}
//	  - {action: wait, frames: 3}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("snaek: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("snaek: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "press", "release", "move", "hover", "wait":
		default:
			return nil, fmt.Errorf("snaek: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Input steps are queued on inj;
// screenshot steps call shoot with their label. The runner waits for inj to
// drain before starting the next step.
func (r *TestRunner) Step(inj *Injector, shoot func(label string)) {
	if r.done {
		return
	}
	if inj.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if shoot != nil {
			shoot(st.Label)
		}
	case "click":
		inj.InjectClick(st.X, st.Y)
	case "drag":
		inj.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "press":
		inj.InjectPress(st.X, st.Y)
	case "release":
		inj.InjectRelease(st.X, st.Y)
	case "move":
		inj.InjectMove(st.X, st.Y)
	case "hover":
		inj.InjectHover(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && inj.Pending() == 0 {
		r.done = true
	}
}
