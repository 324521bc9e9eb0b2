package demo

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Step is one scripted event.
type Step struct {
	Target  string `yaml:"target" json:"target"`
	Event   string `yaml:"event" json:"event"`
	Payload any    `yaml:"payload,omitempty" json:"payload,omitempty"`
}

// DefaultScript touches every component of the demo.
var DefaultScript = []Step{
	{Target: "inc", Event: "click"},
	{Target: "inc", Event: "click"},
	{Target: "theme", Event: "click"},
	{Target: "add", Event: "click"},
	{Target: "todo-1", Event: "click"},
	{Target: "rotate", Event: "click"},
	{Target: "tick", Event: "click"},
	{Target: "focus", Event: "click"},
	{Target: "reset", Event: "click"},
	{Target: "clock-toggle", Event: "click"},
}

// LoadScript decodes a YAML list of steps.
//
//	- target: inc
//	  event: click
//	- target: todo-2
//	  event: dblclick
func LoadScript(r io.Reader) ([]Step, error) {
	var steps []Step
	if err := yaml.NewDecoder(r).Decode(&steps); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, st := range steps {
		if st.Target == "" || st.Event == "" {
			return nil, fmt.Errorf("step %d: target and event are required", i)
		}
	}
	return steps, nil
}

// Play dispatches every step in order, settling the loop after each one.
// fn, when non-nil, is called after each step.
func (s *Session) Play(steps []Step, fn func(i int, st Step)) error {
	for i, st := range steps {
		if _, err := s.DispatchPayload(st.Target, st.Event, st.Payload); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		s.Settle()
		if fn != nil {
			fn(i, st)
		}
	}
	return nil
}
