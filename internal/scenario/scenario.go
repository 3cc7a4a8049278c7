// Package scenario loads and replays scripted viewport sessions.
//
// A scenario describes a tracked element, the initial viewport, and a list
// of timed steps (scrolls, resizes, element moves, teardown). Run drives a
// Tracker through the steps on a fake clock and reports every transition.
//
// Example file:
//
//	name: scroll past
//	element: {top: 100, left: 100, width: 300, height: 300}
//	viewport: {width: 1366, height: 768}
//	debounce: 100ms
//	steps:
//	  - at: 0ms
//	    scroll: {x: 0, y: 500}
//	  - at: 50ms
//	    scroll: {x: 0, y: 600}
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-inview"
)

// Duration is a time.Duration that decodes from YAML strings such as
// "150ms". Bare integers are read as milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	if ms, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Box is an element box in document coordinates.
type Box struct {
	Top    int `yaml:"top"`
	Left   int `yaml:"left"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rect converts the box to an inview.Rect.
func (b Box) Rect() inview.Rect {
	return inview.NewRect(b.Top, b.Left, b.Width, b.Height)
}

// Viewport is the initial window size and scroll position.
type Viewport struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	ScrollX int `yaml:"scrollX"`
	ScrollY int `yaml:"scrollY"`
}

// Metrics converts the viewport to inview.Metrics.
func (v Viewport) Metrics() inview.Metrics {
	return inview.Metrics{Width: v.Width, Height: v.Height, ScrollX: v.ScrollX, ScrollY: v.ScrollY}
}

// Point is a scroll position.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Size is a viewport size.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Step is one timed action. Exactly one action field must be set.
type Step struct {
	At       Duration `yaml:"at"`
	Scroll   *Point   `yaml:"scroll,omitempty"`
	Resize   *Size    `yaml:"resize,omitempty"`
	Move     *Box     `yaml:"move,omitempty"`
	Teardown bool     `yaml:"teardown,omitempty"`
}

// Action returns the name of the step's action, or "" if none is set.
func (s Step) Action() string {
	switch {
	case s.Scroll != nil:
		return "scroll"
	case s.Resize != nil:
		return "resize"
	case s.Move != nil:
		return "move"
	case s.Teardown:
		return "teardown"
	}
	return ""
}

func (s Step) actionCount() int {
	n := 0
	if s.Scroll != nil {
		n++
	}
	if s.Resize != nil {
		n++
	}
	if s.Move != nil {
		n++
	}
	if s.Teardown {
		n++
	}
	return n
}

// Scenario is a scripted viewport session.
type Scenario struct {
	Name          string   `yaml:"name,omitempty"`
	Element       Box      `yaml:"element"`
	Viewport      Viewport `yaml:"viewport"`
	Debounce      Duration `yaml:"debounce,omitempty"`
	NotifyInitial bool     `yaml:"notifyInitial,omitempty"`
	Steps         []Step   `yaml:"steps"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks sizes, step offsets and step actions.
func (sc *Scenario) Validate() error {
	if sc.Element.Width < 0 || sc.Element.Height < 0 {
		return fmt.Errorf("element size must not be negative")
	}
	if sc.Viewport.Width < 0 || sc.Viewport.Height < 0 {
		return fmt.Errorf("viewport size must not be negative")
	}
	if sc.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative")
	}

	var prev Duration
	for i, step := range sc.Steps {
		if step.At < 0 {
			return fmt.Errorf("step %d: offset must not be negative", i)
		}
		if step.At < prev {
			return fmt.Errorf("step %d: offset %s is before previous step at %s", i, step.At.Std(), prev.Std())
		}
		prev = step.At

		if n := step.actionCount(); n != 1 {
			return fmt.Errorf("step %d: want exactly one action, got %d", i, n)
		}
		if step.Resize != nil && (step.Resize.Width < 0 || step.Resize.Height < 0) {
			return fmt.Errorf("step %d: resize must not be negative", i)
		}
		if step.Move != nil && (step.Move.Width < 0 || step.Move.Height < 0) {
			return fmt.Errorf("step %d: element size must not be negative", i)
		}
	}
	return nil
}

// DebounceOrDefault returns the configured debounce, or
// inview.DefaultDebounce when unset.
func (sc *Scenario) DebounceOrDefault() time.Duration {
	if sc.Debounce == 0 {
		return inview.DefaultDebounce
	}
	return sc.Debounce.Std()
}
