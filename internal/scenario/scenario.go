// Package scenario replays scripted scroll sessions against the effect
// without a display.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/bubblescroll/internal/effect"
	"gopkg.in/yaml.v3"
)

const (
	DefaultViewport = 1000.0
	DefaultDocument = 4000.0
	DefaultFrame    = 16 * time.Millisecond
)

// Scenario is a scripted scroll session.
type Scenario struct {
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description"`
	ViewportHeight float64       `yaml:"viewport_height"`
	DocumentHeight float64       `yaml:"document_height"`
	Frame          time.Duration `yaml:"frame"`
	Tail           time.Duration `yaml:"tail"`
	Steps          []Step        `yaml:"steps"`
}

// Step is one scroll event, At after the effect becomes active.
type Step struct {
	At             time.Duration `yaml:"at"`
	Position       float64       `yaml:"position"`
	ViewportHeight float64       `yaml:"viewport_height,omitempty"`
	DocumentHeight float64       `yaml:"document_height,omitempty"`
}

// Load reads a scenario from a YAML file and fills in defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

func (sc *Scenario) applyDefaults() {
	if sc.ViewportHeight == 0 {
		sc.ViewportHeight = DefaultViewport
	}
	if sc.DocumentHeight == 0 {
		sc.DocumentHeight = DefaultDocument
	}
	if sc.Frame == 0 {
		sc.Frame = DefaultFrame
	}
	if sc.Tail == 0 {
		sc.Tail = time.Second
	}
}

// Validate requires a positive frame, at least one step and steps in time order.
func (sc *Scenario) Validate() error {
	if sc.Frame <= 0 {
		return fmt.Errorf("%w: frame must be positive, got %v", effect.ErrInvalidScenario, sc.Frame)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: no steps", effect.ErrInvalidScenario)
	}
	for i := 1; i < len(sc.Steps); i++ {
		if sc.Steps[i].At < sc.Steps[i-1].At {
			return fmt.Errorf("%w: step %d at %v is before step %d at %v",
				effect.ErrInvalidScenario, i+1, sc.Steps[i].At, i, sc.Steps[i-1].At)
		}
	}
	if sc.Steps[0].At < 0 {
		return fmt.Errorf("%w: negative step time", effect.ErrInvalidScenario)
	}
	return nil
}

// Sample converts a step into scroll geometry, falling back to the
// scenario-wide heights.
func (sc *Scenario) Sample(s Step) effect.ScrollSample {
	out := effect.ScrollSample{
		PositionPx:       s.Position,
		ViewportHeightPx: sc.ViewportHeight,
		DocumentHeightPx: sc.DocumentHeight,
	}
	if s.ViewportHeight > 0 {
		out.ViewportHeightPx = s.ViewportHeight
	}
	if s.DocumentHeight > 0 {
		out.DocumentHeightPx = s.DocumentHeight
	}
	return out
}

// Duration is the time of the last step plus the tail.
func (sc *Scenario) Duration() time.Duration {
	if len(sc.Steps) == 0 {
		return sc.Tail
	}
	return sc.Steps[len(sc.Steps)-1].At + sc.Tail
}

// ScrollToEnd builds a scenario that scrolls from top to bottom in n even
// steps over d, then back up to the top.
func ScrollToEnd(n int, d time.Duration) *Scenario {
	sc := &Scenario{Name: "scroll-to-end", Description: "scroll down, burst, scroll back up"}
	sc.applyDefaults()
	if n < 1 {
		n = 1
	}
	bottom := sc.DocumentHeight - sc.ViewportHeight
	for i := 0; i <= n; i++ {
		sc.Steps = append(sc.Steps, Step{
			At:       time.Duration(i) * d / time.Duration(n),
			Position: bottom * float64(i) / float64(n),
		})
	}
	sc.Steps = append(sc.Steps, Step{At: d + time.Second, Position: 0})
	return sc
}
