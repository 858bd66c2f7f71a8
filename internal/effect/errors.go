package effect

import "errors"

// Configuration errors. The effect itself never fails at runtime; these are
// returned when loading configs and scenarios.
var (
	// ErrInvalidThresholds indicates burst thresholds outside [0,1] or with
	// the exit threshold above the enter threshold.
	ErrInvalidThresholds = errors.New("effect: invalid burst thresholds")

	// ErrInvalidRadius indicates a non-positive proximity radius or scale.
	ErrInvalidRadius = errors.New("effect: invalid proximity settings")

	// ErrInvalidDuration indicates a negative or zero duration where one is required.
	ErrInvalidDuration = errors.New("effect: invalid duration")

	// ErrNoBlocks indicates a page without text blocks.
	ErrNoBlocks = errors.New("effect: no text blocks")

	// ErrInvalidParticles indicates an unusable particle configuration.
	ErrInvalidParticles = errors.New("effect: invalid particle settings")

	// ErrInvalidScenario indicates a malformed replay scenario.
	ErrInvalidScenario = errors.New("effect: invalid scenario")
)
