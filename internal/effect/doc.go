// Package effect provides the shared types of the scroll bubble effect.
//
// The effect fuses three inputs into one animated state:
//
//   - [ScrollSample]: raw scroll geometry, normalized by [ScrollSample.Progress]
//   - elapsed time, which drives the idle drift of the bubble
//   - the burst gate state, which decides whether the bubble exists at all
//
// The outputs are a [Visual] for the bubble and one [BlockState] per
// [TextBlock]. Every output is derived each frame; nothing here is persisted.
package effect
