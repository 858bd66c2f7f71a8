// Package engine coordinates the scroll bubble effect.
//
// An [Engine] owns every piece of effect state in one [Context] and is
// driven by two calls:
//
//   - [Engine.Scroll]: the scroll listener, updates progress, activity and
//     the burst gate
//   - [Engine.Tick]: one animation frame, returns a [Frame] for the renderer
//
// Hosts that already run a single-threaded event loop (bubbletea, raylib)
// call these directly. Other hosts use [Loop], which confines both calls to
// one goroutine and stops exactly once.
//
// # Thread Safety
//
// Engine is NOT safe for concurrent use. All calls must come from the
// goroutine that owns it.
package engine
