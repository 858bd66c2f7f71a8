// Package viz is the terminal page for the bubble effect.
//
// [Model] is a Bubble Tea program. It shows a loading screen for the
// configured time, then activates the engine and renders:
//
//   - the page, a viewport of full-height sections whose headlines widen
//     when the bubble is near
//   - the bubble panel, a braille [Canvas] with the bubble, its exit
//     transition and the droplets
//   - the stats panel with the effect context and a progress graph
//
// # Key Bindings
//
//	j/k ↑/↓   - Scroll a line
//	pgup/pgdn - Scroll a page
//	g/G       - Top/bottom
//	t         - Cycle themes
//	s         - Toggle stats
//	?         - Toggle help
//	q         - Quit
//
// The mouse wheel scrolls three lines.
package viz
