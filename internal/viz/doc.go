// Package viz renders orbits in the terminal.
//
// [Canvas] is a braille dot grid with a [Projection] from the orbital plane.
// [OrbitModel] is a Bubble Tea model that replays a precomputed frame
// sequence: the trail of the ellipse, the Sun at the focus, the planet with
// its velocity vector and a running speed graph.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from perihelion
//	T     - Cycle color themes
//	+/-   - Change playback speed
//	Q     - Quit
package viz
