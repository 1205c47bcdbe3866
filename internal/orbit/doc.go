// Package orbit computes the kinematics of a planet on a Kepler ellipse.
//
// Given the semi-major axis, eccentricity and period of an orbit, [Generate]
// samples one full period into an ordered sequence of [Frame] values holding
// time, polar angle, radius, position and velocity. Speeds follow the
// vis-viva equation with GM = 4π² (AU, year, solar mass).
//
// [SectorArea] sums the triangular-sector approximation of the area swept by
// the radius vector between consecutive frames, and [CompareAreas] contrasts
// the first and last slices of a period as an empirical check of Kepler's
// second law.
//
// # Example
//
//	p := orbit.Params{A: 1, E: 0.5, T: 1}
//	frames, err := orbit.Generate(p, 180)
//	if err != nil {
//	    return err
//	}
//	cmp, _ := orbit.CompareAreas(frames, 0.2)
//
// # Timing
//
// The default [TimingUniform] advances the polar angle linearly with time.
// [TimingKepler] solves Kepler's equation so the angle is the true anomaly and
// equal areas are swept in equal times for any window.
//
// All functions are pure and safe for concurrent use.
package orbit
