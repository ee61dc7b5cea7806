// Package compare derives local-error diagnostics between trajectories.
//
// The package works on loaded [trajectory.Result] values:
//
//   - [LocalError]: pointwise |candidate - reference| for theta and theta_dot
//   - [CheckGrid]: reports when two trajectories do not share a time grid
//   - [Summarize]: max, mean and final error per quantity
//   - [DominantPeriod]: oscillation period from the power spectrum of theta
//
// # Alignment
//
// Samples are paired by row index. Nothing is interpolated, so the error is
// only meaningful when both inputs were produced on the same time grid; use
// [CheckGrid] to find out.
package compare
