// Package trajectory provides closed-form particle trajectories used as exact
// reference motion.
//
// A [HarmonicVector] is constant-acceleration motion superposed with an
// exponentially growing or decaying oscillation. Its time derivative is
// again a HarmonicVector, so a [Harmonic] trajectory derives velocity and
// acceleration once, exactly, at construction.
package trajectory
