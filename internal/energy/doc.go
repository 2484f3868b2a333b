// Package energy provides the energy error terms summed by an implicit
// integrator's nonlinear solver.
//
// A [Term] quantifies how far a candidate end-of-step state is from
// satisfying one physical relationship, in energy units, and supplies the
// gradient of that error with respect to the candidate state. A solver
// searching for a consistent end state minimises the sum of every term.
//
//   - [Term]: the error-term contract
//   - [CheckArguments]: preconditions shared by every term
//   - [PositionVelocity]: trapezoidal-rule consistency of position and velocity
//
// # Example
//
//	l := statespace.NewLayout()
//	term, err := energy.NewPositionVelocity(2.0, l.Vector(3), l.Vector(3))
//	grad := make([]float64, l.Len())
//	e, err := term.Evaluate(grad, before, candidate, dt)
//
// # Thread Safety
//
// Terms are immutable after construction and may be evaluated concurrently.
// Gradient writes are additive and unsynchronised, so concurrent evaluations
// need separate buffers.
package energy
