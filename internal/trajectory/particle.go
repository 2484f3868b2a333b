package trajectory

import "gonum.org/v1/gonum/spatial/r3"

// Particle is the motion of one particle as functions of time. Velocity is
// the time derivative of Position, and Acceleration of Velocity.
type Particle interface {
	Position(t float64) r3.Vec
	Velocity(t float64) r3.Vec
	Acceleration(t float64) r3.Vec
}

// Harmonic is a Particle whose position is a HarmonicVector.
type Harmonic struct {
	position     HarmonicVector
	velocity     HarmonicVector
	acceleration HarmonicVector
}

var _ Particle = (*Harmonic)(nil)

func NewHarmonic(position HarmonicVector) (*Harmonic, error) {
	if err := position.Validate(); err != nil {
		return nil, err
	}
	velocity := position.Derivative()
	return &Harmonic{
		position:     position,
		velocity:     velocity,
		acceleration: velocity.Derivative(),
	}, nil
}

func (h *Harmonic) Position(t float64) r3.Vec     { return h.position.At(t) }
func (h *Harmonic) Velocity(t float64) r3.Vec     { return h.velocity.At(t) }
func (h *Harmonic) Acceleration(t float64) r3.Vec { return h.acceleration.At(t) }

func (h *Harmonic) PositionFunction() HarmonicVector     { return h.position }
func (h *Harmonic) VelocityFunction() HarmonicVector     { return h.velocity }
func (h *Harmonic) AccelerationFunction() HarmonicVector { return h.acceleration }
