package energy

import (
	"fmt"
	"math"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/statespace"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/vector"
)

// PositionVelocity penalises disagreement between a step's displacement and
// the trapezoidal-rule displacement dt*(v0+v)/2.
//
// With ve = (x-x0)/dt - (v0+v)/2 the error is m*|ve|²/2, so a mismatch in
// velocity is expressed as the kinetic energy of the mismatch.
type PositionVelocity struct {
	mass     float64
	position statespace.Mapper[vector.Vector]
	velocity statespace.Mapper[vector.Vector]
}

var _ Term = (*PositionVelocity)(nil)

// NewPositionVelocity creates the term for the given mass scale and the
// mappers locating one body's position and velocity in the state vector.
func NewPositionVelocity(mass float64, position, velocity statespace.Mapper[vector.Vector]) (*PositionVelocity, error) {
	if !(mass > 0) || math.IsInf(mass, 1) {
		return nil, fmt.Errorf("%w: mass must be positive and finite, got %v", ErrInvalidConfiguration, mass)
	}
	if position == nil {
		return nil, fmt.Errorf("%w: missing position mapper", ErrInvalidConfiguration)
	}
	if velocity == nil {
		return nil, fmt.Errorf("%w: missing velocity mapper", ErrInvalidConfiguration)
	}
	if position.Dimension() != velocity.Dimension() {
		return nil, fmt.Errorf("%w: position mapper dimension %d, velocity mapper dimension %d",
			ErrInvalidConfiguration, position.Dimension(), velocity.Dimension())
	}
	return &PositionVelocity{mass: mass, position: position, velocity: velocity}, nil
}

func (p *PositionVelocity) Mass() float64                              { return p.mass }
func (p *PositionVelocity) Position() statespace.Mapper[vector.Vector] { return p.position }
func (p *PositionVelocity) Velocity() statespace.Mapper[vector.Vector] { return p.velocity }

func (p *PositionVelocity) IsValidForDimension(n int) bool {
	return p.position.IsValidForDimension(n) && p.velocity.IsValidForDimension(n)
}

func (p *PositionVelocity) Evaluate(grad, before, candidate []float64, dt float64) (float64, error) {
	if err := CheckArguments(grad, before, candidate, dt); err != nil {
		return 0, err
	}

	x0, err := p.position.ToObject(before)
	if err != nil {
		return 0, fmt.Errorf("%w: position: %w", ErrInvalidArgument, err)
	}
	v0, err := p.velocity.ToObject(before)
	if err != nil {
		return 0, fmt.Errorf("%w: velocity: %w", ErrInvalidArgument, err)
	}
	x, err := p.position.ToObject(candidate)
	if err != nil {
		return 0, fmt.Errorf("%w: position: %w", ErrInvalidArgument, err)
	}
	v, err := p.velocity.ToObject(candidate)
	if err != nil {
		return 0, fmt.Errorf("%w: velocity: %w", ErrInvalidArgument, err)
	}

	xRate := x.Sub(x0).Scale(1 / dt)
	vMean := v.Mean(v0)
	ve := xRate.Sub(vMean)
	e := 0.5 * p.mass * ve.Magnitude2()

	dedx := ve.Scale(p.mass / dt)
	dedv := ve.Scale(-0.5 * p.mass)

	if err := p.position.FromVector(grad, dedx); err != nil {
		return 0, fmt.Errorf("%w: position gradient: %w", ErrInvalidArgument, err)
	}
	if err := p.velocity.FromVector(grad, dedv); err != nil {
		return 0, fmt.Errorf("%w: velocity gradient: %w", ErrInvalidArgument, err)
	}

	return e, nil
}
