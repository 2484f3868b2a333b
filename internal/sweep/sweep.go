// Package sweep checks the position-velocity energy term against exact
// trajectories over a range of time steps.
//
// For a smooth trajectory the trapezoidal rule's displacement defect is
// O(dt³), so the term's error falls as O(dt⁴). [Result.Order] estimates that
// exponent from a log-log fit.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/energy"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/statespace"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/trajectory"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/vector"
)

var (
	// ErrInvalidOptions indicates a sweep with a bad step range or point count.
	ErrInvalidOptions = errors.New("sweep: invalid options")

	// ErrTooFewPoints indicates fewer than two non-zero errors to fit an order to.
	ErrTooFewPoints = errors.New("sweep: too few non-zero errors to estimate order")
)

type Options struct {
	Mass    float64 `json:"mass"`
	T       float64 `json:"t"`
	MinDt   float64 `json:"min_dt"`
	MaxDt   float64 `json:"max_dt"`
	Points  int     `json:"points"`
	Workers int     `json:"-"`
}

func (o Options) Validate() error {
	if !(o.MinDt > 0) || math.IsInf(o.MaxDt, 0) || !(o.MaxDt >= o.MinDt) {
		return fmt.Errorf("%w: need 0 < min_dt <= max_dt, got [%v, %v]", ErrInvalidOptions, o.MinDt, o.MaxDt)
	}
	if o.Points < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidOptions, o.Points)
	}
	return nil
}

// Point is the term's response to one step of the exact trajectory.
type Point struct {
	Dt           float64 `json:"dt"`
	Error        float64 `json:"error"`
	GradientNorm float64 `json:"gradient_norm"`
}

type Result struct {
	Options Options `json:"options"`
	Points  []Point `json:"points"`

	// TotalGradient is the sum of the gradients of every step.
	TotalGradient []float64 `json:"total_gradient,omitempty"`
}

// Order is the least-squares slope of log(error) against log(dt). Points with
// zero error are skipped.
func (r *Result) Order() (float64, error) {
	xs := make([]float64, 0, len(r.Points))
	ys := make([]float64, 0, len(r.Points))
	for _, p := range r.Points {
		if p.Error > 0 {
			xs = append(xs, math.Log(p.Dt))
			ys = append(ys, math.Log(p.Error))
		}
	}
	if len(xs) < 2 {
		return 0, ErrTooFewPoints
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope, nil
}

// Errors returns the error of every point, in step order.
func (r *Result) Errors() []float64 {
	e := make([]float64, len(r.Points))
	for i, p := range r.Points {
		e[i] = p.Error
	}
	return e
}

// GradientNorms returns the gradient norm of every point, in step order.
func (r *Result) GradientNorms() []float64 {
	g := make([]float64, len(r.Points))
	for i, p := range r.Points {
		g[i] = p.GradientNorm
	}
	return g
}

// Sample adds the particle's position and velocity at t into state through
// the given mappers. The mapped ranges of state should be zero beforehand.
func Sample(p trajectory.Particle, t float64, position, velocity statespace.Mapper[vector.Vector], state []float64) error {
	if err := position.FromVector(state, vector.FromR3(p.Position(t))); err != nil {
		return err
	}
	return velocity.FromVector(state, vector.FromR3(p.Velocity(t)))
}

// Run evaluates a position-velocity term for steps from opts.T to opts.T+dt
// of p, for log-spaced dt in [opts.MinDt, opts.MaxDt].
func Run(ctx context.Context, p trajectory.Particle, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	layout := statespace.NewLayout()
	position, velocity := layout.Vector(3), layout.Vector(3)
	term, err := energy.NewPositionVelocity(opts.Mass, position, velocity)
	if err != nil {
		return nil, err
	}

	n := layout.Len()
	before := make([]float64, n)
	if err := Sample(p, opts.T, position, velocity, before); err != nil {
		return nil, err
	}

	dts := floats.LogSpan(make([]float64, opts.Points), opts.MinDt, opts.MaxDt)
	points := make([]Point, len(dts))
	errs := make([]error, len(dts))
	pool := statespace.NewBufferPool(n)

	// One running total per chunk, reduced once every worker is done.
	size := ChunkSize(len(dts), opts.Workers, 4)
	totals := make([][]float64, (len(dts)+size-1)/size)
	for i := range totals {
		totals[i] = make([]float64, n)
	}

	ParallelFor(len(dts), opts.Workers, 4, func(start, end int) {
		grad := pool.Get()
		defer pool.Put(grad)
		candidate := make([]float64, n)
		total := totals[start/size]

		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}

			clear(candidate)
			clear(grad)
			dt := dts[i]
			if err := Sample(p, opts.T+dt, position, velocity, candidate); err != nil {
				errs[i] = err
				return
			}

			e, err := term.Evaluate(grad, before, candidate, dt)
			if err != nil {
				errs[i] = fmt.Errorf("dt=%g: %w", dt, err)
				return
			}
			points[i] = Point{Dt: dt, Error: e, GradientNorm: floats.Norm(grad, 2)}
			floats.Add(total, grad)
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sum := make([]float64, n)
	if err := statespace.Accumulate(sum, totals...); err != nil {
		return nil, err
	}

	return &Result{Options: opts, Points: points, TotalGradient: sum}, nil
}
