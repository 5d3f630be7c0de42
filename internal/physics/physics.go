// Package physics derives the demo's decorative motion figures from a move.
package physics

import (
	"math"
	"time"

	"github.com/AndrewSs45/Projecto-Algebra/internal/model"
)

const (
	// DefaultElapsed is used when no selection time is known.
	DefaultElapsed = 500 * time.Millisecond
	// Untimed marks a move with no measured selection time.
	Untimed time.Duration = -1
	// MinElapsed keeps very fast clicks from dividing by almost zero.
	MinElapsed = 100 * time.Millisecond
)

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Motion treats a move as uniform acceleration from rest. Distances are in
// cells and the "mass" of a piece is the number of moves it had available.
type Motion struct {
	Distance     float64 `json:"distance"`
	Seconds      float64 `json:"seconds"`
	Velocity     float64 `json:"velocity"`
	Angle        float64 `json:"angle"`
	Acceleration float64 `json:"acceleration"`
	Mass         int     `json:"mass"`
	Force        float64 `json:"force"`
	ForceVec     Vector  `json:"forceVector"`
	AccelVec     Vector  `json:"accelerationVector"`
}

// Compute returns the motion of a move from one square to another. A negative
// elapsed duration, such as Untimed, falls back to DefaultElapsed. Measured
// durations, zero included, are clamped to MinElapsed.
func Compute(from, to model.Square, elapsed time.Duration, mass int) Motion {
	dx := float64(to.File - from.File)
	dy := float64(to.Rank - from.Rank)

	switch {
	case elapsed < 0:
		elapsed = DefaultElapsed
	case elapsed < MinElapsed:
		elapsed = MinElapsed
	}
	t := elapsed.Seconds()

	m := Motion{
		Distance: math.Hypot(dx, dy),
		Seconds:  t,
		Mass:     mass,
	}
	m.Velocity = m.Distance / t
	m.Acceleration = 2 * m.Distance / (t * t)
	m.Force = float64(mass) * m.Acceleration

	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	m.Angle = angle

	rad := angle * math.Pi / 180
	m.ForceVec = Vector{X: m.Force * math.Cos(rad), Y: m.Force * math.Sin(rad)}
	m.AccelVec = Vector{X: m.Acceleration * math.Cos(rad), Y: m.Acceleration * math.Sin(rad)}
	return m
}

// FromResult is Compute applied to a completed move.
func FromResult(r model.MoveResult, elapsed time.Duration, mass int) Motion {
	return Compute(r.From, r.To, elapsed, mass)
}
