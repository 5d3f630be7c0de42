package physics

import (
	"math"
	"testing"
	"time"

	"github.com/AndrewSs45/Projecto-Algebra/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		from    model.Square
		to      model.Square
		elapsed time.Duration
		mass    int
		want    Motion
	}{
		{
			name:    "pawn double step in one second",
			from:    model.Square{File: 4, Rank: 6},
			to:      model.Square{File: 4, Rank: 4},
			elapsed: time.Second,
			mass:    2,
			want: Motion{
				Distance: 2, Seconds: 1, Velocity: 2, Angle: 270,
				Acceleration: 4, Mass: 2, Force: 8,
				ForceVec: Vector{X: 0, Y: -8},
				AccelVec: Vector{X: 0, Y: -4},
			},
		},
		{
			name:    "unknown elapsed uses default",
			from:    model.Square{File: 0, Rank: 0},
			to:      model.Square{File: 3, Rank: 0},
			elapsed: Untimed,
			mass:    1,
			want: Motion{
				Distance: 3, Seconds: 0.5, Velocity: 6, Angle: 0,
				Acceleration: 24, Mass: 1, Force: 24,
				ForceVec: Vector{X: 24, Y: 0},
				AccelVec: Vector{X: 24, Y: 0},
			},
		},
		{
			name:    "fast click is clamped",
			from:    model.Square{File: 0, Rank: 0},
			to:      model.Square{File: 0, Rank: 1},
			elapsed: 10 * time.Millisecond,
			mass:    0,
			want: Motion{
				Distance: 1, Seconds: 0.1, Velocity: 10, Angle: 90,
				Acceleration: 200, Mass: 0, Force: 0,
				ForceVec: Vector{X: 0, Y: 0},
				AccelVec: Vector{X: 0, Y: 200},
			},
		},
		{
			name:    "zero measured elapsed is clamped",
			from:    model.Square{File: 0, Rank: 0},
			to:      model.Square{File: 0, Rank: 1},
			elapsed: 0,
			mass:    1,
			want: Motion{
				Distance: 1, Seconds: 0.1, Velocity: 10, Angle: 90,
				Acceleration: 200, Mass: 1, Force: 200,
				ForceVec: Vector{X: 0, Y: 200},
				AccelVec: Vector{X: 0, Y: 200},
			},
		},
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.from, tt.to, tt.elapsed, tt.mass)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeKnightAngle(t *testing.T) {
	got := Compute(model.Square{File: 1, Rank: 7}, model.Square{File: 2, Rank: 5}, time.Second, 2)
	if math.Abs(got.Distance-math.Sqrt(5)) > 1e-9 {
		t.Errorf("distance = %v, want sqrt(5)", got.Distance)
	}
	if got.Angle < 270 || got.Angle >= 360 {
		t.Errorf("angle = %v, want in [270, 360)", got.Angle)
	}
}

func TestFromResult(t *testing.T) {
	r := model.MoveResult{From: model.Square{File: 6, Rank: 7}, To: model.Square{File: 5, Rank: 5}}
	if got, want := FromResult(r, time.Second, 3), Compute(r.From, r.To, time.Second, 3); got != want {
		t.Errorf("FromResult() = %+v, want %+v", got, want)
	}
}
