// pkg/physics/gravity_test.go
package physics

import (
	"math"
	"testing"
)

func TestGravityForce(t *testing.T) {
	star := Attractor{ID: "star", Position: Vector2D{X: 0, Y: 0}, Radius: 100, Mass: 1000}

	tests := []struct {
		name     string
		pos      Vector2D
		mass     float64
		expected Vector2D
	}{
		{
			name:     "outside_radius_pulls_toward_body",
			pos:      Vector2D{X: 200, Y: 0},
			mass:     1,
			expected: Vector2D{X: -GravitationalConstant * 1000 / (200 * 200), Y: 0},
		},
		{
			name:     "force_scales_with_object_mass",
			pos:      Vector2D{X: 0, Y: 200},
			mass:     5,
			expected: Vector2D{X: 0, Y: -GravitationalConstant * 1000 * 5 / (200 * 200)},
		},
		{
			name:     "exactly_on_surface_contributes_nothing",
			pos:      Vector2D{X: 100, Y: 0},
			mass:     1,
			expected: Vector2D{},
		},
		{
			name:     "inside_body_contributes_nothing",
			pos:      Vector2D{X: 10, Y: 0},
			mass:     1,
			expected: Vector2D{},
		},
		{
			name:     "at_center_no_singularity",
			pos:      Vector2D{},
			mass:     1,
			expected: Vector2D{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GravityForce("probe", tt.pos, tt.mass, []Attractor{star})
			if !vecApproxEqual(got, tt.expected) {
				t.Errorf("GravityForce() = %v, expected %v", got, tt.expected)
			}
			if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
				t.Errorf("GravityForce() produced non-finite value %v", got)
			}
		})
	}
}

func TestGravityForce_SumsAttractorsAndSkipsSelf(t *testing.T) {
	left := Attractor{ID: "left", Position: Vector2D{X: -100, Y: 0}, Radius: 1, Mass: 100}
	right := Attractor{ID: "right", Position: Vector2D{X: 100, Y: 0}, Radius: 1, Mass: 100}

	if got := GravityForce("probe", Vector2D{}, 1, []Attractor{left, right}); !vecApproxEqual(got, Vector2D{}) {
		t.Errorf("symmetric pulls should cancel, got %v", got)
	}

	got := GravityForce("left", Vector2D{}, 1, []Attractor{left, right})
	want := Vector2D{X: GravitationalConstant * 100 / (100 * 100)}
	if !vecApproxEqual(got, want) {
		t.Errorf("self attractor should be skipped, got %v, expected %v", got, want)
	}
}

func TestVelocityDelta(t *testing.T) {
	if got := VelocityDelta(Vector2D{X: 10, Y: -5}, 5); !vecApproxEqual(got, Vector2D{X: 2, Y: -1}) {
		t.Errorf("VelocityDelta() = %v", got)
	}
	if got := VelocityDelta(Vector2D{X: 3, Y: 4}, 0); got != (Vector2D{X: 3, Y: 4}) {
		t.Errorf("zero mass should be treated as unit mass, got %v", got)
	}
}

func TestCircularOrbitSpeed(t *testing.T) {
	got := CircularOrbitSpeed(150000, 1800)
	want := math.Sqrt(GravitationalConstant * 150000 / 1800)
	if !approxEqual(got, want) {
		t.Errorf("CircularOrbitSpeed() = %v, expected %v", got, want)
	}
	if CircularOrbitSpeed(100, 0) != 0 {
		t.Error("zero radius should yield zero speed")
	}
}
