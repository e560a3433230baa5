// pkg/physics/flight_test.go
package physics

import (
	"math"
	"testing"
)

func testFlightModel() FlightModel {
	return FlightModel{ManualBrake: 0.08, AutoBrake: 0.01, Damping: 0.998, StopSpeed: 0.05}
}

func TestThrust(t *testing.T) {
	got := Thrust(Vector2D{X: 1, Y: 0}, math.Pi/2, 0.05)
	if !vecApproxEqual(got, Vector2D{X: 1, Y: 0.05}) {
		t.Errorf("Thrust() = %v", got)
	}
}

func TestFlightModel_Brake(t *testing.T) {
	m := testFlightModel()

	tests := []struct {
		name     string
		vel      Vector2D
		expected Vector2D
	}{
		{"pushes_against_motion", Vector2D{X: 1, Y: 0}, Vector2D{X: 0.92, Y: 0}},
		{"full_stop_at_threshold", Vector2D{X: 0.05, Y: 0}, Vector2D{}},
		{"full_stop_below_threshold", Vector2D{X: 0.01, Y: -0.02}, Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Brake(tt.vel); !vecApproxEqual(got, tt.expected) {
				t.Errorf("Brake() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFlightModel_Coast(t *testing.T) {
	m := testFlightModel()

	t.Run("auto_brake_and_damping_while_coasting", func(t *testing.T) {
		got := m.Coast(Vector2D{X: 2, Y: 0}, false)
		want := Vector2D{X: (2 - 0.01) * 0.998}
		if !vecApproxEqual(got, want) {
			t.Errorf("Coast() = %v, expected %v", got, want)
		}
	})

	t.Run("damping_only_while_thrusting", func(t *testing.T) {
		got := m.Coast(Vector2D{X: 2, Y: 0}, true)
		if !vecApproxEqual(got, Vector2D{X: 2 * 0.998}) {
			t.Errorf("Coast() = %v", got)
		}
	})

	t.Run("snaps_to_rest_when_slow", func(t *testing.T) {
		if got := m.Coast(Vector2D{X: 0.04}, false); got != (Vector2D{}) {
			t.Errorf("Coast() = %v, expected zero", got)
		}
	})

	t.Run("no_snap_while_thrusting", func(t *testing.T) {
		if got := m.Coast(Vector2D{X: 0.04}, true); got == (Vector2D{}) {
			t.Error("thrusting ship should not be snapped to rest")
		}
	})
}
