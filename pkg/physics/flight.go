// pkg/physics/flight.go
package physics

// FlightModel holds the constants of the player's retro-assisted drive
type FlightModel struct {
	ManualBrake float64 // deceleration per tick while the brake key is held
	AutoBrake   float64 // deceleration per tick while coasting
	Damping     float64 // per-tick velocity multiplier
	StopSpeed   float64 // speeds below this are treated as stationary
}

// Thrust accelerates vel along angle by accel
func Thrust(vel Vector2D, angle, accel float64) Vector2D {
	return vel.Add(FromAngle(angle, accel))
}

// Brake applies the manual retro-thruster. Above the stop speed it pushes
// against the velocity; at or below it the ship comes to a full stop.
func (m FlightModel) Brake(vel Vector2D) Vector2D {
	if vel.Length() > m.StopSpeed {
		return vel.Add(vel.Normalize().Scale(-m.ManualBrake))
	}
	return Vector2D{}
}

// Coast applies the drive's passive behavior after gravity: automatic
// braking while not thrusting, damping, and a stop below the stop speed.
func (m FlightModel) Coast(vel Vector2D, thrusting bool) Vector2D {
	if !thrusting && vel.Length() > m.StopSpeed {
		vel = vel.Add(vel.Normalize().Scale(-m.AutoBrake))
	}
	vel = vel.Scale(m.Damping)
	if !thrusting && vel.Length() < m.StopSpeed {
		return Vector2D{}
	}
	return vel
}
