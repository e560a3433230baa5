// pkg/engine/input.go
package engine

import "sync/atomic"

// Key is a logical control, independent of any physical binding
type Key int

const (
	KeyThrust Key = iota
	KeyBrake
	KeyTurnLeft
	KeyTurnRight
	KeyFire
	KeyMissile
	keyCount
)

var keyNames = [keyCount]string{"thrust", "brake", "turn_left", "turn_right", "fire", "missile"}

// String returns the key's name
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Input is the held-key snapshot one tick reads
type Input struct {
	Thrust    bool
	Brake     bool
	TurnLeft  bool
	TurnRight bool
	Fire      bool
	Missile   bool
}

// InputSet is the shared key state. Input sources write to it from their own
// goroutines while the tick reads it; every key is an independent atomic.
type InputSet struct {
	keys [keyCount]atomic.Bool
}

// NewInputSet creates an input set with every key released
func NewInputSet() *InputSet {
	return &InputSet{}
}

// Set records a key press or release
func (s *InputSet) Set(k Key, pressed bool) {
	if k < 0 || k >= keyCount {
		return
	}
	s.keys[k].Store(pressed)
}

// Pressed reports whether a key is held
func (s *InputSet) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.keys[k].Load()
}

// Consume releases a held key and reports whether it was held. Edge-triggered
// actions use it so holding the key does not repeat them.
func (s *InputSet) Consume(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.keys[k].CompareAndSwap(true, false)
}

// Reset releases every key
func (s *InputSet) Reset() {
	for i := range s.keys {
		s.keys[i].Store(false)
	}
}

// Snapshot reads every key once
func (s *InputSet) Snapshot() Input {
	return Input{
		Thrust:    s.Pressed(KeyThrust),
		Brake:     s.Pressed(KeyBrake),
		TurnLeft:  s.Pressed(KeyTurnLeft),
		TurnRight: s.Pressed(KeyTurnRight),
		Fire:      s.Pressed(KeyFire),
		Missile:   s.Pressed(KeyMissile),
	}
}
