// pkg/engine/input_test.go
package engine

import (
	"sync"
	"testing"
)

func TestInputSetSnapshot(t *testing.T) {
	in := NewInputSet()
	in.Set(KeyThrust, true)
	in.Set(KeyFire, true)
	in.Set(KeyFire, false)
	in.Set(KeyTurnLeft, true)

	want := Input{Thrust: true, TurnLeft: true}
	if got := in.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestInputSetConsume(t *testing.T) {
	in := NewInputSet()
	if in.Consume(KeyMissile) {
		t.Error("consumed a released key")
	}

	in.Set(KeyMissile, true)
	if !in.Consume(KeyMissile) {
		t.Fatal("held key was not consumed")
	}
	if in.Pressed(KeyMissile) {
		t.Error("key still held after Consume")
	}
	if in.Consume(KeyMissile) {
		t.Error("key consumed twice")
	}
}

func TestInputSetIgnoresUnknownKeys(t *testing.T) {
	in := NewInputSet()
	in.Set(Key(-1), true)
	in.Set(keyCount, true)

	if in.Pressed(keyCount) || in.Consume(Key(42)) {
		t.Error("unknown keys should read as released")
	}
	if got := in.Snapshot(); got != (Input{}) {
		t.Errorf("Snapshot() = %+v, want all released", got)
	}
}

func TestInputSetReset(t *testing.T) {
	in := NewInputSet()
	for k := KeyThrust; k < keyCount; k++ {
		in.Set(k, true)
	}
	in.Reset()
	if got := in.Snapshot(); got != (Input{}) {
		t.Errorf("Snapshot() = %+v after Reset", got)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyThrust, "thrust"},
		{KeyTurnRight, "turn_right"},
		{KeyMissile, "missile"},
		{keyCount, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestInputSetConcurrentAccess(t *testing.T) {
	in := NewInputSet()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(k Key) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				in.Set(k, j%2 == 0)
			}
		}(Key(i) % keyCount)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				_ = in.Snapshot()
			}
		}()
	}
	wg.Wait()
}
