// pkg/render/terminal/input.go
package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/infiniti1985/space-drifter/pkg/engine"
)

// Terminals report key presses and auto-repeats but never releases, so a
// held key is one that was seen within holdWindow. The window must outlast
// the keyboard's initial repeat delay.
const holdWindow = 350 * time.Millisecond

// runeBindings and keyBindings map keys to flight controls. Runes match
// case-insensitively.
var runeBindings = map[rune]engine.Key{
	'w': engine.KeyThrust,
	's': engine.KeyBrake,
	'a': engine.KeyTurnLeft,
	'd': engine.KeyTurnRight,
	' ': engine.KeyFire,
	'f': engine.KeyMissile,
}

var keyBindings = map[tcell.Key]engine.Key{
	tcell.KeyUp:    engine.KeyThrust,
	tcell.KeyDown:  engine.KeyBrake,
	tcell.KeyLeft:  engine.KeyTurnLeft,
	tcell.KeyRight: engine.KeyTurnRight,
}

// bindingFor resolves a key event to a flight control
func bindingFor(key tcell.Key, ch rune) (engine.Key, bool) {
	if key == tcell.KeyRune {
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		k, ok := runeBindings[ch]
		return k, ok
	}
	k, ok := keyBindings[key]
	return k, ok
}

// HoldTracker turns a stream of presses into held keys on an InputSet
type HoldTracker struct {
	mu    sync.Mutex
	input *engine.InputSet
	seen  map[engine.Key]time.Time
	now   func() time.Time
}

// NewHoldTracker creates a tracker writing to input
func NewHoldTracker(input *engine.InputSet) *HoldTracker {
	return &HoldTracker{
		input: input,
		seen:  make(map[engine.Key]time.Time),
		now:   time.Now,
	}
}

// Press records a press or auto-repeat of a control
func (h *HoldTracker) Press(k engine.Key) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen[k] = h.now()
	h.input.Set(k, true)
}

// Expire releases controls that have not repeated within the hold window
func (h *HoldTracker) Expire() {
	h.mu.Lock()
	defer h.mu.Unlock()
	cutoff := h.now().Add(-holdWindow)
	for k, at := range h.seen {
		if at.Before(cutoff) {
			delete(h.seen, k)
			h.input.Set(k, false)
		}
	}
}

// Release drops every held control
func (h *HoldTracker) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.seen)
	h.input.Reset()
}
