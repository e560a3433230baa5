// pkg/audio/recipes.go
package audio

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/infiniti1985/space-drifter/pkg/event"
)

// Durations of each effect's voice
const (
	shotLength       = 100 * time.Millisecond
	shotClickLength  = 50 * time.Millisecond
	thumpLength      = 300 * time.Millisecond
	hitLength        = 200 * time.Millisecond
	chimeNoteLength  = 200 * time.Millisecond
	chimeNoteSpacing = 80 * time.Millisecond
	jumpLength       = 1500 * time.Millisecond
	jumpGlide        = 1200 * time.Millisecond
	jumpSwell        = 100 * time.Millisecond
	missileLength    = 800 * time.Millisecond
	fanfareLength    = 300 * time.Millisecond
	fanfareSpacing   = 150 * time.Millisecond
	confirmLength    = 100 * time.Millisecond
	errorLength      = 300 * time.Millisecond
	noteAttack       = 10 * time.Millisecond
)

var (
	chimeNotes   = []float64{880.00, 1046.50, 1318.51}
	fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}
)

// Synthesize builds a fresh streamer for an effect. It returns nil for
// effect types that make no sound.
func Synthesize(typ event.Type, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch typ {
	case event.ShotFired:
		return shotSound(rate)
	case event.Explosion:
		return explosionSound(rate, rng)
	case event.Hit:
		return hitSound(rate)
	case event.Collected:
		return collectSound(rate)
	case event.Jump:
		return jumpSound(rate)
	case event.MissileLaunched:
		return missileSound(rate)
	case event.MissionComplete:
		return missionCompleteSound(rate)
	case event.Confirm, event.OpenStarMap:
		return confirmSound(rate)
	case event.Error:
		return errorSound(rate)
	default:
		return nil
	}
}

// shotSound is a falling triangle chirp over a click of noise
func shotSound(rate beep.SampleRate) beep.Streamer {
	chirp := newEnvelope(newSweep(WaveTriangle, 880, 220, shotLength, shotLength, rate), 0.3, 0, shotLength, CurveExponential, rate)
	click := newEnvelope(newTone(WaveNoise, 0, shotClickLength, rate), 0.1, 0, shotClickLength, CurveExponential, rate)
	return beep.Mix(chirp, click)
}

// explosionSound is a low sine thump under three rumbling noise bursts of
// random length and color.
func explosionSound(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	layers := []beep.Streamer{
		newEnvelope(newSweep(WaveSine, 120, 30, thumpLength, thumpLength, rate), 0.8, 0, thumpLength, CurveExponential, rate),
	}
	for range 3 {
		length := time.Duration((0.5 + rng.Float64()*0.5) * float64(time.Second))
		cutoff := 500 + rng.Float64()*1500
		noise := newLowpass(newTone(WaveNoise, 0, length, rate), cutoff, cutoff, 0, rate)
		layers = append(layers, newEnvelope(noise, 0.4, 0, length, CurveExponential, rate))
	}
	return beep.Mix(layers...)
}

func hitSound(rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newFM(200, 350, 500, hitLength, rate), 0.5, 0, hitLength, CurveExponential, rate)
}

// collectSound is a rising three-note triangle arpeggio
func collectSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(arpeggio(WaveTriangle, chimeNotes, chimeNoteSpacing, chimeNoteLength, 1, rate), 0.3)
}

// jumpSound is a noise swell opening up as a saw climbs underneath it
func jumpSound(rate beep.SampleRate) beep.Streamer {
	noise := newLowpass(newTone(WaveNoise, 0, jumpLength, rate), 100, 8000, jumpGlide, rate)
	saw := newSweep(WaveSaw, 200, 2000, jumpGlide, jumpLength, rate)
	return newEnvelope(beep.Mix(noise, saw), 0.4, jumpSwell, jumpLength, CurveLinear, rate)
}

func missileSound(rate beep.SampleRate) beep.Streamer {
	noise := newLowpass(newTone(WaveNoise, 0, missileLength, rate), 800, 800, 0, rate)
	return newEnvelope(noise, 0.4, 0, missileLength, CurveLinear, rate)
}

// missionCompleteSound is a C major fanfare
func missionCompleteSound(rate beep.SampleRate) beep.Streamer {
	return arpeggio(WaveSine, fanfareNotes, fanfareSpacing, fanfareLength, 0.4, rate)
}

func confirmSound(rate beep.SampleRate) beep.Streamer {
	var tone beep.Streamer
	sine, err := generators.SineTone(rate, 1200)
	if err != nil {
		tone = newTone(WaveSine, 1200, confirmLength, rate)
	} else {
		tone = beep.Take(rate.N(confirmLength), sine)
	}
	return newEnvelope(tone, 0.3, 0, confirmLength, CurveExponential, rate)
}

func errorSound(rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newTone(WaveSquare, 155, errorLength, rate), 0.3, 0, errorLength, CurveExponential, rate)
}

// arpeggio staggers notes by spacing, each shaped with a short attack
func arpeggio(wave Wave, notes []float64, spacing, length time.Duration, peak float64, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(notes))
	for i, freq := range notes {
		note := newEnvelope(newTone(wave, freq, length, rate), peak, noteAttack, length, CurveExponential, rate)
		voices = append(voices, delayed(note, time.Duration(i)*spacing, rate))
	}
	return beep.Mix(voices...)
}
