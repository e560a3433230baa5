// pkg/audio/synth.go
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// silenceFloor is where exponential envelopes end; zero is unreachable
// on an exponential curve.
const silenceFloor = 0.0001

// oscillator generates a wave whose frequency glides exponentially from
// one pitch to another, then holds the final pitch until it runs out.
type oscillator struct {
	wave     Wave
	from, to float64
	glide    int
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

// newSweep creates an oscillator gliding from -> to over glide, lasting length
func newSweep(wave Wave, from, to float64, glide, length time.Duration, rate beep.SampleRate) *oscillator {
	return &oscillator{
		wave:   wave,
		from:   from,
		to:     to,
		glide:  rate.N(glide),
		length: rate.N(length),
		rate:   rate,
	}
}

// newTone creates a fixed-pitch oscillator
func newTone(wave Wave, freq float64, length time.Duration, rate beep.SampleRate) *oscillator {
	return newSweep(wave, freq, freq, length, length, rate)
}

// frequency returns the pitch at the given sample position
func (o *oscillator) frequency(pos int) float64 {
	if o.from == o.to || o.glide <= 0 || o.from <= 0 || o.to <= 0 {
		return o.to
	}
	if pos >= o.glide {
		return o.to
	}
	return o.from * math.Pow(o.to/o.from, float64(pos)/float64(o.glide))
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		val := waveform(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency(o.position) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveform evaluates a wave at phase in [0, 1)
func waveform(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// fm is a sine carrier whose frequency is pushed around by a sine modulator
type fm struct {
	carrier, modulator float64
	depth              float64
	carrierPhase       float64
	modPhase           float64
	position, length   int
	rate               beep.SampleRate
}

func newFM(carrier, modulator, depth float64, length time.Duration, rate beep.SampleRate) *fm {
	return &fm{
		carrier:   carrier,
		modulator: modulator,
		depth:     depth,
		length:    rate.N(length),
		rate:      rate,
	}
}

func (f *fm) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if f.position >= f.length {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * f.carrierPhase)
		samples[i][0] = val
		samples[i][1] = val

		freq := f.carrier + f.depth*math.Sin(2*math.Pi*f.modPhase)
		f.carrierPhase += freq / float64(f.rate)
		f.carrierPhase -= math.Floor(f.carrierPhase)
		f.modPhase += f.modulator / float64(f.rate)
		f.modPhase -= math.Floor(f.modPhase)
		f.position++
	}
	return len(samples), true
}

func (f *fm) Err() error { return nil }

// Curve selects how an envelope falls from its peak
type Curve int

const (
	CurveExponential Curve = iota
	CurveLinear
)

// envelope ramps linearly up to peak over the attack, then falls to
// silence by the end of the stream.
type envelope struct {
	streamer beep.Streamer
	peak     float64
	attack   int
	total    int
	curve    Curve
	position int
}

func newEnvelope(s beep.Streamer, peak float64, attack, length time.Duration, curve Curve, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		peak:     peak,
		attack:   rate.N(attack),
		total:    rate.N(length),
		curve:    curve,
	}
}

// gain returns the envelope level at the given sample position
func (e *envelope) gain(pos int) float64 {
	if pos >= e.total {
		return 0
	}
	if pos < e.attack {
		return e.peak * float64(pos) / float64(e.attack)
	}
	fall := e.total - e.attack
	if fall <= 0 {
		return e.peak
	}
	t := float64(pos-e.attack) / float64(fall)
	if e.curve == CurveLinear {
		return e.peak * (1 - t)
	}
	return e.peak * math.Pow(silenceFloor/e.peak, t)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// lowpass is a one-pole filter whose cutoff may glide exponentially
type lowpass struct {
	streamer beep.Streamer
	from, to float64
	glide    int
	position int
	rate     beep.SampleRate
	prev     [2]float64
}

func newLowpass(s beep.Streamer, from, to float64, glide time.Duration, rate beep.SampleRate) *lowpass {
	return &lowpass{streamer: s, from: from, to: to, glide: rate.N(glide), rate: rate}
}

func (l *lowpass) cutoff() float64 {
	if l.glide <= 0 || l.position >= l.glide {
		return l.to
	}
	return l.from * math.Pow(l.to/l.from, float64(l.position)/float64(l.glide))
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		alpha := 1 - math.Exp(-2*math.Pi*l.cutoff()/float64(l.rate))
		for c := 0; c < 2; c++ {
			l.prev[c] += alpha * (samples[i][c] - l.prev[c])
			samples[i][c] = l.prev[c]
		}
		l.position++
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.streamer.Err() }

// newVolume scales a stream linearly. effects.Volume works in powers of
// its base, so zero has to be expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// delayed starts a stream after a stretch of silence
func delayed(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(d)), s)
}
