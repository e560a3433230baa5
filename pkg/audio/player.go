// pkg/audio/player.go
package audio

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/infiniti1985/space-drifter/pkg/config"
	"github.com/infiniti1985/space-drifter/pkg/event"
	"github.com/infiniti1985/space-drifter/pkg/logging"
	"github.com/infiniti1985/space-drifter/pkg/validation"
)

// Effects of one kind beyond this many per window are dropped
const (
	burstLimit  = 4
	burstWindow = 250 * time.Millisecond
)

// Player turns effect events into sound. Until Open succeeds it mixes
// into a detached mixer, so a machine without an audio device still runs.
type Player struct {
	mu      sync.Mutex
	cfg     config.AudioConfig
	rate    beep.SampleRate
	mixer   *beep.Mixer
	limiter *validation.RateLimiter
	rng     *rand.Rand
	logger  *logging.Logger
	subs    []*event.Subscription
	open    bool
}

// NewPlayer creates a player for the given audio settings
func NewPlayer(cfg config.AudioConfig, logger *logging.Logger) *Player {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Player{
		cfg:     cfg,
		rate:    beep.SampleRate(cfg.SampleRate),
		mixer:   &beep.Mixer{},
		limiter: validation.NewRateLimiter(burstLimit, burstWindow),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		logger:  logger,
	}
}

// Open initializes the speaker and starts streaming the mixer
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return logging.WrapError(err, "failed to initialize speaker", "sample_rate", int(p.rate))
	}
	speaker.Play(p.mixer)
	p.open = true
	p.logger.Info(context.Background(), "audio opened", "sample_rate", int(p.rate))
	return nil
}

// Attach subscribes the player to every effect on the bus
func (p *Player) Attach(bus *event.Bus) {
	subs := bus.SubscribeAll(event.EffectTypes, p.handle)
	p.mu.Lock()
	p.subs = append(p.subs, subs...)
	p.mu.Unlock()
}

func (p *Player) handle(e event.Event) {
	p.Play(e.GetType())
}

// Play synthesizes and queues the sound for an effect type. It reports
// whether anything was queued.
func (p *Player) Play(typ event.Type) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cfg.Mute || p.cfg.MasterVolume <= 0 {
		return false
	}
	if !p.limiter.Allow(string(typ)) {
		p.logger.Debug(context.Background(), "effect throttled", "effect", string(typ))
		return false
	}

	s := Synthesize(typ, p.rate, p.rng)
	if s == nil {
		return false
	}
	s = newVolume(s, p.cfg.MasterVolume)

	if p.open {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	} else {
		p.mixer.Add(s)
	}
	return true
}

// SetMuted toggles mute. Muting drops whatever is still playing.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg.Mute = muted
	if muted {
		p.clear()
	}
}

// Muted reports whether the player is muted
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.Mute
}

// Pending returns the number of sounds still in the mixer
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

func (p *Player) clear() {
	if p.open {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
		return
	}
	p.mixer.Clear()
}

// Close unsubscribes from the bus and silences the mixer
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, sub := range p.subs {
		sub.Cancel()
	}
	p.subs = nil
	p.clear()
	p.limiter.Close()
	if p.open {
		speaker.Close()
		p.open = false
	}
}
