// pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/infiniti1985/space-drifter/pkg/entity"
	"github.com/infiniti1985/space-drifter/pkg/starmap"
	"github.com/infiniti1985/space-drifter/pkg/validation"
)

// GameConfig contains configuration for a Space Drifter session
type GameConfig struct {
	StartSystem     string          `yaml:"startSystem"`
	JumpDelay       time.Duration   `yaml:"jumpDelay"`
	PirateSpawnRate float64         `yaml:"pirateSpawnRate"`
	StarMap         starmap.Data    `yaml:"starMap"`
	Missions        []MissionConfig `yaml:"missions"`
	Audio           AudioConfig     `yaml:"audio"`
	Display         DisplayConfig   `yaml:"display"`
}

// MissionConfig is one offer on the station's mission board
type MissionConfig struct {
	ID          string               `yaml:"id"`
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	Kind        entity.ObjectiveKind `yaml:"kind"`
	// HUNT
	TargetName   string `yaml:"targetName,omitempty"`
	TargetID     string `yaml:"targetId,omitempty"`
	TargetSystem string `yaml:"targetSystem,omitempty"`
	// COLLECT
	Amount int `yaml:"amount,omitempty"`

	RewardDollars  int `yaml:"rewardDollars"`
	RewardMissiles int `yaml:"rewardMissiles"`
}

// AudioConfig contains audio-related configuration
type AudioConfig struct {
	Mute         bool    `yaml:"mute"`
	MasterVolume float64 `yaml:"masterVolume"`
	SampleRate   int     `yaml:"sampleRate"`
}

// DisplayConfig contains presentation configuration
type DisplayConfig struct {
	Renderer      string  `yaml:"renderer"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	TerminalScale float64 `yaml:"terminalScale"`
}

// Renderer names accepted in DisplayConfig.Renderer
const (
	RendererEngo     = "engo"
	RendererTerminal = "terminal"
)

// Mission converts an offer into an accepted, in-progress mission
func (m MissionConfig) Mission() entity.Mission {
	return entity.Mission{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Objective: entity.Objective{
			Kind:         m.Kind,
			TargetName:   m.TargetName,
			TargetID:     entity.ID(m.TargetID),
			TargetSystem: m.TargetSystem,
			Amount:       m.Amount,
		},
		Reward: entity.Reward{Dollars: m.RewardDollars, Missiles: m.RewardMissiles},
		Status: entity.MissionInProgress,
	}
}

// LoadConfig loads a configuration from a YAML file. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a YAML file
func SaveConfig(config *GameConfig, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		StartSystem:     "sol",
		JumpDelay:       1500 * time.Millisecond,
		PirateSpawnRate: 0.001,
		StarMap:         starmap.Default(),
		Missions: []MissionConfig{
			{
				ID:             "mission-bounty-widow",
				Title:          "Bounty: Black Widow",
				Description:    "A notorious pirate captain has been sighted near Tau Ceti. Bring her down.",
				Kind:           entity.ObjectiveHunt,
				TargetName:     `Thanaia "Black Widow" Volt`,
				TargetID:       "mission-target-widow",
				TargetSystem:   "tau-ceti",
				RewardDollars:  250,
				RewardMissiles: 2,
			},
			{
				ID:             "mission-collect-crystals",
				Title:          "Crystal Survey",
				Description:    "The station needs hyperjump crystals. Mine asteroids and collect ten.",
				Kind:           entity.ObjectiveCollect,
				Amount:         10,
				RewardDollars:  100,
				RewardMissiles: 1,
			},
		},
		Audio: AudioConfig{
			MasterVolume: 0.3,
			SampleRate:   44100,
		},
		Display: DisplayConfig{
			Renderer:      RendererEngo,
			Width:         1280,
			Height:        800,
			TerminalScale: 40,
		},
	}
}

// ApplyEnvironment overlays DRIFTER_* environment variables onto config
func ApplyEnvironment(config *GameConfig) error {
	if v := os.Getenv("DRIFTER_START_SYSTEM"); v != "" {
		config.StartSystem = v
	}

	if v := os.Getenv("DRIFTER_JUMP_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid DRIFTER_JUMP_DELAY: %w", err)
		}
		config.JumpDelay = d
	}

	if v := os.Getenv("DRIFTER_MUTE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DRIFTER_MUTE: %w", err)
		}
		config.Audio.Mute = b
	}

	if v := os.Getenv("DRIFTER_VOLUME"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid DRIFTER_VOLUME: %w", err)
		}
		config.Audio.MasterVolume = f
	}

	if v := os.Getenv("DRIFTER_RENDERER"); v != "" {
		config.Display.Renderer = v
	}

	if err := envInt("DRIFTER_WIDTH", &config.Display.Width); err != nil {
		return err
	}
	if err := envInt("DRIFTER_HEIGHT", &config.Display.Height); err != nil {
		return err
	}

	if v := os.Getenv("DRIFTER_FULLSCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DRIFTER_FULLSCREEN: %w", err)
		}
		config.Display.Fullscreen = b
	}

	return config.Validate()
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

// Validate checks the configuration for consistency
func (c *GameConfig) Validate() error {
	if c.JumpDelay < 0 {
		return fmt.Errorf("jump delay cannot be negative: %v", c.JumpDelay)
	}
	if c.PirateSpawnRate < 0 || c.PirateSpawnRate > 1 {
		return fmt.Errorf("pirate spawn rate must be between 0 and 1, got %v", c.PirateSpawnRate)
	}
	if err := validation.ValidateFraction("master volume", c.Audio.MasterVolume); err != nil {
		return err
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.Audio.SampleRate)
	}

	switch c.Display.Renderer {
	case RendererEngo, RendererTerminal:
	default:
		return fmt.Errorf("unknown renderer %q", c.Display.Renderer)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.TerminalScale <= 0 {
		return fmt.Errorf("terminal scale must be positive, got %v", c.Display.TerminalScale)
	}

	if err := c.validateStarMap(); err != nil {
		return err
	}
	return c.validateMissions()
}

func (c *GameConfig) validateStarMap() error {
	for i := range c.StarMap.Systems {
		s := &c.StarMap.Systems[i]
		if err := validation.ValidateSystemID(s.ID); err != nil {
			return err
		}
		name, err := validation.ValidateDisplayName(s.Name)
		if err != nil {
			return fmt.Errorf("system %s: %w", s.ID, err)
		}
		s.Name = name
		desc, err := validation.ValidateDescription(s.Description)
		if err != nil {
			return fmt.Errorf("system %s: %w", s.ID, err)
		}
		s.Description = desc
		if err := validation.ValidateThreatLevel(s.Level); err != nil {
			return fmt.Errorf("system %s: %w", s.ID, err)
		}
	}

	graph, err := starmap.New(c.StarMap)
	if err != nil {
		return fmt.Errorf("invalid star map: %w", err)
	}
	if _, ok := graph.Lookup(c.StartSystem); !ok {
		return fmt.Errorf("start system %q is not on the star map", c.StartSystem)
	}
	return nil
}

func (c *GameConfig) validateMissions() error {
	seen := make(map[string]bool, len(c.Missions))
	for i := range c.Missions {
		m := &c.Missions[i]
		if m.ID == "" || seen[m.ID] {
			return fmt.Errorf("mission %d: missing or duplicate id %q", i, m.ID)
		}
		seen[m.ID] = true

		if err := validation.ValidateReward(m.RewardDollars, m.RewardMissiles); err != nil {
			return fmt.Errorf("mission %s: %w", m.ID, err)
		}

		switch m.Kind {
		case entity.ObjectiveHunt:
			name, err := validation.ValidateDisplayName(m.TargetName)
			if err != nil {
				return fmt.Errorf("mission %s: %w", m.ID, err)
			}
			m.TargetName = name
			if m.TargetID == "" {
				return fmt.Errorf("mission %s: hunt target id is required", m.ID)
			}
			if err := validation.ValidateSystemID(m.TargetSystem); err != nil {
				return fmt.Errorf("mission %s: %w", m.ID, err)
			}
		case entity.ObjectiveCollect:
			if m.Amount <= 0 {
				return fmt.Errorf("mission %s: collect amount must be positive, got %d", m.ID, m.Amount)
			}
		default:
			return fmt.Errorf("mission %s: unknown objective kind %q", m.ID, m.Kind)
		}
	}
	return nil
}
