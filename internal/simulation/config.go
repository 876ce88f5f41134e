// Package simulation provides configuration for the walking demo and the
// roster selector. Values are loaded from a data file so each deployment can
// tune the world without rebuilding.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all tunables
type Config struct {
	World  WorldConfig  `json:"world" yaml:"world"`
	Actor  ActorConfig  `json:"actor" yaml:"actor"`
	Input  InputConfig  `json:"input" yaml:"input"`
	Roster RosterConfig `json:"roster" yaml:"roster"`
	Window WindowConfig `json:"window" yaml:"window"`
}

// WorldConfig defines the playfield and its obstacles
type WorldConfig struct {
	Width             float64 `json:"width" yaml:"width"`                             // World width in pixels
	Height            float64 `json:"height" yaml:"height"`                           // World height in pixels
	ObstacleCount     int     `json:"obstacle_count" yaml:"obstacle_count"`           // Obstacles generated at startup
	ObstacleMinSize   float64 `json:"obstacle_min_size" yaml:"obstacle_min_size"`     // Smallest obstacle side
	ObstacleSizeRange float64 `json:"obstacle_size_range" yaml:"obstacle_size_range"` // Added on top of the min size
	Seed              int64   `json:"seed" yaml:"seed"`                               // 0 = seed from the clock
}

// ActorConfig defines the walking character
type ActorConfig struct {
	Speed          float64 `json:"speed" yaml:"speed"`                     // Pixels per tick
	Scale          float64 `json:"scale" yaml:"scale"`                     // Sprite frame to actor size
	FrameRate      float64 `json:"frame_rate" yaml:"frame_rate"`           // Animation frames per second
	Frames         int     `json:"frames" yaml:"frames"`                   // Frames per direction row
	FallbackWidth  float64 `json:"fallback_width" yaml:"fallback_width"`   // Size used without a sprite
	FallbackHeight float64 `json:"fallback_height" yaml:"fallback_height"` // Size used without a sprite
}

// InputConfig defines how simultaneous keys resolve
type InputConfig struct {
	TieBreak string `json:"tie_break" yaml:"tie_break"` // "vertical" or "horizontal"
}

// RosterConfig defines the roster selector
type RosterConfig struct {
	Size         int `json:"size" yaml:"size"`                   // Heroes per roster
	IterationCap int `json:"iteration_cap" yaml:"iteration_cap"` // Hash indices tried before failing
	HashBatch    int `json:"hash_batch" yaml:"hash_batch"`       // Digests computed per round
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Title  string `json:"title" yaml:"title"`
}

// DefaultConfig returns the values the demo shipped with
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Width:             2000,
			Height:            2000,
			ObstacleCount:     50,
			ObstacleMinSize:   50,
			ObstacleSizeRange: 150,
		},
		Actor: ActorConfig{
			Speed:          4,
			Scale:          0.1,
			FrameRate:      8,
			Frames:         4,
			FallbackWidth:  32,
			FallbackHeight: 48,
		},
		Input: InputConfig{
			TieBreak: "vertical",
		},
		Roster: RosterConfig{
			Size:         12,
			IterationCap: 1 << 20,
			HashBatch:    64,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Herobound",
		},
	}
}

// LoadConfig loads config from a YAML or JSON file on top of the defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.ObstacleCount < 0:
		return fmt.Errorf("obstacle count must not be negative, got %d", c.World.ObstacleCount)
	case c.World.ObstacleMinSize <= 0 || c.World.ObstacleSizeRange < 0:
		return fmt.Errorf("obstacle size range is invalid: min %v range %v", c.World.ObstacleMinSize, c.World.ObstacleSizeRange)
	case c.Actor.Speed <= 0:
		return fmt.Errorf("actor speed must be positive, got %v", c.Actor.Speed)
	case c.Actor.Scale <= 0:
		return fmt.Errorf("actor scale must be positive, got %v", c.Actor.Scale)
	case c.Actor.FrameRate <= 0 || c.Actor.Frames <= 0:
		return fmt.Errorf("animation needs a positive frame rate and frame count")
	case c.Actor.FallbackWidth <= 0 || c.Actor.FallbackHeight <= 0:
		return fmt.Errorf("fallback actor size must be positive")
	case c.Input.TieBreak != "vertical" && c.Input.TieBreak != "horizontal":
		return fmt.Errorf("tie_break must be vertical or horizontal, got %q", c.Input.TieBreak)
	case c.Roster.Size < 1:
		return fmt.Errorf("roster size must be at least 1, got %d", c.Roster.Size)
	}
	return nil
}
