package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
	if c.World.Width != 2000 || c.World.Height != 2000 {
		t.Errorf("Expected 2000x2000 world, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Actor.Speed != 4 || c.Actor.FrameRate != 8 || c.Actor.Frames != 4 {
		t.Errorf("Unexpected actor defaults %+v", c.Actor)
	}
	if c.Roster.Size != 12 {
		t.Errorf("Expected roster size 12, got %d", c.Roster.Size)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.World.ObstacleCount != 50 {
		t.Errorf("Expected default obstacle count, got %d", c.World.ObstacleCount)
	}
}

func TestLoadConfigYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herobound.yaml")
	data := `
world:
  width: 800
  obstacle_count: 5
actor:
  speed: 2.5
input:
  tie_break: horizontal
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.World.Width != 800 || c.World.ObstacleCount != 5 {
		t.Errorf("Expected overridden world, got %+v", c.World)
	}
	if c.World.Height != 2000 {
		t.Errorf("Expected default height to survive, got %v", c.World.Height)
	}
	if c.Actor.Speed != 2.5 || c.Input.TieBreak != "horizontal" {
		t.Errorf("Expected overridden actor/input, got %+v %+v", c.Actor, c.Input)
	}
}

func TestLoadConfigJSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herobound.json")
	if err := os.WriteFile(path, []byte(`{"roster": {"size": 6}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.Roster.Size != 6 {
		t.Errorf("Expected roster size 6, got %d", c.Roster.Size)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"zero width":   `{"world": {"width": 0}}`,
		"bad tiebreak": `{"input": {"tie_break": "diagonal"}}`,
		"zero roster":  `{"roster": {"size": 0}}`,
		"bad json":     `{"world": `,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.json")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
