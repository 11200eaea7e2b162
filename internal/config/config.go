package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the engine reads. Values are fixed once the
// session starts; Load only runs before the frame loop.
type Config struct {
	Seed int64 `yaml:"seed"`

	TicksPerSecond int `yaml:"ticks_per_second"`

	// World generation.
	Terrain       string `yaml:"terrain"` // "classic" or "noise"
	WorldHalfSize int    `yaml:"world_half_size"`
	WallHeight    int    `yaml:"wall_height"`
	HillCount     int    `yaml:"hill_count"`

	SectorSize int `yaml:"sector_size"`
	RenderPad  int `yaml:"render_pad"`
	// Queued show/hide operations executed per tick.
	MaxOpsPerTick int `yaml:"max_ops_per_tick"`

	// Movement.
	WalkingSpeed     float32 `yaml:"walking_speed"`
	FlyingSpeed      float32 `yaml:"flying_speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	Gravity          float32 `yaml:"gravity"`
	MaxJumpHeight    float32 `yaml:"max_jump_height"`
	TerminalVelocity float32 `yaml:"terminal_velocity"`
	PlayerHeight     int     `yaml:"player_height"`

	HitDistance float32 `yaml:"hit_distance"`

	// Texture atlas layout: the atlas is an AtlasTiles x AtlasTiles grid.
	AtlasPath  string `yaml:"atlas_path"`
	AtlasTiles int    `yaml:"atlas_tiles"`

	Vsync bool `yaml:"vsync"`
}

func Default() *Config {
	return &Config{
		Seed:             12,
		TicksPerSecond:   60,
		Terrain:          "classic",
		WorldHalfSize:    80,
		WallHeight:       2,
		HillCount:        120,
		SectorSize:       16,
		RenderPad:        4,
		MaxOpsPerTick:    64,
		WalkingSpeed:     5,
		FlyingSpeed:      15,
		SprintMultiplier: 1.5,
		Gravity:          20,
		MaxJumpHeight:    1.0,
		TerminalVelocity: 50,
		PlayerHeight:     2,
		HitDistance:      8,
		AtlasPath:        "assets/textures/atlas.png",
		AtlasTiles:       4,
		Vsync:            true,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Terrain != "classic" && c.Terrain != "noise" {
		return fmt.Errorf("unknown terrain profile %q", c.Terrain)
	}
	if c.SectorSize <= 0 {
		return fmt.Errorf("sector_size must be positive, got %d", c.SectorSize)
	}
	if c.PlayerHeight <= 0 {
		return fmt.Errorf("player_height must be positive, got %d", c.PlayerHeight)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %d", c.TicksPerSecond)
	}
	return nil
}
