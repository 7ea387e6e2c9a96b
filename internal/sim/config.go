package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every tunable of the simulation. It is a value type:
// callers receive a copy and nothing mutates it after construction, so
// tests can vary individual parameters freely.
type Config struct {
	// World geometry (world units).
	WorldSize float64 `yaml:"world_size"`

	// Vehicle physics.
	MaxSpeed   float64 `yaml:"max_speed"`   // units/s
	Accel      float64 `yaml:"accel"`       // units/s^2
	Brake      float64 `yaml:"brake"`       // units/s^2, applies to braking/reverse
	SteerSpeed float64 `yaml:"steer_speed"` // rad/s at full steering input
	Drag       float64 `yaml:"drag"`        // per-second velocity damping

	// Vehicle collision envelope.
	CarWidth  float64 `yaml:"car_width"`
	CarLength float64 `yaml:"car_length"`

	// Trajectory history bound.
	HistoryCap int `yaml:"history_cap"`

	// Obstacle field generation.
	NumObstacles      int     `yaml:"num_obstacles"`
	ObstacleRadiusMin float64 `yaml:"obstacle_radius_min"`
	ObstacleRadiusMax float64 `yaml:"obstacle_radius_max"`
	ObstacleMargin    float64 `yaml:"obstacle_margin"`    // keep-out from arena edges
	ObstacleTolerance float64 `yaml:"obstacle_tolerance"` // clearance between field features
	MaxAttempts       int     `yaml:"max_attempts"`       // shared placement budget

	// Start pose and goal.
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	GoalX      float64 `yaml:"goal_x"`
	GoalY      float64 `yaml:"goal_y"`
	GoalRadius float64 `yaml:"goal_radius"`

	// Screen mapping and frame pacing.
	ScreenW   int `yaml:"screen_w"`
	ScreenH   int `yaml:"screen_h"`
	Margin    int `yaml:"margin"`
	TargetFPS int `yaml:"target_fps"`
}

// DefaultConfig returns the canonical tuning.
func DefaultConfig() Config {
	return Config{
		WorldSize: 4.0,

		MaxSpeed:   2.5,
		Accel:      4.0,
		Brake:      6.0,
		SteerSpeed: 2.5,
		Drag:       0.8,

		CarWidth:  0.12,
		CarLength: 0.2,

		HistoryCap: 5000,

		NumObstacles:      6,
		ObstacleRadiusMin: 0.04,
		ObstacleRadiusMax: 0.12,
		ObstacleMargin:    0.12,
		ObstacleTolerance: 0.03,
		MaxAttempts:       1000,

		StartX:     0.05,
		StartY:     1.0,
		GoalX:      1.9,
		GoalY:      1.0,
		GoalRadius: 0.06,

		ScreenW:   800,
		ScreenH:   800,
		Margin:    50,
		TargetFPS: 60,
	}
}

// LoadConfig reads YAML overrides on top of the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Viewport returns the screen mapper for this configuration.
func (c Config) Viewport() Viewport {
	return Viewport{
		ScreenW:   c.ScreenW,
		ScreenH:   c.ScreenH,
		Margin:    c.Margin,
		WorldSize: c.WorldSize,
	}
}
