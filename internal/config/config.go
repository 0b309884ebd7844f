// Package config holds the YAML run configuration for the mbplan CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/maxtom/ompl/internal/planner"
	"github.com/maxtom/ompl/internal/rigid"
	"github.com/maxtom/ompl/internal/space"
)

const (
	DefaultBodies        = 2
	DefaultMaxIterations = 5000
	DefaultGoalBias      = 0.05
	DefaultStep          = 0.2
	DefaultTolerance     = 0.1
)

type Config struct {
	Seed        int64         `yaml:"seed"`
	Environment EnvConfig     `yaml:"environment"`
	Weights     WeightsConfig `yaml:"weights"`
	Bounds      BoundsConfig  `yaml:"bounds"`
	Planner     PlannerConfig `yaml:"planner"`
}

// EnvConfig selects the environment: a websocket simulator endpoint,
// or the built-in in-memory scene when Address is empty.
type EnvConfig struct {
	Address string `yaml:"address"`
	Bodies  int    `yaml:"bodies"`
}

type WeightsConfig struct {
	Position        float64 `yaml:"position"`
	LinearVelocity  float64 `yaml:"linear_velocity"`
	AngularVelocity float64 `yaml:"angular_velocity"`
	Orientation     float64 `yaml:"orientation"`
}

// BoundsConfig overrides default bounds per kind. Nil entries keep
// the space defaults (environment volume for positions, unit box for
// velocities).
type BoundsConfig struct {
	Volume          *BoxConfig `yaml:"volume"`
	LinearVelocity  *BoxConfig `yaml:"linear_velocity"`
	AngularVelocity *BoxConfig `yaml:"angular_velocity"`
}

type BoxConfig struct {
	Low  [3]float64 `yaml:"low"`
	High [3]float64 `yaml:"high"`
}

type PlannerConfig struct {
	MaxIterations int     `yaml:"max_iterations"`
	GoalBias      float64 `yaml:"goal_bias"`
	Step          float64 `yaml:"step"`
	Tolerance     float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Environment: EnvConfig{Bodies: DefaultBodies},
		Weights: WeightsConfig{
			Position:        1.0,
			LinearVelocity:  0.5,
			AngularVelocity: 0.5,
			Orientation:     1.0,
		},
		Planner: PlannerConfig{
			MaxIterations: DefaultMaxIterations,
			GoalBias:      DefaultGoalBias,
			Step:          DefaultStep,
			Tolerance:     DefaultTolerance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Environment.Address == "" && c.Environment.Bodies < 1 {
		return errors.New("config: in-memory environment needs at least one body")
	}
	w := c.Weights
	if w.Position < 0 || w.LinearVelocity < 0 || w.AngularVelocity < 0 || w.Orientation < 0 {
		return errors.New("config: weights must be non-negative")
	}
	if c.Planner.MaxIterations < 1 {
		return errors.New("config: max_iterations must be positive")
	}
	if c.Planner.Step <= 0 || c.Planner.Step > 1 {
		return errors.New("config: step must be in (0, 1]")
	}
	if c.Planner.GoalBias < 0 || c.Planner.GoalBias > 1 {
		return errors.New("config: goal_bias must be in [0, 1]")
	}
	for name, box := range map[string]*BoxConfig{
		"volume":           c.Bounds.Volume,
		"linear_velocity":  c.Bounds.LinearVelocity,
		"angular_velocity": c.Bounds.AngularVelocity,
	} {
		if box == nil {
			continue
		}
		if err := box.Bounds().Check(); err != nil {
			return fmt.Errorf("config: %s bounds: %w", name, err)
		}
	}
	return nil
}

// Bounds converts the YAML box to a space box.
func (b *BoxConfig) Bounds() space.Bounds {
	return space.Bounds{
		Low:  r3.Vec{X: b.Low[0], Y: b.Low[1], Z: b.Low[2]},
		High: r3.Vec{X: b.High[0], Y: b.High[1], Z: b.High[2]},
	}
}

// SpaceWeights converts the YAML weights for space construction.
func (c *Config) SpaceWeights() rigid.Weights {
	return rigid.Weights{
		Position:    c.Weights.Position,
		LinearVel:   c.Weights.LinearVelocity,
		AngularVel:  c.Weights.AngularVelocity,
		Orientation: c.Weights.Orientation,
	}
}

// PlannerOptions converts the YAML planner block.
func (c *Config) PlannerOptions() planner.Options {
	return planner.Options{
		MaxIterations: c.Planner.MaxIterations,
		GoalBias:      c.Planner.GoalBias,
		Step:          c.Planner.Step,
		Tolerance:     c.Planner.Tolerance,
	}
}
