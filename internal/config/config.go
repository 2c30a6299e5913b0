// Package config provides YAML-based configuration loading for the rocket scene.
package config

import (
	"errors"
	"fmt"
)

// RocketConfig contains all configuration for the rocket scene.
type RocketConfig struct {
	Scene     SceneConfig    `yaml:"scene"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Rocket    RocketBody     `yaml:"rocket"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// SceneConfig fixes the scene geometry for the lifetime of a session.
type SceneConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines world parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`          // Vertical acceleration in meters/s², negative is down
	PointsPerMeter float64 `yaml:"points_per_meter"` // Scene units per meter
}

// RocketBody defines the player's body and tap response.
type RocketBody struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Mass             float64 `yaml:"mass"`
	Impulse          float64 `yaml:"impulse"`
	RotationDuration float64 `yaml:"rotation_duration"`
}

// ObstacleConfig defines the recycled obstacle pair.
type ObstacleConfig struct {
	Width             int     `yaml:"width"`
	Gap               int     `yaml:"gap"`
	TraversalDuration float64 `yaml:"traversal_duration"`
}

// GravityY returns the vertical gravity in scene units per second squared.
func (c RocketConfig) GravityY() float64 {
	return c.Physics.Gravity * c.Physics.PointsPerMeter
}

// Validate reports every setting that would make the scene unplayable.
func (c RocketConfig) Validate() error {
	var errs []error

	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene size must be positive, got %vx%v", c.Scene.Width, c.Scene.Height))
	}
	if c.Physics.PointsPerMeter <= 0 {
		errs = append(errs, fmt.Errorf("physics.points_per_meter must be positive, got %v", c.Physics.PointsPerMeter))
	}
	if c.Rocket.Width <= 0 || c.Rocket.Height <= 0 {
		errs = append(errs, fmt.Errorf("rocket size must be positive, got %vx%v", c.Rocket.Width, c.Rocket.Height))
	}
	if c.Rocket.Mass <= 0 {
		errs = append(errs, fmt.Errorf("rocket.mass must be positive, got %v", c.Rocket.Mass))
	}
	if c.Rocket.RotationDuration <= 0 {
		errs = append(errs, fmt.Errorf("rocket.rotation_duration must be positive, got %v", c.Rocket.RotationDuration))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.width must be positive, got %d", c.Obstacles.Width))
	}
	if c.Obstacles.Gap <= 0 || float64(c.Obstacles.Gap) >= c.Scene.Height {
		errs = append(errs, fmt.Errorf("obstacles.gap must be in (0, %v), got %d", c.Scene.Height, c.Obstacles.Gap))
	}
	if c.Obstacles.TraversalDuration <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.traversal_duration must be positive, got %v", c.Obstacles.TraversalDuration))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid rocket config: %w", errors.Join(errs...))
	}
	return nil
}
