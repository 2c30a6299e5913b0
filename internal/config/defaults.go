package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the default rocket scene configuration.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Scene: SceneConfig{
			Width:  640,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity:        -7.0,
			PointsPerMeter: 150,
		},
		Rocket: RocketBody{
			Width:            48,
			Height:           32,
			Mass:             0.07,
			Impulse:          28,
			RotationDuration: 0.7,
		},
		Obstacles: ObstacleConfig{
			Width:             60,
			Gap:               140,
			TraversalDuration: 3.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRocketYAML
}
