package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in invaders configuration.
// It mirrors defaults/invaders.yaml and is the last fallback of LoadInvaders.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: ScreenConfig{
			Width:      800,
			Height:     600,
			Background: "#000000",
			Text:       "#ffffff",
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       30,
			Speed:        5,
			BottomMargin: 20,
			Color:        "#0000ff",
		},
		PlayerBullet: ProjectileConfig{
			Width:    4,
			Height:   20,
			Speed:    -10,
			PoolSize: 20,
			Color:    "#ffffff",
		},
		EnemyBullet: ProjectileConfig{
			Width:    4,
			Height:   20,
			Speed:    5,
			PoolSize: 30,
			Color:    "#ff0000",
		},
		Enemies: EnemiesConfig{
			Rows:        5,
			Cols:        10,
			Width:       40,
			Height:      30,
			SpacingX:    20,
			SpacingY:    20,
			OriginX:     50,
			OriginY:     50,
			Speed:       10,
			Drop:        20,
			MoveDelay:   30, // Half a second at 60 FPS
			ShootDelay:  60,
			ShootChance: 5,
			Color:       "#00ff00",
		},
		Shields: ShieldsConfig{
			Count:          4,
			Width:          80,
			Height:         40,
			Y:              450,
			Health:         10,
			AlphaReduction: 20,
			Color:          "#00ffff",
		},
		Scoring: ScoringConfig{
			KillScore: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
