package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about a rejected configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable session.
// All problems are reported together.
func (c InvadersConfig) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, ValidationError{
				Code:    "NOT_POSITIVE",
				Message: fmt.Sprintf("%s must be positive, got %d", name, v),
			})
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, ValidationError{
				Code:    "NEGATIVE",
				Message: fmt.Sprintf("%s must not be negative, got %d", name, v),
			})
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	nonNegative("player.speed", c.Player.Speed)

	positive("player_bullet.width", c.PlayerBullet.Width)
	positive("player_bullet.height", c.PlayerBullet.Height)
	positive("player_bullet.pool_size", c.PlayerBullet.PoolSize)
	if c.PlayerBullet.Speed >= 0 {
		errs = append(errs, ValidationError{
			Code:    "BAD_DIRECTION",
			Message: fmt.Sprintf("player_bullet.speed must be negative (upward), got %d", c.PlayerBullet.Speed),
		})
	}

	positive("enemy_bullet.width", c.EnemyBullet.Width)
	positive("enemy_bullet.height", c.EnemyBullet.Height)
	positive("enemy_bullet.pool_size", c.EnemyBullet.PoolSize)
	if c.EnemyBullet.Speed <= 0 {
		errs = append(errs, ValidationError{
			Code:    "BAD_DIRECTION",
			Message: fmt.Sprintf("enemy_bullet.speed must be positive (downward), got %d", c.EnemyBullet.Speed),
		})
	}

	e := c.Enemies
	positive("enemies.rows", e.Rows)
	positive("enemies.cols", e.Cols)
	positive("enemies.width", e.Width)
	positive("enemies.height", e.Height)
	nonNegative("enemies.spacing_x", e.SpacingX)
	nonNegative("enemies.spacing_y", e.SpacingY)
	nonNegative("enemies.origin_x", e.OriginX)
	nonNegative("enemies.origin_y", e.OriginY)
	nonNegative("enemies.speed", e.Speed)
	nonNegative("enemies.drop", e.Drop)
	positive("enemies.move_delay", e.MoveDelay)
	positive("enemies.shoot_delay", e.ShootDelay)
	if e.ShootChance < 0 || e.ShootChance > 100 {
		errs = append(errs, ValidationError{
			Code:    "OUT_OF_RANGE",
			Message: fmt.Sprintf("enemies.shoot_chance must be within [0, 100], got %d", e.ShootChance),
		})
	}
	if e.OriginX+e.GridWidth() > c.Screen.Width {
		errs = append(errs, ValidationError{
			Code:    "GRID_TOO_WIDE",
			Message: fmt.Sprintf("enemy grid spans x=%d..%d, wider than screen width %d", e.OriginX, e.OriginX+e.GridWidth(), c.Screen.Width),
		})
	}

	nonNegative("shields.count", c.Shields.Count)
	positive("shields.width", c.Shields.Width)
	positive("shields.height", c.Shields.Height)
	positive("shields.health", c.Shields.Health)
	nonNegative("shields.alpha_reduction", c.Shields.AlphaReduction)

	nonNegative("scoring.kill_score", c.Scoring.KillScore)

	colors := map[string]HexColor{
		"screen.background":   c.Screen.Background,
		"screen.text":         c.Screen.Text,
		"player.color":        c.Player.Color,
		"player_bullet.color": c.PlayerBullet.Color,
		"enemy_bullet.color":  c.EnemyBullet.Color,
		"enemies.color":       c.Enemies.Color,
		"shields.color":       c.Shields.Color,
	}
	for _, name := range []string{
		"screen.background", "screen.text", "player.color", "player_bullet.color",
		"enemy_bullet.color", "enemies.color", "shields.color",
	} {
		if _, err := colors[name].Parse(); err != nil {
			errs = append(errs, ValidationError{
				Code:    "INVALID_COLOR",
				Message: fmt.Sprintf("%s: %v", name, err),
			})
		}
	}

	return errors.Join(errs...)
}
