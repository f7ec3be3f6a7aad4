// Package config provides YAML-based configuration loading for the invaders
// simulation: screen geometry, entity sizes and speeds, pool capacities,
// formation timing and scoring.
package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// InvadersConfig contains every tunable of one invaders session.
// All distances are in world units (pixels) and all timings in ticks.
type InvadersConfig struct {
	Screen       ScreenConfig     `yaml:"screen"`
	Player       PlayerConfig     `yaml:"player"`
	PlayerBullet ProjectileConfig `yaml:"player_bullet"`
	EnemyBullet  ProjectileConfig `yaml:"enemy_bullet"`
	Enemies      EnemiesConfig    `yaml:"enemies"`
	Shields      ShieldsConfig    `yaml:"shields"`
	Scoring      ScoringConfig    `yaml:"scoring"`
}

// ScreenConfig defines the playfield.
type ScreenConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Background HexColor `yaml:"background"`
	Text       HexColor `yaml:"text"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	Speed        int      `yaml:"speed"`
	BottomMargin int      `yaml:"bottom_margin"` // Gap between ship and bottom edge
	Color        HexColor `yaml:"color"`
}

// ProjectileConfig defines one projectile variant and its pool.
type ProjectileConfig struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Speed    int      `yaml:"speed"` // Signed: negative moves up, positive moves down
	PoolSize int      `yaml:"pool_size"`
	Color    HexColor `yaml:"color"`
}

// EnemiesConfig defines the enemy grid and formation behaviour.
type EnemiesConfig struct {
	Rows        int      `yaml:"rows"`
	Cols        int      `yaml:"cols"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	SpacingX    int      `yaml:"spacing_x"`
	SpacingY    int      `yaml:"spacing_y"`
	OriginX     int      `yaml:"origin_x"`
	OriginY     int      `yaml:"origin_y"`
	Speed       int      `yaml:"speed"`        // Horizontal step per formation move
	Drop        int      `yaml:"drop"`         // Vertical drop on an edge event
	MoveDelay   int      `yaml:"move_delay"`   // Ticks between formation moves
	ShootDelay  int      `yaml:"shoot_delay"`  // Ticks between firing rounds
	ShootChance int      `yaml:"shoot_chance"` // Percent chance per enemy per round
	Color       HexColor `yaml:"color"`
}

// ShieldsConfig defines the row of destructible shields.
type ShieldsConfig struct {
	Count          int      `yaml:"count"`
	Width          int      `yaml:"width"`
	Height         int      `yaml:"height"`
	Y              int      `yaml:"y"`
	Health         int      `yaml:"health"`
	AlphaReduction int      `yaml:"alpha_reduction"` // Alpha lost per point of damage
	Color          HexColor `yaml:"color"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	KillScore int `yaml:"kill_score"`
}

// HexColor is a "#rrggbb" colour as written in YAML.
type HexColor string

// Parse converts the hex string to an opaque RGBA colour.
func (h HexColor) Parse() (color.RGBA, error) {
	c, err := colorful.Hex(string(h))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", string(h), err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// RGBA converts the hex string to a colour, falling back to white when
// the value does not parse. Validate reports bad colours up front.
func (h HexColor) RGBA() color.RGBA {
	c, err := h.Parse()
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}

// GridWidth returns the width of the initial enemy grid.
func (e EnemiesConfig) GridWidth() int {
	if e.Cols <= 0 {
		return 0
	}
	return e.Cols*e.Width + (e.Cols-1)*e.SpacingX
}
