package config

import "image/color"

// PhysicsConfig contains the tile-space constants shared by every entity
type PhysicsConfig struct {
	TileSize        float64
	Epsilon         float64 // Boundary tolerance for tile-edge lookups
	WallProbeShrink float64 // Pixels trimmed off the bottom of the wall probe so floors don't read as walls
	CeilingNudge    float64 // Downward speed forced on a ceiling hit

	// Defaults for kinds that don't override them
	Gravity      float64
	MaxFallSpeed float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed       float64
	CrouchSpeed float64
	JumpSpeed   float64
	MaxJumps    int

	// Physics
	Gravity      float64
	MaxFallSpeed float64

	// Combat
	Health      int
	AttackTicks int // Stand-in attack length when no animation reports completion

	// Lives
	StartingLives     int
	RespawnDelayTicks int // Ticks between a death and the respawn

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
	CrouchHeight    float64
	OffsetX         float64
	OffsetY         float64
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name             string
	Health           int
	PatrolSpeed      float64
	ReversalCooldown int // Ticks a patrol direction is locked after turning
	DeathTicks       int // Ticks a killed enemy lingers before it is nullified

	// Physics
	Gravity      float64
	MaxFallSpeed float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
	OffsetX         float64
	OffsetY         float64

	// Visual
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// SimConfig contains simulation loop settings
type SimConfig struct {
	TPS               int
	LevelsDir         string
	AutoFinishAttacks bool // Count AttackTicks down instead of waiting for an animation
	SaveSlot          string
}

// CameraConfig contains camera behavior configuration for the debug client
type CameraConfig struct {
	FollowTicks      int     // Duration of the easing toward the player
	RetargetDistance float64 // Player movement that restarts the easing
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Scale  float64
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Sim SimConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Enemy kind names as they appear in level files
const (
	KindGuard      = "guard"
	KindLightGuard = "light_guard"
	KindHeavyGuard = "heavy_guard"
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
	}

	Physics = PhysicsConfig{
		TileSize:        16,
		Epsilon:         0.001,
		WallProbeShrink: 2,
		CeilingNudge:    1,

		Gravity:      0.5,
		MaxFallSpeed: 10,
	}

	Player = PlayerConfig{
		// Movement
		Speed:       3,
		CrouchSpeed: 1.5,
		JumpSpeed:   8.5,
		MaxJumps:    2,

		// Physics
		Gravity:      0.5,
		MaxFallSpeed: 10,

		// Combat
		Health:      60,
		AttackTicks: 20,

		// Lives
		StartingLives:     3,
		RespawnDelayTicks: 45,

		// Dimensions
		CollisionWidth:  12,
		CollisionHeight: 28,
		CrouchHeight:    14,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			KindGuard: {
				Name:             "Guard",
				Health:           60,
				PatrolSpeed:      1.5,
				ReversalCooldown: 20,
				DeathTicks:       30,
				Gravity:          0.5,
				MaxFallSpeed:     10,
				CollisionWidth:   12,
				CollisionHeight:  28,
				TintColor:        White,
			},
			KindLightGuard: {
				Name:             "LightGuard",
				Health:           30,
				PatrolSpeed:      2.5,
				ReversalCooldown: 12,
				DeathTicks:       30,
				Gravity:          0.55,
				MaxFallSpeed:     10,
				CollisionWidth:   10,
				CollisionHeight:  24,
				TintColor:        Yellow,
			},
			KindHeavyGuard: {
				Name:             "HeavyGuard",
				Health:           100,
				PatrolSpeed:      1,
				ReversalCooldown: 30,
				DeathTicks:       30,
				Gravity:          0.45,
				MaxFallSpeed:     9,
				CollisionWidth:   16,
				CollisionHeight:  30,
				TintColor:        Orange,
			},
		},
	}

	Sim = SimConfig{
		TPS:               60,
		LevelsDir:         "levels",
		AutoFinishAttacks: true,
		SaveSlot:          "slot1",
	}

	Camera = CameraConfig{
		FollowTicks:      20,
		RetargetDistance: 8,
	}
}
