package config

import (
	"fmt"
	"os"

	"github.com/automoto/doomerang-tiles/shared/tomlconv"
)

// fileConfig mirrors the globals with pointer fields so a file only
// overrides the keys it sets.
type fileConfig struct {
	Window struct {
		Width  *int     `toml:"width"`
		Height *int     `toml:"height"`
		Scale  *float64 `toml:"scale"`
	} `toml:"window"`

	Physics struct {
		TileSize        *float64 `toml:"tile_size"`
		Epsilon         *float64 `toml:"epsilon"`
		WallProbeShrink *float64 `toml:"wall_probe_shrink"`
		CeilingNudge    *float64 `toml:"ceiling_nudge"`
		Gravity         *float64 `toml:"gravity"`
		MaxFallSpeed    *float64 `toml:"max_fall_speed"`
	} `toml:"physics"`

	Player struct {
		Speed           *float64 `toml:"speed"`
		CrouchSpeed     *float64 `toml:"crouch_speed"`
		JumpSpeed       *float64 `toml:"jump_speed"`
		MaxJumps        *int     `toml:"max_jumps"`
		Gravity         *float64 `toml:"gravity"`
		MaxFallSpeed    *float64 `toml:"max_fall_speed"`
		Health          *int     `toml:"health"`
		AttackTicks     *int     `toml:"attack_ticks"`
		StartingLives   *int     `toml:"starting_lives"`
		RespawnDelay    *int     `toml:"respawn_delay_ticks"`
		CollisionWidth  *float64 `toml:"collision_width"`
		CollisionHeight *float64 `toml:"collision_height"`
		CrouchHeight    *float64 `toml:"crouch_height"`
	} `toml:"player"`

	Enemies map[string]enemyFile `toml:"enemies"`

	Sim struct {
		TPS               *int    `toml:"tps"`
		LevelsDir         *string `toml:"levels_dir"`
		AutoFinishAttacks *bool   `toml:"auto_finish_attacks"`
		SaveSlot          *string `toml:"save_slot"`
	} `toml:"sim"`

	Camera struct {
		FollowTicks      *int     `toml:"follow_ticks"`
		RetargetDistance *float64 `toml:"retarget_distance"`
	} `toml:"camera"`
}

type enemyFile struct {
	Name             *string  `toml:"name"`
	Health           *int     `toml:"health"`
	PatrolSpeed      *float64 `toml:"patrol_speed"`
	ReversalCooldown *int     `toml:"reversal_cooldown"`
	DeathTicks       *int     `toml:"death_ticks"`
	Gravity          *float64 `toml:"gravity"`
	MaxFallSpeed     *float64 `toml:"max_fall_speed"`
	CollisionWidth   *float64 `toml:"collision_width"`
	CollisionHeight  *float64 `toml:"collision_height"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// LoadFile merges a TOML override file into the globals and validates the
// result. On any error the globals are left as they were.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Load(data)
}

// Load is LoadFile over an in-memory document.
func Load(data []byte) error {
	var f fileConfig
	if err := tomlconv.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	prev := snapshot()
	f.apply()
	if err := Validate(); err != nil {
		prev.restore()
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (f *fileConfig) apply() {
	win := *C
	set(&win.Width, f.Window.Width)
	set(&win.Height, f.Window.Height)
	set(&win.Scale, f.Window.Scale)
	C = &win

	set(&Physics.TileSize, f.Physics.TileSize)
	set(&Physics.Epsilon, f.Physics.Epsilon)
	set(&Physics.WallProbeShrink, f.Physics.WallProbeShrink)
	set(&Physics.CeilingNudge, f.Physics.CeilingNudge)
	set(&Physics.Gravity, f.Physics.Gravity)
	set(&Physics.MaxFallSpeed, f.Physics.MaxFallSpeed)

	set(&Player.Speed, f.Player.Speed)
	set(&Player.CrouchSpeed, f.Player.CrouchSpeed)
	set(&Player.JumpSpeed, f.Player.JumpSpeed)
	set(&Player.MaxJumps, f.Player.MaxJumps)
	set(&Player.Gravity, f.Player.Gravity)
	set(&Player.MaxFallSpeed, f.Player.MaxFallSpeed)
	set(&Player.Health, f.Player.Health)
	set(&Player.AttackTicks, f.Player.AttackTicks)
	set(&Player.StartingLives, f.Player.StartingLives)
	set(&Player.RespawnDelayTicks, f.Player.RespawnDelay)
	set(&Player.CollisionWidth, f.Player.CollisionWidth)
	set(&Player.CollisionHeight, f.Player.CollisionHeight)
	set(&Player.CrouchHeight, f.Player.CrouchHeight)

	types := make(map[string]EnemyTypeConfig, len(Enemy.Types)+len(f.Enemies))
	for k, v := range Enemy.Types {
		types[k] = v
	}
	for kind, e := range f.Enemies {
		t := types[kind]
		set(&t.Name, e.Name)
		set(&t.Health, e.Health)
		set(&t.PatrolSpeed, e.PatrolSpeed)
		set(&t.ReversalCooldown, e.ReversalCooldown)
		set(&t.DeathTicks, e.DeathTicks)
		set(&t.Gravity, e.Gravity)
		set(&t.MaxFallSpeed, e.MaxFallSpeed)
		set(&t.CollisionWidth, e.CollisionWidth)
		set(&t.CollisionHeight, e.CollisionHeight)
		if t.TintColor == (EnemyTypeConfig{}).TintColor {
			t.TintColor = White
		}
		types[kind] = t
	}
	Enemy.Types = types

	set(&Sim.TPS, f.Sim.TPS)
	set(&Sim.LevelsDir, f.Sim.LevelsDir)
	set(&Sim.AutoFinishAttacks, f.Sim.AutoFinishAttacks)
	set(&Sim.SaveSlot, f.Sim.SaveSlot)

	set(&Camera.FollowTicks, f.Camera.FollowTicks)
	set(&Camera.RetargetDistance, f.Camera.RetargetDistance)
}

type saved struct {
	c       Config
	physics PhysicsConfig
	player  PlayerConfig
	enemy   EnemyConfig
	sim     SimConfig
	camera  CameraConfig
}

func snapshot() saved {
	return saved{c: *C, physics: Physics, player: Player, enemy: Enemy, sim: Sim, camera: Camera}
}

func (s saved) restore() {
	c := s.c
	C = &c
	Physics = s.physics
	Player = s.player
	Enemy = s.enemy
	Sim = s.sim
	Camera = s.camera
}
