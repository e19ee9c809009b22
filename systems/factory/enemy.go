package factory

import (
	"github.com/automoto/doomerang-tiles/archetypes"
	"github.com/automoto/doomerang-tiles/components"
	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/automoto/doomerang-tiles/shared/leveldata"
	"github.com/automoto/doomerang-tiles/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy of spawn.Kind. Unknown kinds fall back to a
// guard; the stored EnemyData.Kind tells the caller which one was used.
func CreateEnemy(w donburi.World, space *resolv.Space, spawn leveldata.EnemySpawn, index int) *donburi.Entry {
	kind := spawn.Kind
	enemyType, err := cfg.EnemyType(kind)
	if err != nil {
		kind = cfg.KindGuard
		enemyType = cfg.Enemy.Types[kind] // Fallback to default
	}
	profile, _ := cfg.EnemyProfile(kind)

	enemy := archetypes.Enemy.Spawn(w)

	body := kinematics.NewBody(profile, spawn.X, spawn.Y)
	body.FacingLeft = spawn.Direction < 0
	components.Body.SetValue(enemy, *body)
	components.Controller.SetValue(enemy, components.ControllerData{
		Policy: kinematics.NewPatrolPolicy(enemyType.PatrolSpeed, spawn.Direction, enemyType.ReversalCooldown),
	})

	obj := resolv.NewObject(body.Hitbox.X, body.Hitbox.Y, body.Hitbox.W, body.Hitbox.H, tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	space.Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:       kind,
		SpawnIndex: index,
		TintColor:  enemyType.TintColor,
		DeathTicks: enemyType.DeathTicks,
	})
	components.State.SetValue(enemy, components.StateData{
		Machine: *entitystate.NewMachine(),
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	return enemy
}

// PatrolPolicy returns an enemy's controller, or nil for other entities.
func PatrolPolicy(e *donburi.Entry) *kinematics.PatrolPolicy {
	if !e.HasComponent(components.Controller) {
		return nil
	}
	p, _ := components.Controller.Get(e).Policy.(*kinematics.PatrolPolicy)
	return p
}
