package factory

import (
	"github.com/automoto/doomerang-tiles/archetypes"
	"github.com/automoto/doomerang-tiles/components"
	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/automoto/doomerang-tiles/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	profile := cfg.PlayerProfile()
	body := kinematics.NewBody(profile, x, y)
	components.Body.SetValue(player, *body)
	components.Controller.SetValue(player, components.ControllerData{
		Policy: kinematics.NewPlayerPolicy(profile, cfg.Player.CrouchSpeed, cfg.Player.CrouchHeight),
	})

	obj := resolv.NewObject(body.Hitbox.X, body.Hitbox.Y, body.Hitbox.W, body.Hitbox.H, tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		LastSafeX: x,
		LastSafeY: y,
	})
	components.State.SetValue(player, components.StateData{
		Machine: *entitystate.NewMachine(),
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})

	return player
}

// PlayerPolicy returns the player's controller, or nil for other entities.
func PlayerPolicy(e *donburi.Entry) *kinematics.PlayerPolicy {
	if !e.HasComponent(components.Controller) {
		return nil
	}
	p, _ := components.Controller.Get(e).Policy.(*kinematics.PlayerPolicy)
	return p
}
