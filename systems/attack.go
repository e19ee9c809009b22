package systems

import (
	"github.com/automoto/doomerang-tiles/components"
	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdateAttacks starts an attack on the press edge of the player's attack
// intent. With AutoFinishAttacks the attack ends after AttackTicks; without
// it the latch holds until NotifyAttackFinished.
func UpdateAttacks(ctx *Context) {
	playerEntry, ok := ctx.Player()
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	attack := components.Attack.Get(playerEntry)

	if ctx.AutoFinishAttacks && state.Machine.AttackActive() {
		attack.TicksLeft--
		if attack.TicksLeft <= 0 {
			finishAttack(playerEntry)
		}
	}

	pressed := player.Intent.Attack && !player.AttackHeld
	player.AttackHeld = player.Intent.Attack
	if !pressed || playerEntry.HasComponent(components.Death) || !components.Body.Get(playerEntry).Active() {
		return
	}
	if state.Machine.TriggerAttack() {
		attack.TicksLeft = cfg.Player.AttackTicks
		attack.Count++
		ctx.logger().WithFields(logrus.Fields{
			"tick":    ctx.Tick,
			"entity":  "player",
			"engaged": state.Engaged,
		}).Debug("Attack started")
	}
}

// NotifyAttackFinished is the entry point for whatever plays the attack
// animation: it releases the attack latch of e.
func NotifyAttackFinished(e *donburi.Entry) {
	if !e.HasComponent(components.State) {
		return
	}
	finishAttack(e)
}

func finishAttack(e *donburi.Entry) {
	components.State.Get(e).Machine.NotifyAttackFinished()
	if e.HasComponent(components.Attack) {
		components.Attack.Get(e).TicksLeft = 0
	}
}
