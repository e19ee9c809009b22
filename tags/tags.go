package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for broadphase queries
const (
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
)
