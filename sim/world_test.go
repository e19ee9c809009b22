package sim

import (
	"testing"

	cfg "github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/shared/collision"
	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/automoto/doomerang-tiles/shared/leveldata"
	"github.com/automoto/doomerang-tiles/shared/tilegrid"
	"github.com/automoto/doomerang-tiles/systems"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A floor with a lethal pit at x 96..128 and a wall on the right.
const pitBehavior = `
3,3,3,3,3,3,3,3,3,3,3,3
3,3,3,3,3,3,3,3,3,3,3,2
3,3,3,3,3,3,3,3,3,3,3,2
3,3,3,3,3,3,3,3,3,3,3,2
3,3,3,3,3,3,3,3,3,3,3,2
2,2,2,2,2,2,1,1,2,2,2,2
`

func pitLevel(t *testing.T, enemies ...leveldata.EnemySpawn) *leveldata.Level {
	t.Helper()
	grid, err := tilegrid.ParseString("", pitBehavior, 12, 6)
	require.NoError(t, err)
	return &leveldata.Level{
		Name:        "pit",
		Grid:        grid,
		TileSize:    16,
		PlayerSpawn: leveldata.Spawn{X: 16, Y: 52},
		EnemySpawns: enemies,
	}
}

func newTestWorld(t *testing.T, level *leveldata.Level) (*World, *test.Hook) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	w, err := NewWorld(level, Options{Log: logger, AutoFinishAttacks: true})
	require.NoError(t, err)
	return w, hook
}

func steps(w *World, n int) Snapshot {
	for i := 0; i < n; i++ {
		w.Step()
	}
	return w.Snapshot()
}

func TestNewWorldNeedsGrid(t *testing.T) {
	_, err := NewWorld(nil, Options{})
	assert.ErrorIs(t, err, ErrNoGrid)
	_, err = NewWorld(&leveldata.Level{Name: "empty"}, Options{})
	assert.ErrorIs(t, err, ErrNoGrid)
}

func TestSnapshotOrder(t *testing.T) {
	w, hook := newTestWorld(t, pitLevel(t,
		leveldata.EnemySpawn{X: 144, Y: 52, Kind: cfg.KindHeavyGuard},
		leveldata.EnemySpawn{X: 48, Y: 52, Kind: "ogre", Direction: -1},
	))

	snap := w.Snapshot()
	require.Len(t, snap.Entities, 3)
	assert.Equal(t, "pit", snap.Level)
	assert.Equal(t, "player", snap.Entities[0].Kind)
	assert.Equal(t, cfg.KindHeavyGuard, snap.Entities[1].Kind)
	assert.Equal(t, cfg.KindGuard, snap.Entities[2].Kind)
	assert.Equal(t, 2, snap.Entities[2].Index)
	assert.True(t, snap.Entities[2].Body.FacingLeft)

	p, ok := snap.Player()
	require.True(t, ok)
	assert.Equal(t, cfg.Player.StartingLives, p.Lives)

	assert.True(t, hasEntry(hook, logrus.WarnLevel, "Unknown enemy kind"))
	assert.True(t, hasEntry(hook, logrus.InfoLevel, "Loaded level"))
}

func TestPlayerStopsAtWorldEdge(t *testing.T) {
	w, _ := newTestWorld(t, pitLevel(t))
	w.SetPlayerIntent(kinematics.Intent{MoveX: -1})

	p, _ := steps(w, 30).Player()
	assert.Equal(t, 0.0, p.Body.Position.X)
	assert.True(t, p.Body.FacingLeft)
	assert.True(t, p.Grounded())
	assert.Equal(t, collision.SupportSolid, p.Support())
	assert.Equal(t, entitystate.Idle, p.State, "blocked bodies have no horizontal speed")
}

func TestPlayerWalksIntoPit(t *testing.T) {
	w, hook := newTestWorld(t, pitLevel(t))
	w.SetPlayerIntent(kinematics.Intent{MoveX: 1})

	var p Entity
	for i := 0; i < 100; i++ {
		p, _ = steps(w, 1).Player()
		if p.Dying {
			break
		}
		require.NotEqual(t, collision.SupportLethal, p.Support(), "lethal support starts a death the same tick")
	}
	require.True(t, p.Dying)
	assert.GreaterOrEqual(t, p.Body.Hitbox.X, 96.0)
	assert.True(t, hasEntry(hook, logrus.InfoLevel, "Entity died"))

	w.SetPlayerIntent(kinematics.Intent{})
	p, _ = steps(w, cfg.Player.RespawnDelayTicks+2).Player()
	assert.False(t, p.Dying)
	assert.True(t, p.Active())
	assert.Equal(t, cfg.Player.StartingLives-1, p.Lives)
	assert.Less(t, p.Body.Hitbox.X, 96.0, "respawned on safe ground")
	assert.Equal(t, collision.SupportSolid, p.Support())
}

func TestPatrolStaysOnPlatform(t *testing.T) {
	w, _ := newTestWorld(t, pitLevel(t, leveldata.EnemySpawn{X: 48, Y: 52, Kind: cfg.KindGuard, Direction: 1}))

	for i := 0; i < 600; i++ {
		snap := steps(w, 1)
		enemy := snap.Entities[1]
		require.True(t, enemy.Active(), "tick %d", snap.Tick)
		require.False(t, enemy.Dying, "tick %d", snap.Tick)
		require.GreaterOrEqual(t, enemy.Body.Hitbox.X, 0.0)
		require.LessOrEqual(t, enemy.Body.Hitbox.Right(), 96.0)
	}
}

func TestSetEngaged(t *testing.T) {
	w, _ := newTestWorld(t, pitLevel(t))
	assert.Error(t, w.SetEngaged(3, true))
	assert.Error(t, w.SetEngaged(-1, true))

	require.NoError(t, w.SetEngaged(0, true))
	p, _ := steps(w, 2).Player()
	assert.True(t, p.Engaged)
	assert.Equal(t, entitystate.EngagedIdle, p.State)

	require.NoError(t, w.SetEngaged(0, false))
	p, _ = steps(w, 1).Player()
	assert.Equal(t, entitystate.Idle, p.State)
}

func TestAttackFinishPulse(t *testing.T) {
	level := pitLevel(t)
	cfg.Reset()
	logger, _ := test.NewNullLogger()
	w, err := NewWorld(level, Options{Log: logger})
	require.NoError(t, err)
	steps(w, 1)

	w.SetPlayerIntent(kinematics.Intent{Attack: true})
	p, _ := steps(w, 100).Player()
	assert.Equal(t, entitystate.Attacking, p.State)

	w.NotifyAttackFinished()
	p, _ = steps(w, 1).Player()
	assert.Equal(t, entitystate.Idle, p.State)
}

func TestDegradedLevelIsPlayable(t *testing.T) {
	grid, err := tilegrid.ParseString("", "3,3,3\n2,2", 3, 2)
	require.ErrorIs(t, err, tilegrid.ErrShortSource)
	level := &leveldata.Level{
		Name:        "short",
		Grid:        grid,
		TileSize:    16,
		PlayerSpawn: leveldata.Spawn{X: 0, Y: -12},
		Degraded:    err,
	}
	w, hook := newTestWorld(t, level)
	assert.True(t, hasEntry(hook, logrus.WarnLevel, "Level data degraded, missing tiles read as air"))

	p, _ := steps(w, 5).Player()
	assert.True(t, p.Grounded())
}

func TestCeilingNudgeFollowsConfig(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	logger, _ := test.NewNullLogger()

	cfg.Physics.CeilingNudge = 2
	soft, err := NewWorld(pitLevel(t), Options{Log: logger})
	require.NoError(t, err)

	cfg.Physics.CeilingNudge = 0.5
	hard, err := NewWorld(pitLevel(t), Options{Log: logger})
	require.NoError(t, err)

	assert.Equal(t, 2.0, soft.Resolver().CeilingNudge, "later worlds do not change earlier ones")
	assert.Equal(t, 0.5, hard.Resolver().CeilingNudge)
}

func hasEntry(hook *test.Hook, level logrus.Level, msg string) bool {
	for _, e := range hook.AllEntries() {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

type mapStore map[string][]byte

func (m mapStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m mapStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func TestSaveAndLoadThroughWorld(t *testing.T) {
	w, _ := newTestWorld(t, pitLevel(t))
	store := mapStore{}
	assert.ErrorIs(t, w.Load(store, "slot1"), systems.ErrNoSave)

	w.SetPlayerIntent(kinematics.Intent{MoveX: 1})
	steps(w, 10)
	require.NoError(t, w.Save(store, "slot1"))
	saved, _ := w.Snapshot().Player()

	w.RespawnPlayer()
	p, _ := steps(w, 1).Player()
	require.NotEqual(t, saved.Body.Position.X, p.Body.Position.X)

	w.SetPlayerIntent(kinematics.Intent{})
	require.NoError(t, w.Load(store, "slot1"))
	p, _ = steps(w, 1).Player()
	assert.Equal(t, saved.Body.Position.X, p.Body.Position.X)
}
