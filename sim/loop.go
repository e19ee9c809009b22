package sim

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/sirupsen/logrus"
)

// Loop drives a World at a fixed tick rate and publishes a Snapshot after
// every tick. Intent and collaborator calls may come from any goroutine.
type Loop struct {
	world    *World
	tickRate int
	log      logrus.FieldLogger

	mu sync.Mutex // guards world; held while a snapshot is published

	snapMu sync.RWMutex
	snap   Snapshot

	// OnTick, if set, is called after each tick from the goroutine that ran
	// it. When Run and Advance tick at once, calls may arrive out of order;
	// Snapshot never goes backwards.
	OnTick func(Snapshot)
}

func NewLoop(world *World, tickRate int, log logrus.FieldLogger) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loop{
		world:    world,
		tickRate: tickRate,
		log:      log,
		snap:     world.Snapshot(),
	}
}

// Run ticks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.log.WithField("tps", l.tickRate).Info("Game loop started")

	for {
		select {
		case <-ctx.Done():
			l.log.WithField("tick", l.Snapshot().Tick).Info("Game loop stopped")
			return nil
		case <-ticker.C:
			l.tick()
		}
	}
}

// Advance runs n ticks immediately, without waiting for the ticker.
func (l *Loop) Advance(n int) Snapshot {
	var snap Snapshot
	for i := 0; i < n; i++ {
		snap = l.tick()
	}
	if n <= 0 {
		snap = l.Snapshot()
	}
	return snap
}

func (l *Loop) tick() Snapshot {
	l.mu.Lock()
	l.world.Step()
	snap := l.world.Snapshot()
	l.snapMu.Lock()
	l.snap = snap
	l.snapMu.Unlock()
	l.mu.Unlock()

	if l.OnTick != nil {
		l.OnTick(snap)
	}
	return snap
}

// Snapshot returns the state published after the last tick.
func (l *Loop) Snapshot() Snapshot {
	l.snapMu.RLock()
	defer l.snapMu.RUnlock()
	return l.snap
}

func (l *Loop) SetPlayerIntent(in kinematics.Intent) {
	l.Do(func(w *World) { w.SetPlayerIntent(in) })
}

func (l *Loop) NotifyAttackFinished() {
	l.Do(func(w *World) { w.NotifyAttackFinished() })
}

// Do runs fn with exclusive access to the world, between ticks.
func (l *Loop) Do(fn func(w *World)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.world)
}
