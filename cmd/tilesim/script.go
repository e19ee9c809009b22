package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/doomerang-tiles/shared/entitystate"
	"github.com/automoto/doomerang-tiles/shared/kinematics"
	"github.com/automoto/doomerang-tiles/sim"
)

// Step holds one intent for a number of ticks.
type Step struct {
	Intent kinematics.Intent
	Ticks  int
}

var actions = map[string]kinematics.Intent{
	"idle":         {},
	"left":         {MoveX: -1},
	"right":        {MoveX: 1},
	"jump":         {Jump: true},
	"jump-left":    {MoveX: -1, Jump: true},
	"jump-right":   {MoveX: 1, Jump: true},
	"crouch":       {Crouch: true},
	"crouch-left":  {MoveX: -1, Crouch: true},
	"crouch-right": {MoveX: 1, Crouch: true},
	"attack":       {Attack: true},
}

// ParseScript reads "action:ticks" steps separated by commas.
func ParseScript(s string) ([]Step, error) {
	var steps []Step
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: want action:ticks", part)
		}
		intent, known := actions[name]
		if !known {
			return nil, fmt.Errorf("step %q: unknown action %q", part, name)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("step %q: ticks must be a positive integer", part)
		}
		steps = append(steps, Step{Intent: intent, Ticks: ticks})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return steps, nil
}

// Driver plays a script on repeat and tracks logical states between
// snapshots.
type Driver struct {
	Steps []Step

	step, tick int
	states     []entitystate.State
}

// Next returns the intent for the coming tick.
func (d *Driver) Next() kinematics.Intent {
	s := d.Steps[d.step]
	d.tick++
	if d.tick >= s.Ticks {
		d.tick = 0
		d.step = (d.step + 1) % len(d.Steps)
	}
	return s.Intent
}

// Transition is a logical state change seen between two snapshots.
type Transition struct {
	Tick     uint64
	Index    int
	Kind     string
	From, To entitystate.State
}

func (d *Driver) observe(s sim.Snapshot) []Transition {
	var out []Transition
	if d.states == nil {
		d.states = make([]entitystate.State, len(s.Entities))
	}
	for i, e := range s.Entities {
		if e.State != d.states[i] {
			out = append(out, Transition{Tick: s.Tick, Index: i, Kind: e.Kind, From: d.states[i], To: e.State})
			d.states[i] = e.State
		}
	}
	return out
}
