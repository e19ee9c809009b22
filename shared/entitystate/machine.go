package entitystate

// Machine keeps the current state of one entity together with the one-shot
// attack latch. The latch is only released by NotifyAttackFinished, never by
// kinematics.
type Machine struct {
	current   State
	previous  State
	ticks     int
	attacking bool
}

func NewMachine() *Machine {
	return &Machine{}
}

// TriggerAttack latches the attack. Triggering while already attacking is a
// no-op; it does not restart the attack.
func (m *Machine) TriggerAttack() bool {
	if m.attacking {
		return false
	}
	m.attacking = true
	return true
}

// NotifyAttackFinished releases the latch. The state itself changes on the
// next Update.
func (m *Machine) NotifyAttackFinished() {
	m.attacking = false
}

func (m *Machine) AttackActive() bool { return m.attacking }

// Update derives the state for this tick and reports whether it changed.
func (m *Machine) Update(in Inputs) (State, bool) {
	next := Derive(m.attacking, in)
	if next == m.current {
		m.ticks++
		return next, false
	}
	m.previous = m.current
	m.current = next
	m.ticks = 0
	return next, true
}

// Reset puts the machine back to Idle with no attack pending, as on respawn.
func (m *Machine) Reset() {
	m.previous = m.current
	m.current = Idle
	m.ticks = 0
	m.attacking = false
}

func (m *Machine) Current() State  { return m.current }
func (m *Machine) Previous() State { return m.previous }

// Ticks is the number of updates spent in the current state.
func (m *Machine) Ticks() int { return m.ticks }
