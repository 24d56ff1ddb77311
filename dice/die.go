package dice

// Faces is the number of faces on a die.
const Faces = 6

// State tracks what has happened to a die within the current turn.
type State string

const (
	// StateFree means the die is in the active pool and will be re-rolled.
	// It is the zero value, so a freshly constructed die is free.
	StateFree State = ""
	// StateLockedPrior means the die was scored in an earlier confirmed
	// sub-roll this turn and cannot be touched again.
	StateLockedPrior State = "locked"
	// StatePendingPick means the die was toggled in the current, not yet
	// confirmed, picking pass.
	StatePendingPick State = "pending"
)

// Die represents a single six-sided die.
// Value is only meaningful after the die has been rolled at least once.
type Die struct {
	Value int
	State State
}

// Picked reports whether the die has been removed from the active pool,
// whether confirmed earlier this turn or still pending confirmation.
func (d Die) Picked() bool {
	return d.State != StateFree
}

// Pending reports whether the die was toggled in the current picking pass.
func (d Die) Pending() bool {
	return d.State == StatePendingPick
}

// Pick marks the die as selected in the current picking pass. Idempotent.
func (d *Die) Pick() {
	d.State = StatePendingPick
}

// Unpick returns the die to the active pool. Idempotent.
func (d *Die) Unpick() {
	d.State = StateFree
}

// Settle converts a pending pick into a confirmed lock. Dice that were not
// pending are left untouched.
func (d *Die) Settle() {
	if d.State == StatePendingPick {
		d.State = StateLockedPrior
	}
}
