package domain

import (
	"errors"
	"fmt"

	"github.com/dicepool/farkle/dice"
)

// PoolSize is the number of dice rolled each turn.
const PoolSize = 6

// Point values for the whole-roll patterns.
const (
	StraightValue   = 3000
	TriplePairValue = 2000
)

// RollType classifies a freshly rolled pool.
type RollType string

const (
	RollTypeFarkle     RollType = "farkle"
	RollTypeSimple     RollType = "simple"
	RollTypeTriplePair RollType = "triple_pair"
	RollTypeStraight   RollType = "straight"
)

// ToggleResult reports the outcome of toggling a single die.
type ToggleResult string

const (
	TogglePicked        ToggleResult = "picked"
	ToggleUnpicked      ToggleResult = "unpicked"
	ToggleNotPickable   ToggleResult = "not_pickable"
	ToggleNotUnpickable ToggleResult = "not_unpickable"
)

var (
	// ErrPartialSet is returned when a confirmed pick holds one or two dice
	// of a face other than 1 or 5; such faces only score as triples or more.
	ErrPartialSet = errors.New("can only select three or more of a value other than 1 or 5")
	// ErrWorthlessSelection is returned when a confirmed pick scores zero,
	// which includes confirming an empty toggle set.
	ErrWorthlessSelection = errors.New("selection must have positive value")
)

// Roll is the pool of six dice for the current sub-roll. A die's index is its
// identity for the duration of the sub-roll; it is unrelated to its face.
type Roll struct {
	dice [PoolSize]dice.Die
}

// NewRollPool creates a fresh pool of six unpicked, unrolled dice.
func NewRollPool() *Roll {
	return &Roll{}
}

// Dice returns a snapshot of the pool.
func (r *Roll) Dice() [PoolSize]dice.Die {
	return r.dice
}

// Die returns a snapshot of the die at index i. Panics on an out-of-range
// index; that is a caller bug, not a game situation.
func (r *Roll) Die(i int) dice.Die {
	r.checkIndex(i)
	return r.dice[i]
}

func (r *Roll) checkIndex(i int) {
	if i < 0 || i >= PoolSize {
		panic(fmt.Sprintf("die index out of range: %d", i))
	}
}

// CountValues counts, per face value, the dice that are currently active:
// free dice plus dice toggled in the current picking pass. Dice locked by an
// earlier confirmed sub-roll are excluded, so pickability reacts live while
// the player toggles.
func (r *Roll) CountValues() [dice.Faces + 1]int {
	var counts [dice.Faces + 1]int
	for _, d := range r.dice {
		if d.State != dice.StateLockedPrior {
			counts[d.Value]++
		}
	}
	return counts
}

// requiredCount is how many active dice of a face must exist for one of them
// to be pickable. Ones and fives score alone; everything else needs a triple.
func requiredCount(face int) int {
	if face == 1 || face == 5 {
		return 1
	}
	return 3
}

// DeterminePickable reports, per die, whether it may be toggled into the
// current pick. A die already picked is never pickable.
func (r *Roll) DeterminePickable() [PoolSize]bool {
	counts := r.CountValues()
	var pickable [PoolSize]bool
	for i, d := range r.dice {
		pickable[i] = !d.Picked() && counts[d.Value] >= requiredCount(d.Value)
	}
	return pickable
}

// ToggleDie flips the pick state of die i. Picking is only allowed while the
// die is pickable under the live counts; unpicking is only allowed for dice
// toggled in the current pass, never for dice locked by a previous confirm.
func (r *Roll) ToggleDie(i int) ToggleResult {
	r.checkIndex(i)
	d := &r.dice[i]

	if d.Picked() {
		if d.Pending() {
			d.Unpick()
			return ToggleUnpicked
		}
		return ToggleNotUnpickable
	}

	if r.DeterminePickable()[i] {
		d.Pick()
		return TogglePicked
	}
	return ToggleNotPickable
}

// Exhausted reports whether every die in the pool has been picked.
func (r *Roll) Exhausted() bool {
	for _, d := range r.dice {
		if !d.Picked() {
			return false
		}
	}
	return true
}

// NewRoll starts the next sub-roll. An exhausted pool is first replaced by
// six fresh dice (the hot dice rule). Every free die gets a new face from the
// roller; every picked die is settled so it no longer counts as pending.
func (r *Roll) NewRoll(roller dice.Roller) {
	if r.Exhausted() {
		r.dice = [PoolSize]dice.Die{}
	}
	for i := range r.dice {
		d := &r.dice[i]
		if d.Picked() {
			d.Settle()
		} else {
			d.Value = roller.NextFace()
		}
	}
}

// DetermineType classifies the pool after a sub-roll. A straight (six
// distinct faces) or triple pair (three pairs) picks all six dice and returns
// a ready-made selection of fixed value. Otherwise the result is Simple when
// at least one die is pickable and Farkle when none is.
func (r *Roll) DetermineType() (Selection, RollType) {
	counts := r.CountValues()

	straight, pairs, active := true, 0, 0
	for face := 1; face <= dice.Faces; face++ {
		c := counts[face]
		active += c
		if c != 1 {
			straight = false
		}
		if c == 2 {
			pairs++
		}
	}
	// Patterns are whole-pool shapes. Pairs over a partial pool, with some
	// dice locked from earlier confirms, score die by die instead.
	triplePair := pairs == 3 && active == PoolSize

	if straight || triplePair {
		values := make([]int, 0, PoolSize)
		for i := range r.dice {
			r.dice[i].Pick()
			values = append(values, r.dice[i].Value)
		}
		if straight {
			sel, _ := NewSelection(values, StraightValue)
			return sel, RollTypeStraight
		}
		sel, _ := NewSelection(values, TriplePairValue)
		return sel, RollTypeTriplePair
	}

	for _, ok := range r.DeterminePickable() {
		if ok {
			return Selection{}, RollTypeSimple
		}
	}
	return Selection{}, RollTypeFarkle
}

// ConstructSelection scores the dice toggled in the current picking pass and
// returns them as an immutable selection. Faces other than 1 and 5 must
// appear zero times or at least three times. The total must be positive.
func (r *Roll) ConstructSelection() (Selection, error) {
	var counts [dice.Faces + 1]int
	values := make([]int, 0, PoolSize)
	for _, d := range r.dice {
		if d.Pending() {
			counts[d.Value]++
			values = append(values, d.Value)
		}
	}

	total := 0
	for face := 1; face <= dice.Faces; face++ {
		c := counts[face]
		if c == 0 {
			continue
		}
		switch face {
		case 1:
			if c >= 3 {
				total += 1000 * (c - 2)
			} else {
				total += 100 * c
			}
		case 5:
			if c >= 3 {
				total += 500 * (c - 2)
			} else {
				total += 50 * c
			}
		default:
			if c < 3 {
				return Selection{}, ErrPartialSet
			}
			total += face * 100 * (c - 2)
		}
	}

	return NewSelection(values, total)
}

// Deselect reverts the current picking pass, returning every pending die to
// the active pool. Dice locked by earlier confirms are untouched.
func (r *Roll) Deselect() {
	for i := range r.dice {
		if r.dice[i].Pending() {
			r.dice[i].Unpick()
		}
	}
}
