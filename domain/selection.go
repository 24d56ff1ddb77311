package domain

// Selection is an immutable scored subset of die faces, produced either by a
// confirmed pick or by a whole-roll pattern match. Constructed only by Roll,
// consumed only by Player.
type Selection struct {
	values []int
	value  int
}

// NewSelection builds a selection from the scored face values and their
// point total. A selection that is not worth anything cannot exist.
func NewSelection(values []int, value int) (Selection, error) {
	if value <= 0 {
		return Selection{}, ErrWorthlessSelection
	}
	vs := make([]int, len(values))
	copy(vs, values)
	return Selection{values: vs, value: value}, nil
}

// Values returns the scored face values in die order.
func (s Selection) Values() []int {
	vs := make([]int, len(s.values))
	copy(vs, s.values)
	return vs
}

// Value returns the point total for the selection.
func (s Selection) Value() int {
	return s.value
}
