package model

import "fmt"

// Amount is a running balance anchored to one side of the books. The
// side is fixed at construction; only the magnitude moves, and it may go
// negative, which represents a balance sitting on the "wrong" side.
type Amount struct {
	side  Side
	value int64
}

// NewAmount creates an amount anchored to side.
func NewAmount(side Side, value int64) *Amount {
	return &Amount{side: side, value: value}
}

// Side returns the side the amount is anchored to.
func (a *Amount) Side() Side {
	return a.side
}

// Value returns the current magnitude.
func (a *Amount) Value() int64 {
	return a.value
}

// SetValue replaces the magnitude, keeping the side.
func (a *Amount) SetValue(v int64) {
	a.value = v
}

// Increase accumulates other into a: added when the sides match,
// subtracted otherwise. A nil other is ignored.
func (a *Amount) Increase(other *Amount) {
	if other == nil {
		return
	}
	if other.side == a.side {
		a.value += other.value
	} else {
		a.value -= other.value
	}
}

// Decrease is the mirror of Increase.
func (a *Amount) Decrease(other *Amount) {
	if other == nil {
		return
	}
	if other.side == a.side {
		a.value -= other.value
	} else {
		a.value += other.value
	}
}

// IncreaseBy adds v to the magnitude.
func (a *Amount) IncreaseBy(v int64) {
	a.value += v
}

// DecreaseBy subtracts v from the magnitude.
func (a *Amount) DecreaseBy(v int64) {
	a.value -= v
}

// Clone returns an independent copy.
func (a *Amount) Clone() *Amount {
	if a == nil {
		return nil
	}
	return &Amount{side: a.side, value: a.value}
}

func (a *Amount) String() string {
	return fmt.Sprintf("%s %d", a.side, a.value)
}
