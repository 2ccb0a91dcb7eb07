package balance

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCorruptBalance      = errors.New("stored balance is negative")
	ErrBalanceOverflow     = errors.New("balance overflow")
)

// Change is the outcome of one balance write. Applied differs from the
// requested delta only when the result was clamped at zero.
type Change struct {
	Before  int64
	After   int64
	Applied int64
}

func (c Change) Clamped(requested int64) bool {
	return c.Applied != requested
}

type InsufficientBalanceError struct {
	Need int64
	Have int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient points: need %d, have %d", e.Need, e.Have)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// ApplyDelta computes current+delta. When clampToZero is false a negative
// result is rejected; when true the floor is 0.
func ApplyDelta(current, delta int64, clampToZero bool) (Change, error) {
	if current < 0 {
		return Change{}, ErrCorruptBalance
	}
	if delta > 0 && current > math.MaxInt64-delta {
		return Change{}, ErrBalanceOverflow
	}

	next := current + delta
	if next < 0 {
		if !clampToZero {
			return Change{}, &InsufficientBalanceError{Need: -delta, Have: current}
		}
		next = 0
	}

	return Change{
		Before:  current,
		After:   next,
		Applied: next - current,
	}, nil
}
