package spacecurve

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched, via [errors.Is], by every [*InvalidInputError].
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports control points or step counts that do not
// satisfy an evaluator's preconditions. It is returned before any evaluation
// takes place; there is never a partial result.
type InvalidInputError struct {
	// Op is the name of the evaluator that rejected the input.
	Op string
	// Points is the number of control points that were passed.
	Points int
	// Steps is the step count that was passed.
	Steps  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s (got %d control points, %d steps)", e.Op, e.Reason, e.Points, e.Steps)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func checkSteps(op string, points, steps int) error {
	if steps < 1 {
		return &InvalidInputError{
			Op:     op,
			Points: points,
			Steps:  steps,
			Reason: "step count must be at least 1",
		}
	}
	return nil
}
