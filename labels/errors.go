package labels

import (
	"fmt"

	"github.com/hupe1980/advkit/internal/errs"
)

// ErrInvalidArgument is returned (wrapped) for every rejected input.
var ErrInvalidArgument = errs.ErrInvalidArgument

// ErrLabelOutOfRange indicates a class id outside [0, NumClasses).
type ErrLabelOutOfRange struct {
	Index      int
	Label      int
	NumClasses int
}

func (e *ErrLabelOutOfRange) Error() string {
	return fmt.Sprintf("invalid argument: label %d at position %d is outside [0, %d)", e.Label, e.Index, e.NumClasses)
}

func (e *ErrLabelOutOfRange) Unwrap() error { return ErrInvalidArgument }

// ErrShape indicates a matrix whose shape does not fit the operation.
type ErrShape struct {
	Rows   int
	Cols   int
	Reason string
}

func (e *ErrShape) Error() string {
	return fmt.Sprintf("invalid argument: %dx%d matrix: %s", e.Rows, e.Cols, e.Reason)
}

func (e *ErrShape) Unwrap() error { return ErrInvalidArgument }

func checkRange(ids []int, numClasses int) error {
	for i, id := range ids {
		if id < 0 || id >= numClasses {
			return &ErrLabelOutOfRange{Index: i, Label: id, NumClasses: numClasses}
		}
	}
	return nil
}
