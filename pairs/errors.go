package pairs

import (
	"fmt"

	"github.com/hupe1980/advkit/internal/errs"
)

// ErrInvalidArgument is returned (wrapped) for every rejected input.
var ErrInvalidArgument = errs.ErrInvalidArgument

// ErrInvalidNumClasses indicates a class count that cannot produce both
// positive and negative pairs.
type ErrInvalidNumClasses struct {
	NumClasses int
}

func (e *ErrInvalidNumClasses) Error() string {
	if e.NumClasses == 1 {
		return "invalid argument: num classes is 1, negative pairs need at least 2 classes"
	}
	return fmt.Sprintf("invalid argument: num classes must be positive, got %d", e.NumClasses)
}

func (e *ErrInvalidNumClasses) Unwrap() error { return ErrInvalidArgument }

// ErrLengthMismatch indicates samples and labels are not index-aligned.
type ErrLengthMismatch struct {
	Samples int
	Labels  int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("invalid argument: %d samples but %d labels", e.Samples, e.Labels)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrLabelOutOfRange indicates a label outside [0, NumClasses).
type ErrLabelOutOfRange struct {
	Index      int
	Label      int
	NumClasses int
}

func (e *ErrLabelOutOfRange) Error() string {
	return fmt.Sprintf("invalid argument: label %d at position %d is outside [0, %d)", e.Label, e.Index, e.NumClasses)
}

func (e *ErrLabelOutOfRange) Unwrap() error { return ErrInvalidArgument }

// ErrTooManySamples indicates a dataset the 32-bit class index cannot address.
type ErrTooManySamples struct {
	Count int
}

func (e *ErrTooManySamples) Error() string {
	return fmt.Sprintf("invalid argument: %d samples exceed the class index capacity", e.Count)
}

func (e *ErrTooManySamples) Unwrap() error { return ErrInvalidArgument }
