// Package errs holds the error kinds shared by every advkit package.
package errs

import "errors"

// ErrInvalidArgument is the single failure kind for shape mismatches,
// out-of-range labels and degenerate class counts.
//
// Packages re-export it so callers can match with errors.Is against any of
// advkit.ErrInvalidArgument, pairs.ErrInvalidArgument, labels.ErrInvalidArgument
// or prep.ErrInvalidArgument.
var ErrInvalidArgument = errors.New("invalid argument")
