package manifest

import (
	"errors"
	"fmt"

	"github.com/hupe1980/advkit/internal/errs"
)

var (
	// ErrInvalidMagic is returned when data does not start with the manifest magic.
	ErrInvalidMagic = errors.New("invalid manifest magic")

	// ErrUnsupportedVersion is returned when the format version is not supported.
	ErrUnsupportedVersion = errors.New("unsupported manifest version")

	// ErrChecksumMismatch is returned when the stored payload is corrupt.
	ErrChecksumMismatch = errors.New("manifest checksum mismatch")

	// ErrUnknownCodec is returned when the header names an unknown codec.
	ErrUnknownCodec = errors.New("unknown manifest codec")

	// ErrUnknownCompression is returned for an unknown compression byte or name.
	ErrUnknownCompression = errors.New("unknown compression")

	// ErrInvalidLength is returned when a header length cannot describe the
	// stored payload.
	ErrInvalidLength = errors.New("invalid manifest payload length")

	// ErrNotFound is returned when a named manifest does not exist.
	ErrNotFound = errors.New("manifest not found")
)

// ValidationError describes an inconsistent manifest.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid manifest: %s: %s", e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidArgument).
func (e *ValidationError) Unwrap() error { return errs.ErrInvalidArgument }
