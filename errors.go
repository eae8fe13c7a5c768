package advkit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/advkit/blobstore"
	"github.com/hupe1980/advkit/internal/errs"
	"github.com/hupe1980/advkit/manifest"
)

var (
	// ErrInvalidArgument is returned (wrapped) for every rejected input.
	// The per-package sentinels pairs.ErrInvalidArgument and
	// labels.ErrInvalidArgument are the same value.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrNotFound is returned when a named manifest does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when persisted data cannot be decoded.
	ErrCorrupt = errors.New("corrupt data")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, manifest.ErrNotFound) || errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	for _, target := range []error{
		manifest.ErrInvalidMagic,
		manifest.ErrUnsupportedVersion,
		manifest.ErrChecksumMismatch,
		manifest.ErrUnknownCodec,
		manifest.ErrUnknownCompression,
		manifest.ErrInvalidLength,
	} {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}

	return err
}
