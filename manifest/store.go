package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/advkit/blobstore"
)

// Extension is the blob suffix used for manifests.
const Extension = ".advk"

// Store saves and loads manifests on a blob store.
type Store struct {
	blobs blobstore.BlobStore
	opts  []Option
}

// NewStore creates a manifest store on blobs. opts apply to every Save.
func NewStore(blobs blobstore.BlobStore, opts ...Option) *Store {
	return &Store{blobs: blobs, opts: opts}
}

func blobName(name string) string {
	return name + Extension
}

// checkName accepts "/"-separated names whose segments are neither empty
// nor "." or "..".
func checkName(name string) error {
	ok := name != "" && !strings.Contains(name, `\`)
	for seg := range strings.SplitSeq(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			ok = false
		}
	}
	if !ok {
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("invalid name %q", name)}
	}
	return nil
}

// Save validates m, records name in it and writes it.
func (s *Store) Save(ctx context.Context, name string, m *Manifest, opts ...Option) (Header, error) {
	if err := checkName(name); err != nil {
		return Header{}, err
	}
	m.Name = name
	if err := m.Validate(); err != nil {
		return Header{}, err
	}

	var buf bytes.Buffer
	h, err := Encode(&buf, m, append(append([]Option{}, s.opts...), opts...)...)
	if err != nil {
		return Header{}, err
	}
	if err := s.blobs.Put(ctx, blobName(name), buf.Bytes()); err != nil {
		return Header{}, fmt.Errorf("save manifest %q: %w", name, err)
	}
	return h, nil
}

// Load reads a manifest by name.
func (s *Store) Load(ctx context.Context, name string) (*Manifest, Header, error) {
	if err := checkName(name); err != nil {
		return nil, Header{}, err
	}
	data, err := s.blobs.Get(ctx, blobName(name))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, Header{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, Header{}, fmt.Errorf("load manifest %q: %w", name, err)
	}

	m, h, err := DecodeWithHeader(bytes.NewReader(data))
	if err != nil {
		return nil, h, fmt.Errorf("load manifest %q: %w", name, err)
	}
	return m, h, nil
}

// List returns the names of all stored manifests starting with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	blobs, err := s.blobs.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(blobs))
	for _, b := range blobs {
		if name, ok := strings.CutSuffix(b, Extension); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// Delete removes a manifest. Deleting a missing manifest is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	return s.blobs.Delete(ctx, blobName(name))
}
