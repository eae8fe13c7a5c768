package fsutil

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// DirMode is the mode used for directories created by MakeDirectory.
const DirMode os.FileMode = 0o755

// MakeDirectory creates path and any missing parents.
// An existing directory is not an error.
func MakeDirectory(fsys FileSystem, path string) error {
	info, err := fsys.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return &os.PathError{Op: "mkdir", Path: path, Err: errors.New("exists and is not a directory")}
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return fsys.MkdirAll(path, DirMode)
}

// Files yields every regular file below root whose name ends in ext, in
// lexical order per directory. An empty ext matches every file.
//
// Directory read failures are yielded as ("", err) and the walk continues.
func Files(fsys FileSystem, root, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkFiles(fsys, root, ext, yield)
	}
}

func walkFiles(fsys FileSystem, dir, ext string, yield func(string, error) bool) bool {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return yield("", err)
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if !walkFiles(fsys, path, ext, yield) {
				return false
			}
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		if ext != "" && !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if !yield(path, nil) {
			return false
		}
	}
	return true
}
