package fsutil

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// GroupMode is the mode applied by the group permission helpers:
// read/write/execute for owner and group, read for others.
const GroupMode os.FileMode = 0o774

// PermissionError records a failure to update one path.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("set group permissions on %s: %v", e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// LookupGID resolves a group name or numeric group id.
func LookupGID(group string) (int, error) {
	if gid, err := strconv.Atoi(group); err == nil {
		if gid < 0 {
			return 0, fmt.Errorf("invalid group id %d", gid)
		}
		return gid, nil
	}
	g, err := user.LookupGroup(group)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(g.Gid)
}

// SetGroupPermissions changes the group of path and sets GroupMode.
func SetGroupPermissions(fsys FileSystem, path, group string) error {
	gid, err := LookupGID(group)
	if err != nil {
		return err
	}
	return applyGroup(fsys, path, gid)
}

// SetGroupPermissionsRecursive applies SetGroupPermissions to root and to
// every directory and file below it.
//
// The walk does not stop on failure. Every failure is returned as a
// *PermissionError joined with errors.Join; see PermissionErrors. An
// unresolvable group fails before any path is touched.
func SetGroupPermissionsRecursive(fsys FileSystem, root, group string) error {
	gid, err := LookupGID(group)
	if err != nil {
		return err
	}

	var errs []error
	var walk func(dir string)
	walk = func(dir string) {
		if err := applyGroup(fsys, dir, gid); err != nil {
			errs = append(errs, err)
		}
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			errs = append(errs, &PermissionError{Path: dir, Err: err})
			return
		}
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			if e.IsDir() {
				walk(path)
				continue
			}
			if err := applyGroup(fsys, path, gid); err != nil {
				errs = append(errs, err)
			}
		}
	}
	walk(root)

	return errors.Join(errs...)
}

// PermissionErrors unpacks the failures reported by
// SetGroupPermissionsRecursive.
func PermissionErrors(err error) []*PermissionError {
	if err == nil {
		return nil
	}
	var out []*PermissionError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, PermissionErrors(e)...)
		}
		return out
	}
	var pe *PermissionError
	if errors.As(err, &pe) {
		out = append(out, pe)
	}
	return out
}

func applyGroup(fsys FileSystem, path string, gid int) error {
	if err := fsys.Chown(path, -1, gid); err != nil {
		return &PermissionError{Path: path, Err: err}
	}
	if err := fsys.Chmod(path, GroupMode); err != nil {
		return &PermissionError{Path: path, Err: err}
	}
	return nil
}
