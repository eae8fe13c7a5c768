// Package fsutil provides filesystem abstractions for testability and fault
// injection, plus the directory and permission helpers used around
// experiment outputs.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open file with read/write/sync capabilities
//   - [FileSystem]: Abstracts filesystem operations (open, remove, chown, etc.)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O and permission errors)
//
// # Helpers
//
//	err := fsutil.MakeDirectory(fsutil.Default, "out/pairs")
//
//	for path, err := range fsutil.Files(fsutil.Default, "out", ".npy") {
//	    ...
//	}
//
//	// Every failure is reported; the walk never stops early.
//	err := fsutil.SetGroupPermissionsRecursive(fsutil.Default, "out", "ml-lab")
//
// This package does NOT take context.Context parameters. Local filesystem
// calls are not interruptible at the syscall level.
package fsutil
