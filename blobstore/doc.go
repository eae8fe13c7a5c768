// Package blobstore provides storage abstraction for advkit's persisted
// artifacts (pair manifests).
//
// BlobStore is the interface for reading and writing whole blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local filesystem with atomic writes
//   - minio.Store: MinIO and other S3-compatible servers
//   - s3.Store: Amazon S3 with multipart uploads
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Put(ctx, name, data) error          // Atomic write
//	    Get(ctx, name) ([]byte, error)      // Whole-blob read
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error) // Sorted names
//	}
package blobstore
