// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("manifests/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	ms := manifest.NewStore(store)
//
// # Features
//
//   - Multipart uploads for large manifests
//   - CRC32C integrity checksums on upload
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints for S3-compatible servers (LocalStack, MinIO)
package s3
