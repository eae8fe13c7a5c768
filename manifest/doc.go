// Package manifest persists pair sets as reproducibility records.
//
// # Overview
//
// A Manifest captures everything needed to reproduce or audit a generated
// pair set: the seed (when known), the class count, the positive and negative
// scores and the index pairs themselves.
//
// # Binary Format
//
//	Header:
//	  Magic       (4 bytes) - "ADVK"
//	  Version     (4 bytes) - Format version (currently 1)
//	  Compression (1 byte)  - 0 none, 1 lz4, 2 zstd
//	  Codec       (string)  - Payload codec name ("go-json", "json")
//	  Checksum    (4 bytes) - CRC32-IEEE of the stored payload
//	  RawLength   (4 bytes) - Payload length before compression
//	  Length      (4 bytes) - Stored payload length in bytes
//
//	Payload:
//	  Codec-encoded Manifest, optionally compressed.
//
// Integers are little-endian. Strings are length-prefixed (2-byte length + bytes).
// When compression saves less than 10% the payload is stored raw and the
// compression byte is 0.
//
// # Storage
//
// Store saves manifests as "<name>.advk" blobs on any blobstore.BlobStore.
package manifest
