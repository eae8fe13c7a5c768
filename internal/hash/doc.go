// Package hash provides the checksums used when uploading manifests.
//
// S3 verifies uploads against a CRC32-Castagnoli (CRC32C) checksum sent as
// the base64 encoding of its big-endian bytes:
//
//	input.ChecksumCRC32C = aws.String(hash.CRC32CBase64(data))
package hash
