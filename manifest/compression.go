package manifest

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the stable name of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name. The empty string means none.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// minSavings is the ratio above which a compressed payload is discarded.
const minSavings = 0.9

// MaxRawLength is the largest decoded payload accepted by Decode.
const MaxRawLength = 1 << 30

// maxExpansion bounds raw length over stored length for compressed
// payloads. Pair lists compress far below it.
const maxExpansion = 1024

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxRawLength))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the stored payload and the compression actually used.
// Incompressible data falls back to CompressionNone.
func compress(data []byte, c Compression) ([]byte, Compression, error) {
	if c == CompressionNone || len(data) == 0 {
		return data, CompressionNone, nil
	}

	var compressed []byte
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, 0, err
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}

	// n == 0 means lz4 found the block incompressible
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*minSavings {
		return data, CompressionNone, nil
	}
	return compressed, c, nil
}

func decompress(data []byte, c Compression, rawLen uint32) ([]byte, error) {
	switch c {
	case CompressionNone:
		if uint32(len(data)) != rawLen {
			return nil, errors.New("raw payload size mismatch")
		}
		return data, nil
	case CompressionLZ4:
		result := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(data, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != rawLen {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(data, make([]byte, 0, rawLen))
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != rawLen {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
}
