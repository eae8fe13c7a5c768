package manifest

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/hupe1980/advkit/codec"
	"github.com/hupe1980/advkit/internal/conv"
)

var binaryMagic = [4]byte{'A', 'D', 'V', 'K'}

// fixed part of the header around the codec string
const (
	headerPrefixSize = 4 + 4 + 1 // magic, version, compression
	headerSuffixSize = 4 + 4 + 4 // checksum, raw length, length
)

// Header describes how a manifest payload is stored.
type Header struct {
	Version     uint32
	Compression Compression
	Codec       string
	Checksum    uint32
	RawLength   uint32
	Length      uint32
}

// Option configures Encode.
type Option func(*encodeOptions)

type encodeOptions struct {
	codec       codec.Codec
	compression Compression
}

// WithCodec sets the payload codec. Defaults to codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *encodeOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithCompression sets the payload compression. Defaults to ZSTD.
func WithCompression(c Compression) Option {
	return func(o *encodeOptions) { o.compression = c }
}

// Encode writes m to w in binary format and returns the header written.
func Encode(w io.Writer, m *Manifest, optFns ...Option) (Header, error) {
	opts := encodeOptions{codec: codec.Default, compression: CompressionZSTD}
	for _, fn := range optFns {
		fn(&opts)
	}

	if m.Version == 0 {
		m.Version = CurrentVersion
	}
	raw, err := opts.codec.Marshal(m)
	if err != nil {
		return Header{}, fmt.Errorf("encode manifest: %w", err)
	}
	rawLen, err := conv.IntToUint32(len(raw))
	if err != nil {
		return Header{}, fmt.Errorf("manifest payload: %w", err)
	}
	if rawLen > MaxRawLength {
		return Header{}, fmt.Errorf("%w: raw length %d exceeds %d", ErrInvalidLength, rawLen, MaxRawLength)
	}

	payload, used, err := compress(raw, opts.compression)
	if err != nil {
		return Header{}, fmt.Errorf("compress manifest: %w", err)
	}

	h := Header{
		Version:     CurrentVersion,
		Compression: used,
		Codec:       opts.codec.Name(),
		Checksum:    crc32.ChecksumIEEE(payload),
		RawLength:   rawLen,
		Length:      uint32(len(payload)), // compress never grows the payload
	}

	pb := newPayloadBuffer(make([]byte, 0, headerPrefixSize+2+len(h.Codec)+headerSuffixSize))
	pb.buf = append(pb.buf, binaryMagic[:]...)
	pb.writeUint32(h.Version)
	pb.writeUint8(uint8(h.Compression))
	pb.writeString(h.Codec)
	pb.writeUint32(h.Checksum)
	pb.writeUint32(h.RawLength)
	pb.writeUint32(h.Length)
	if pb.err != nil {
		return Header{}, pb.err
	}

	if _, err := w.Write(pb.buf); err != nil {
		return Header{}, err
	}
	if _, err := w.Write(payload); err != nil {
		return Header{}, err
	}
	return h, nil
}

// ReadHeader reads and checks the header, leaving r at the payload.
func ReadHeader(r io.Reader) (Header, error) {
	prefix := make([]byte, headerPrefixSize+2)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return Header{}, err
	}
	if [4]byte(prefix[0:4]) != binaryMagic {
		return Header{}, fmt.Errorf("%w: %x", ErrInvalidMagic, prefix[0:4])
	}

	var h Header
	h.Version = binary.LittleEndian.Uint32(prefix[4:8])
	if h.Version != CurrentVersion {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	h.Compression = Compression(prefix[8])

	rest := make([]byte, int(binary.LittleEndian.Uint16(prefix[9:11]))+headerSuffixSize)
	if _, err := io.ReadFull(r, rest); err != nil {
		return Header{}, err
	}
	n := len(rest) - headerSuffixSize
	h.Codec = string(rest[:n])

	pb := newPayloadBuffer(rest)
	pb.pos = n
	h.Checksum = pb.readUint32()
	h.RawLength = pb.readUint32()
	h.Length = pb.readUint32()
	return h, pb.err
}

// Decode reads a manifest written by Encode.
func Decode(r io.Reader) (*Manifest, error) {
	m, _, err := DecodeWithHeader(r)
	return m, err
}

// DecodeWithHeader reads a manifest and also returns its header.
func DecodeWithHeader(r io.Reader) (*Manifest, Header, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, Header{}, err
	}

	c, ok := codec.ByName(h.Codec)
	if !ok {
		return nil, h, fmt.Errorf("%w: %q", ErrUnknownCodec, h.Codec)
	}

	if err := checkLengths(h); err != nil {
		return nil, h, err
	}

	// the payload grows with the bytes actually present, never with h.Length
	payload, err := io.ReadAll(io.LimitReader(r, int64(h.Length)))
	if err != nil {
		return nil, h, err
	}
	if len(payload) != int(h.Length) {
		return nil, h, io.ErrUnexpectedEOF
	}
	if crc32.ChecksumIEEE(payload) != h.Checksum {
		return nil, h, ErrChecksumMismatch
	}

	raw, err := decompress(payload, h.Compression, h.RawLength)
	if err != nil {
		return nil, h, fmt.Errorf("decompress manifest: %w", err)
	}

	var m Manifest
	if err := c.Unmarshal(raw, &m); err != nil {
		return nil, h, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Version != CurrentVersion {
		return nil, h, fmt.Errorf("%w: payload version %d", ErrUnsupportedVersion, m.Version)
	}
	return &m, h, nil
}

// checkLengths bounds the decoded size before anything is allocated for it.
func checkLengths(h Header) error {
	if h.RawLength > MaxRawLength {
		return fmt.Errorf("%w: raw length %d exceeds %d", ErrInvalidLength, h.RawLength, MaxRawLength)
	}
	switch h.Compression {
	case CompressionNone:
		if h.RawLength != h.Length {
			return fmt.Errorf("%w: raw length %d, stored length %d", ErrInvalidLength, h.RawLength, h.Length)
		}
	case CompressionLZ4, CompressionZSTD:
		if uint64(h.RawLength) > uint64(h.Length)*maxExpansion {
			return fmt.Errorf("%w: raw length %d from %d stored bytes", ErrInvalidLength, h.RawLength, h.Length)
		}
	}
	return nil
}

type payloadBuffer struct {
	buf []byte
	pos int
	err error
}

func newPayloadBuffer(b []byte) *payloadBuffer {
	return &payloadBuffer{buf: b}
}

func (p *payloadBuffer) writeUint8(v uint8) {
	if p.err != nil {
		return
	}
	p.buf = append(p.buf, v)
}

func (p *payloadBuffer) writeUint32(v uint32) {
	if p.err != nil {
		return
	}
	p.buf = binary.LittleEndian.AppendUint32(p.buf, v)
}

func (p *payloadBuffer) writeString(s string) {
	if p.err != nil {
		return
	}
	n, err := conv.IntToUint16(len(s))
	if err != nil {
		p.err = fmt.Errorf("string too long: %w", err)
		return
	}
	p.buf = binary.LittleEndian.AppendUint16(p.buf, n)
	p.buf = append(p.buf, s...)
}

func (p *payloadBuffer) readUint32() uint32 {
	if p.err != nil {
		return 0
	}
	if p.pos+4 > len(p.buf) {
		p.err = io.ErrUnexpectedEOF
		return 0
	}
	v := binary.LittleEndian.Uint32(p.buf[p.pos:])
	p.pos += 4
	return v
}
