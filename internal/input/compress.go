package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies how an input stream is encoded.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
	Xz
)

func (c Compression) String() string {
	switch c {
	case Plain:
		return "plain"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Xz:
		return "xz"
	default:
		return "unknown"
	}
}

var magics = []struct {
	kind  Compression
	magic []byte
}{
	{Gzip, []byte{0x1f, 0x8b}},
	{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{Xz, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
}

// Detect sniffs the compression format from the first bytes of br without
// consuming them.
func Detect(br *bufio.Reader) (Compression, error) {
	head, err := br.Peek(6)
	if err != nil && !errors.Is(err, io.EOF) {
		return Plain, err
	}
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.kind, nil
		}
	}
	return Plain, nil
}

// Decompress wraps r so that reads return decoded text. The returned closer
// releases decoder state; it does not close r.
func Decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	kind, err := Detect(br)
	if err != nil {
		return nil, Plain, fmt.Errorf("failed to read input header: %w", err)
	}

	switch kind {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, kind, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return zr, kind, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, kind, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return zr.IOReadCloser(), kind, nil
	case Xz:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, kind, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return io.NopCloser(xr), kind, nil
	default:
		return io.NopCloser(br), kind, nil
	}
}
