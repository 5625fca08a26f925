// Package input reads duration expressions line by line from files or
// stdin, decompressing gzip, zstd and xz transparently.
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes caps a single line; longer lines fail the scan.
const maxLineBytes = 1024 * 1024

// Line is one meaningful line of an input source.
type Line struct {
	Source string // file name, or "-" for stdin
	Number int    // 1-based line number
	Text   string // trimmed line text
}

// Stats describes what a call to Each consumed.
type Stats struct {
	Compression Compression
	Bytes       int64 // raw bytes read from the source, before decompression
	Lines       int   // lines handed to the callback
}

// Each calls fn for every non-blank line of the named source that is not a
// '#' comment. The name "-" reads stdin. Cancellation of ctx is checked
// between lines.
func Each(ctx context.Context, name string, stdin io.Reader, fn func(Line) error) (Stats, error) {
	var r io.Reader
	if name == "-" {
		r = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	counted := &countingReader{r: r}
	dec, kind, err := Decompress(counted)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", name, err)
	}
	defer dec.Close()

	stats := Stats{Compression: kind}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			stats.Bytes = counted.n
			return stats, err
		}
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		stats.Lines++
		if err := fn(Line{Source: name, Number: n, Text: text}); err != nil {
			stats.Bytes = counted.n
			return stats, err
		}
	}
	stats.Bytes = counted.n
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("%s: read error: %w", name, err)
	}
	return stats, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
