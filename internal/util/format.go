package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Formats lists the values accepted by FormatDuration.
var Formats = []string{"text", "human", "seconds", "ms", "ns"}

// FormatDuration renders d for CLI output.
//
//	text     Go notation, 1h2m3s
//	human    comma-grouped seconds, 3,723.5 seconds
//	seconds  plain decimal seconds, 3723.5
//	ms, ns   integer milliseconds or nanoseconds
func FormatDuration(d time.Duration, format string) (string, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return d.String(), nil
	case "human":
		return humanize.CommafWithDigits(d.Seconds(), 3) + " seconds", nil
	case "seconds":
		return strconv.FormatFloat(d.Seconds(), 'f', -1, 64), nil
	case "ms":
		return strconv.FormatInt(d.Milliseconds(), 10), nil
	case "ns":
		return strconv.FormatInt(int64(d), 10), nil
	default:
		return "", fmt.Errorf("unsupported output format %q, expected one of: %s", format, strings.Join(Formats, ", "))
	}
}

// HumanReadableBytes formats a byte count with IEC units, e.g. "1.5 MiB".
func HumanReadableBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
