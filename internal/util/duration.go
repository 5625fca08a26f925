package util

import (
	"fmt"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// ParseGoDuration parses Go duration syntax extended with days (d) and
// weeks (w), e.g. "1h30m", "2d", "1w2d3h", "500us". Negative values are
// rejected.
func ParseGoDuration(s string) (time.Duration, error) {
	d, err := str2duration.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}
