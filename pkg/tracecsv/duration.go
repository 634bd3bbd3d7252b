// Parser for the compact duration notation used by the trace dump,
// e.g. "1s500ms", "2ms293µs", "801ns".
package tracecsv

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// shortDurationRe matches the dump's duration notation: optional integer
// seconds, milliseconds, microseconds, and nanoseconds, in that fixed order.
var shortDurationRe = regexp.MustCompile(`^(?:(\d+)s)?(?:(\d+)ms)?(?:(\d+)µs)?(?:(\d+)ns)?$`)

// ParseShortDuration parses a compact duration string into a time.Duration.
// The dump escapes backslashes and the micro sign's UTF-8 bytes, so both
// are unescaped before matching. A string that does not match the grammar
// yields zero; there is no failure path.
func ParseShortDuration(s string) time.Duration {
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\xc2\xb5`, "µ")

	m := shortDurationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	var total time.Duration
	units := []time.Duration{time.Second, time.Millisecond, time.Microsecond, time.Nanosecond}
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0
		}
		total += time.Duration(n) * unit
	}
	return total
}
