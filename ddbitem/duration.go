package ddbitem

import (
	"fmt"
	"time"
)

// FormatDuration renders d as "hh:mm:ss[.fraction]", exported for use by
// generated code encoding a single collection element rather than a whole
// item attribute.
func FormatDuration(d time.Duration) string {
	return formatClockDuration(d)
}

// ParseDuration is FormatDuration's inverse, exported for the same reason.
func ParseDuration(s string) (time.Duration, error) {
	return parseClockDuration(s)
}

// formatClockDuration renders d as "hh:mm:ss[.fraction]", the canonical
// encoding named for duration attributes.
func formatClockDuration(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}

	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second

	s := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if d > 0 {
		frac := fmt.Sprintf("%09d", d.Nanoseconds())
		for len(frac) > 1 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}

		s += "." + frac
	}

	if neg {
		s = "-" + s
	}

	return s
}

// parseClockDuration parses the "hh:mm:ss[.fraction]" encoding back into a
// time.Duration.
func parseClockDuration(s string) (time.Duration, error) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var hours, minutes, seconds, nanos int64

	var fracDigits int

	n, err := fmt.Sscanf(s, "%d:%d:%d", &hours, &minutes, &seconds)
	if err != nil || n != 3 {
		return 0, fmt.Errorf("ddbitem: invalid clock duration %q", s)
	}

	if i := indexByte(s, '.'); i >= 0 {
		frac := s[i+1:]
		fracDigits = len(frac)

		if _, err := fmt.Sscanf(frac, "%d", &nanos); err != nil {
			return 0, fmt.Errorf("ddbitem: invalid clock duration fraction %q", s)
		}

		for fracDigits < 9 {
			nanos *= 10
			fracDigits++
		}
	}

	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(nanos)

	if neg {
		total = -total
	}

	return total, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}

	return -1
}
