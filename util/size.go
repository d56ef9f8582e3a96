// Package util provides shared helpers for the blockpack CLI and library.
package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSizeFormat is returned when a size string cannot be parsed.
var ErrInvalidSizeFormat = errors.New("invalid size format")

// sizeUnits is ordered longest-suffix-first so that "KB" is never consumed
// as a bare "B".
var sizeUnits = []struct {
	suffix     string
	multiplier float64
}{
	{"TB", 1 << 40},
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize converts a human size string such as "100KB", "1.5MB" or "2GB"
// to a byte count. A plain number is taken as bytes. Units are binary
// (1KB = 1024 bytes) and case-insensitive.
func ParseSize(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidSizeFormat)
	}

	for _, u := range sizeUnits {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, u.suffix)), 64)
		if err != nil {
			break
		}
		return int64(number*u.multiplier + 0.5), nil
	}

	// Plain number, assume bytes.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, s)
}

// FormatSize renders a byte count as a short human string, e.g. "512B",
// "97.7KB", "1.9MB".
func FormatSize(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d%s", int64(size), units[unit])
	}
	return fmt.Sprintf("%.1f%s", size, units[unit])
}
