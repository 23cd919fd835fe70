package util

import "fmt"

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// FmtBytes renders a byte count in human-readable form ("1023 B", "1.00 KB").
func FmtBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	units := []string{"KB", "MB", "GB", "TB"}
	v := float64(n)
	i := 0
	for v >= 1024.0 && i < len(units)-1 {
		v /= 1024.0
		i++
	}
	return fmt.Sprintf("%.2f %s", v, units[i])
}

// FmtUptime renders a duration in seconds as "59s", "1m 0s" or "1h 1m".
func FmtUptime(seconds float64) string {
	s := int(seconds)
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	m := s / 60
	s = s % 60
	if m < 60 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := m / 60
	m = m % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// Mix32 is a simple xorshift-style mixer (not crypto).
func Mix32(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}
