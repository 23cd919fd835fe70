package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
	assert.Equal(t, -0.9, Clamp(-2, -0.9, 0.9))
}

func TestFmtBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FmtBytes(tt.in))
	}
}

func TestFmtUptime(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0s"},
		{59, "59s"},
		{60, "1m 0s"},
		{61.9, "1m 1s"},
		{3599, "59m 59s"},
		{3661, "1h 1m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FmtUptime(tt.in))
	}
}

func TestMix32(t *testing.T) {
	assert.Equal(t, uint32(0), Mix32(0))
	assert.Equal(t, uint32(0x42021), Mix32(1))

	// Deterministic.
	assert.Equal(t, Mix32(0xdeadbeef), Mix32(0xdeadbeef))
}
