package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOscillator(t *testing.T) {
	buf := oscillator(440, 1000)
	require.Len(t, buf, 1000)

	assert.Zero(t, buf[0]) // sine starts at phase 0
	for _, v := range buf {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestApplyEnvelopeRampsEdges(t *testing.T) {
	buf := make([]float64, durationToSamples(100*time.Millisecond))
	for i := range buf {
		buf[i] = 1.0
	}
	applyEnvelope(buf, 10*time.Millisecond, 20*time.Millisecond)

	assert.Zero(t, buf[0], "attack starts from silence")
	assert.InDelta(t, 1.0, buf[len(buf)/2], 1e-9, "sustain untouched")
	assert.Less(t, buf[len(buf)-1], 0.01, "release ends near silence")
}

func TestBufferStreamerDrainsOnce(t *testing.T) {
	s := &bufferStreamer{buf: make([]float64, 10)}
	out := make([][2]float64, 4)

	n, ok := s.Stream(out)
	assert.Equal(t, 4, n)
	assert.True(t, ok)

	n, ok = s.Stream(out)
	assert.Equal(t, 4, n)
	assert.True(t, ok)

	n, ok = s.Stream(out)
	assert.Equal(t, 2, n)
	assert.True(t, ok)

	n, ok = s.Stream(out)
	assert.Zero(t, n)
	assert.False(t, ok)

	assert.NoError(t, s.Err())
}

func TestBufferStreamerIsStereoOfMono(t *testing.T) {
	s := &bufferStreamer{buf: []float64{0.5, -0.25}}
	out := make([][2]float64, 2)
	n, _ := s.Stream(out)
	require.Equal(t, 2, n)
	assert.Equal(t, out[0][0], out[0][1])
	assert.Equal(t, 0.5, out[0][0])
	assert.Equal(t, -0.25, out[1][0])
}

func TestGeneratedTonesStayInRange(t *testing.T) {
	for name, buf := range map[string][]float64{
		"blip":  generateBlip(),
		"chime": generateChime(),
		"tick":  generateTick(),
	} {
		require.NotEmptyf(t, buf, "%s", name)
		for _, v := range buf {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}
