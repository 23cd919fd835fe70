package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)
	masterGain = 0.30
)

// Sound identifies a synthesized feedback tone.
type Sound int

const (
	SoundBlip Sound = iota // run-demo confirmation
	SoundChime             // credits opening
	SoundTick              // navigation click
	soundCount
)

// Engine plays short synthesized tones through the speaker. There are no
// audio assets; every buffer is generated once at startup. If the
// speaker cannot be initialized the engine stays silent instead of
// failing, so the UI never depends on a working audio device.
type Engine struct {
	silent bool
	cache  [soundCount][]float64
}

// NewEngine initializes the speaker and pre-generates all tones.
func NewEngine() *Engine {
	e := &Engine{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		logrus.WithError(err).Warn("speaker unavailable, audio disabled")
		e.silent = true
		return e
	}
	e.cache[SoundBlip] = generateBlip()
	e.cache[SoundChime] = generateChime()
	e.cache[SoundTick] = generateTick()
	return e
}

// Play queues the tone on the speaker mixer. Never blocks the game loop.
func (e *Engine) Play(s Sound) {
	if e.silent || s < 0 || s >= soundCount {
		return
	}
	buf := e.cache[s]
	if len(buf) == 0 {
		return
	}
	speaker.Play(&bufferStreamer{buf: buf})
}

// bufferStreamer streams a mono float buffer to both channels once.
type bufferStreamer struct {
	buf []float64
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

// --- tone generation (unity gain, scaled at the end) ---

func durationToSamples(d time.Duration) int {
	return sampleRate.N(d)
}

// oscillator generates a sine at freq for the given sample count.
func oscillator(freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phaseInc := freq / float64(sampleRate)
	phase := 0.0
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope shapes the buffer with a linear attack and release.
func applyEnvelope(buf []float64, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

func mixInto(a, b []float64, bScale float64) []float64 {
	if len(b) > len(a) {
		extended := make([]float64, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func scale(buf []float64, gain float64) []float64 {
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

func generateBlip() []float64 {
	buf := oscillator(660, durationToSamples(90*time.Millisecond))
	applyEnvelope(buf, 5*time.Millisecond, 60*time.Millisecond)
	return scale(buf, masterGain)
}

func generateChime() []float64 {
	n := durationToSamples(260 * time.Millisecond)

	fund := oscillator(880, n)
	applyEnvelope(fund, 8*time.Millisecond, 200*time.Millisecond)

	over := oscillator(1760, n)
	applyEnvelope(over, 8*time.Millisecond, 120*time.Millisecond)

	return scale(mixInto(fund, over, 0.3/0.7), masterGain)
}

func generateTick() []float64 {
	buf := oscillator(440, durationToSamples(40*time.Millisecond))
	applyEnvelope(buf, 2*time.Millisecond, 30*time.Millisecond)
	return scale(buf, masterGain)
}
