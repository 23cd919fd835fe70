package game

import (
	"math/rand"
	"time"

	"github.com/adubois/neuraforge/internal/util"
)

const (
	demoDraws    = 120
	demoDrawSize = 4 // bytes per 32-bit draw
)

// AppState is the single mutable application record. It is only touched
// from Update, which runs on the game-loop goroutine; the stats tick
// reads it from the same place.
type AppState struct {
	StartTime      time.Time
	Runs           int
	BytesProcessed int64
	LastAction     string
}

// RunDemo executes one synthetic workload pass: a fixed number of seeded
// 32-bit draws folded through the mixer. The seed depends on the wall
// clock and the run counter, so each pass yields a different checksum
// over an identical amount of work. Returns the bytes processed and the
// checksum of this pass.
func (s *AppState) RunDemo(now time.Time) (int, uint32) {
	s.Runs++
	s.LastAction = "run_demo"

	seed := now.Unix() ^ int64(s.Runs)<<8
	rng := rand.New(rand.NewSource(seed))

	var sum uint32
	for i := 0; i < demoDraws; i++ {
		sum ^= util.Mix32(rng.Uint32())
	}

	processed := demoDraws * demoDrawSize
	s.BytesProcessed += int64(processed)
	return processed, sum
}
