package monitor

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats is a point-in-time host sample.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Monitor samples host CPU and memory usage once per second in the
// background. Readers get the latest snapshot; precision is relaxed,
// this feeds a dashboard widget, nothing else.
type Monitor struct {
	mu   sync.RWMutex
	cur  Stats
	stop chan struct{}
	once sync.Once
}

// Start launches the sampling goroutine.
func Start() *Monitor {
	m := &Monitor{stop: make(chan struct{})}
	go m.loop()
	return m
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.sample()
		}
	}
}

func (m *Monitor) sample() {
	var s Stats
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		s.CPUPercent = pct[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemPercent = vm.UsedPercent
	}
	m.mu.Lock()
	m.cur = s
	m.mu.Unlock()
}

// Snapshot returns the most recent sample.
func (m *Monitor) Snapshot() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Stop shuts the sampler down. Safe to call more than once.
func (m *Monitor) Stop() {
	m.once.Do(func() { close(m.stop) })
}

// Platform describes the host OS for the startup banner.
func Platform() string {
	info, err := host.Info()
	if err != nil {
		return runtime.GOOS
	}
	return fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
}
