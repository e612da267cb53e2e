package profiler

import (
	"runtime"
	"slices"
	"time"

	"github.com/Carmen-Shannon/wayfinder/engine/monitoring"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the frames of one reporting interval.
type Stats struct {
	Frames    int
	FPS       float64
	MeanMs    float64
	StdDevMs  float64
	P95Ms     float64
	MaxMs     float64
	HeapMB    float64
	AllocMBps float64
	NumGC     uint32
}

// Profiler tracks frame timing and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	name           string
	now            func() time.Time
	lastTime       time.Time
	lastFrame      time.Time
	updateInterval time.Duration
	frameMs        []float64
	memStats       runtime.MemStats
	readMem        bool
	lastTotalAlloc uint64
	last           Stats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are computed and logged.
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithName sets the label printed in log lines.
func WithName(name string) ProfilerOption {
	return func(p *Profiler) {
		p.name = name
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// WithMemStats toggles reading runtime memory statistics each interval.
func WithMemStats(enabled bool) ProfilerOption {
	return func(p *Profiler) {
		p.readMem = enabled
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		name:           "frame",
		now:            time.Now,
		updateInterval: time.Second,
		readMem:        true,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	p.lastFrame = p.lastTime
	return p
}

// Tick should be called once per frame to track frame timing.
// When the update interval has elapsed it computes Stats and logs them.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	current := p.now()
	p.frameMs = append(p.frameMs, float64(current.Sub(p.lastFrame))/float64(time.Millisecond))
	p.lastFrame = current

	elapsed := current.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	s := summarize(p.frameMs, elapsed)
	if p.readMem {
		runtime.ReadMemStats(&p.memStats)
		s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		s.AllocMBps = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()
		s.NumGC = p.memStats.NumGC
		p.lastTotalAlloc = p.memStats.TotalAlloc
	}

	monitoring.Logf("[Profiler] %s FPS: %.2f | frame: %.2f ± %.2f ms (p95 %.2f, max %.2f) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		p.name, s.FPS, s.MeanMs, s.StdDevMs, s.P95Ms, s.MaxMs, s.HeapMB, s.AllocMBps, s.NumGC)

	p.last = s
	p.frameMs = p.frameMs[:0]
	p.lastTime = current
	return true
}

// Last returns the stats computed at the most recent report.
func (p *Profiler) Last() Stats {
	return p.last
}

// summarize computes timing stats over one interval's frame durations.
func summarize(frameMs []float64, elapsed time.Duration) Stats {
	s := Stats{Frames: len(frameMs)}
	if elapsed > 0 {
		s.FPS = float64(len(frameMs)) / elapsed.Seconds()
	}
	if len(frameMs) == 0 {
		return s
	}
	s.MeanMs, s.StdDevMs = stat.MeanStdDev(frameMs, nil)
	if len(frameMs) < 2 {
		s.StdDevMs = 0
	}
	s.MaxMs = floats.Max(frameMs)
	sorted := slices.Clone(frameMs)
	slices.Sort(sorted)
	s.P95Ms = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	return s
}
