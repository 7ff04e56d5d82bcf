package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Profiler tracks render frame rate, control commit rate and memory
// statistics, and logs them at a fixed interval. Tick is called by the render
// thread and Commit by the tick thread.
type Profiler struct {
	mu sync.Mutex

	logger         *log.Logger
	now            func() time.Time
	updateInterval time.Duration
	lastTime       time.Time

	frameCount  int
	commitCount int
	changeCount int

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// Stats is one reporting interval.
type Stats struct {
	FPS         float64
	CommitsPS   float64
	Changes     int
	HeapMB      float64
	AllocRateMB float64
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
	SysMB       float64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - interval: reporting interval (values <= 0 keep the 1 second default)
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithLogger sets the destination for stats lines.
//
// Parameters:
//   - logger: the logger (nil keeps log.Default())
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock overrides the time source.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
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
		logger:         log.Default(),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Commit records one controls commit.
//
// Parameters:
//   - changed: whether the commit moved the camera
func (p *Profiler) Commit(changed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.commitCount++
	if changed {
		p.changeCount++
	}
}

// Tick should be called once per render frame. Logs statistics when the
// update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	s := p.collect(elapsed)
	p.logger.Printf("[Profiler] FPS: %.2f | Commits: %.2f/s (%d changed) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		s.FPS, s.CommitsPS, s.Changes, s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.MaxPauseUs, s.SysMB)

	p.frameCount = 0
	p.commitCount = 0
	p.changeCount = 0
	p.lastTime = currentTime
	return true
}

// collect computes the interval's stats. Caller must hold the mutex.
func (p *Profiler) collect(elapsed time.Duration) Stats {
	seconds := elapsed.Seconds()
	s := Stats{
		FPS:       float64(p.frameCount) / seconds,
		CommitsPS: float64(p.commitCount) / seconds,
		Changes:   p.changeCount,
	}

	runtime.ReadMemStats(&p.memStats)
	s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
	s.SysMB = float64(p.memStats.Sys) / 1024 / 1024
	s.AllocRateMB = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / seconds

	// PauseNs is a circular buffer of the last 256 GC pauses.
	s.GCCount = p.memStats.NumGC
	if s.GCCount > 0 {
		s.LastPauseUs = p.memStats.PauseNs[(s.GCCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if s.GCCount-startIdx > 256 {
			startIdx = s.GCCount - 256
		}
		for i := startIdx; i < s.GCCount; i++ {
			s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return s
}
