package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// RecentDecision is one moderation verdict kept for the stats endpoint.
type RecentDecision struct {
	Allowed   bool     `json:"allowed"`
	Reasons   []string `json:"reasons,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// Stats aggregates moderation counters with process health figures.
type Stats struct {
	ChecksTotal      uint64 `json:"checks_total"`
	BlockedTotal     uint64 `json:"blocked_total"`
	ReportsTotal     uint64 `json:"reports_total"`
	ProviderFailures uint64 `json:"provider_failures"`

	AllocMemMb   uint64  `json:"alloc_mem_mb"`
	NumGC        uint32  `json:"num_gc"`
	RSSMb        uint64  `json:"rss_mb"`
	CPUPercent   float64 `json:"cpu_percent"`
	NumGoroutine int     `json:"num_goroutine"`

	RecentDecisions []RecentDecision `json:"recent_decisions"`
}

const recentDecisionsKept = 20

// Monitor collects moderation telemetry. Counter updates are atomic;
// the recent decision list is guarded by the mutex.
type Monitor struct {
	log *slog.Logger

	checksTotal      uint64
	blockedTotal     uint64
	reportsTotal     uint64
	providerFailures uint64

	mu     sync.RWMutex
	recent []RecentDecision
	proc   *process.Process
}

func NewMonitor(log *slog.Logger) *Monitor {
	// Process handle lookup can fail in exotic sandboxes; stats then
	// simply omit the process figures.
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process stats unavailable", "error", err)
	}
	return &Monitor{
		log:    log,
		recent: make([]RecentDecision, 0, recentDecisionsKept),
		proc:   proc,
	}
}

// RecordCheck registers one moderation verdict.
func (m *Monitor) RecordCheck(allowed bool, reasons []string) {
	atomic.AddUint64(&m.checksTotal, 1)
	if !allowed {
		atomic.AddUint64(&m.blockedTotal, 1)
	}

	decision := RecentDecision{
		Allowed:   allowed,
		Reasons:   reasons,
		Timestamp: time.Now().Format("15:04:05"),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.recent = append([]RecentDecision{decision}, m.recent...)
	if len(m.recent) > recentDecisionsKept {
		m.recent = m.recent[:recentDecisionsKept]
	}
}

func (m *Monitor) RecordReport() {
	atomic.AddUint64(&m.reportsTotal, 1)
}

func (m *Monitor) RecordProviderFailure() {
	atomic.AddUint64(&m.providerFailures, 1)
}

// Snapshot returns the current counters plus memory and process figures.
func (m *Monitor) Snapshot() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := Stats{
		ChecksTotal:      atomic.LoadUint64(&m.checksTotal),
		BlockedTotal:     atomic.LoadUint64(&m.blockedTotal),
		ReportsTotal:     atomic.LoadUint64(&m.reportsTotal),
		ProviderFailures: atomic.LoadUint64(&m.providerFailures),
		AllocMemMb:       mem.Alloc / 1024 / 1024,
		NumGC:            mem.NumGC,
		NumGoroutine:     runtime.NumGoroutine(),
	}

	if m.proc != nil {
		if memInfo, err := m.proc.MemoryInfo(); err == nil {
			stats.RSSMb = memInfo.RSS / 1024 / 1024
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	stats.RecentDecisions = append([]RecentDecision(nil), m.recent...)

	return stats
}
