package observability

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitorCounters(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	monitor.RecordCheck(true, nil)
	monitor.RecordCheck(false, []string{"Contenido inapropiado detectado"})
	monitor.RecordReport()
	monitor.RecordProviderFailure()

	stats := monitor.Snapshot()
	req.EqualValues(2, stats.ChecksTotal)
	req.EqualValues(1, stats.BlockedTotal)
	req.EqualValues(1, stats.ReportsTotal)
	req.EqualValues(1, stats.ProviderFailures)
	req.Len(stats.RecentDecisions, 2)
	req.False(stats.RecentDecisions[0].Allowed)
}

func TestMonitorRecentDecisionsBounded(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	for i := 0; i < recentDecisionsKept+5; i++ {
		monitor.RecordCheck(true, nil)
	}

	stats := monitor.Snapshot()
	req.Len(stats.RecentDecisions, recentDecisionsKept)
	req.EqualValues(recentDecisionsKept+5, stats.ChecksTotal)
}

func TestMonitorConcurrentRecording(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				monitor.RecordCheck(j%2 == 0, nil)
			}
		}()
	}
	wg.Wait()

	stats := monitor.Snapshot()
	req.EqualValues(400, stats.ChecksTotal)
	req.EqualValues(200, stats.BlockedTotal)
}
