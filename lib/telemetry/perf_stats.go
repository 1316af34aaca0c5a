package telemetry

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var meter = otel.Meter("go.perf_stats")
var cpuGauge, _ = meter.Float64Gauge("cpu_usage")
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

// InstrumentPerfStats samples process cpu usage and goroutine count
// every 5 seconds until the context is cancelled.
func InstrumentPerfStats(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Second * 5)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			percents, err := cpu.PercentWithContext(ctx, 0, false)
			if err == nil && len(percents) > 0 {
				cpuGauge.Record(ctx, percents[0])
			}
			goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
		}
	}()
}
