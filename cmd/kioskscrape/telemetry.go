package main

import (
	"context"
	"log/slog"
	"os"

	"lotterykiosk-backend/lib/serviceutil"
	"lotterykiosk-backend/lib/telemetry"
)

// telemetry is optional for a one-shot scrape: a missing
// telemetry.json5 just turns it off.
func initTelemetry(ctx context.Context, serviceName string) func() {
	t, err := telemetry.SetupFromEnv(ctx, serviceName)
	if os.IsNotExist(err) {
		slog.Debug("no telemetry.json5 found, telemetry disabled")
		return func() {}
	}
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	telemetry.InstrumentPerfStats(ctx)

	return func() {
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shut down telemetry", "err", err)
		}
	}
}
