package kiosk

import (
	"lotterykiosk-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("services/kiosk")
