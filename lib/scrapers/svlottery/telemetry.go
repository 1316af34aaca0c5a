package svlottery

import (
	"lotterykiosk-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("scrapers/svlottery")
