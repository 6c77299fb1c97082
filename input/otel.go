package input

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/bezier-anim/input"

// meter returns the global meter, a no-op until a provider is installed
func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
