package events

import (
	"time"

	"github.com/atomicstack/edgemenu/internal/logging"
)

type IndicatorTracer struct{}

var Indicator = IndicatorTracer{}

func (IndicatorTracer) Plan(kind, anchor string, targets []float64, total time.Duration) {
	logging.Trace("indicator.plan", map[string]interface{}{
		"kind":    kind,
		"anchor":  anchor,
		"targets": targets,
		"totalMs": total.Milliseconds(),
	})
}

func (IndicatorTracer) Complete(kind, dominant string) {
	logging.Trace("indicator.complete", map[string]interface{}{"kind": kind, "dominant": dominant})
}

func (IndicatorTracer) Interrupted(kind string) {
	logging.Trace("indicator.interrupted", map[string]interface{}{"kind": kind})
}
