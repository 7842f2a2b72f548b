package events

import "github.com/atomicstack/edgemenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(selected string) {
	logging.Trace("app.exit", map[string]interface{}{"selected": selected})
}
