package events

import "github.com/atomicstack/edgemenu/internal/logging"

type UITracer struct{}

type QueryTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Query  = QueryTracer{}
	Action = ActionTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) KeyboardDrag(edge string, row int) {
	logging.Trace("ui.keyboard-drag", map[string]interface{}{"edge": edge, "row": row})
}

func (UITracer) Select(id, label string) {
	logging.Trace("ui.select", map[string]interface{}{"id": id, "label": label})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (QueryTracer) Append(query string) {
	logging.Trace("query.append", map[string]interface{}{"query": query})
}

func (QueryTracer) Backspace(query string) {
	logging.Trace("query.backspace", map[string]interface{}{"query": query})
}

func (QueryTracer) Match(query string, index int) {
	logging.Trace("query.match", map[string]interface{}{"query": query, "index": index})
}
