package events

import "github.com/atomicstack/edgemenu/internal/logging"

type DragTracer struct{}

var Drag = DragTracer{}

func (DragTracer) Possible(edge string, x int) {
	logging.Trace("drag.possible", map[string]interface{}{"edge": edge, "x": x})
}

func (DragTracer) Failed(x int) {
	logging.Trace("drag.failed", map[string]interface{}{"x": x})
}

func (DragTracer) Begin(y float64, pivot int) {
	logging.Trace("drag.begin", map[string]interface{}{"y": y, "pivot": pivot})
}

func (DragTracer) Move(y, offset float64, index int) {
	logging.Trace("drag.move", map[string]interface{}{"y": y, "offset": offset, "index": index})
}

func (DragTracer) End(index int) {
	logging.Trace("drag.end", map[string]interface{}{"index": index})
}

func (DragTracer) Cancel(index int) {
	logging.Trace("drag.cancel", map[string]interface{}{"index": index})
}

func (DragTracer) Rejected(err error) {
	if err == nil {
		return
	}
	logging.Trace("drag.rejected", map[string]interface{}{"error": err.Error()})
}
