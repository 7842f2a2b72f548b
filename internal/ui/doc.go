// Package ui contains the Bubble Tea program that presents the pull-out menu.
// The Model type focuses on message orchestration while the drag tracker and
// indicator animator own all of the interaction math.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (keys, mouse, resize, animation frames).
//   - A left press within the edge margin of an enabled border, or on the
//     indicator's hit zone, opens a drag: the tracker begins at the press row
//     pivoting on the highlighted item and the animator plans the reveal.
//     Motion events call Tracker.Move; release ends the drag and plans the
//     restore. Keyboard drags ([ and ]) feed the same calls with a virtual
//     pointer.
//   - Plans are executed by animation.Player, one frameMsg per tick. Frames
//     from a superseded plan are ignored by generation.
//
// Errors from the tracker or the animator abort the interaction: the session
// is cancelled, the indicator is restored and the error is shown in the status
// line. Nothing in this package panics on bad geometry.
package ui
