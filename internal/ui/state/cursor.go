package state

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorBy shifts the cursor by delta rows, stopping at either end.
func (l *Level) MoveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

// RestingRow returns the row nearest to percent of the list, used as the
// pivot when a drag opens without a prior selection.
func (l *Level) RestingRow(percent float64) int {
	n := len(l.Items)
	if n == 0 {
		return 0
	}
	row := int(percent / 100 * float64(n))
	if row < 0 {
		return 0
	}
	if row >= n {
		return n - 1
	}
	return row
}
