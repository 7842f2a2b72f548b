package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/edgemenu/internal/menu"
)

// SetQuery updates the type-ahead query and returns the best matching row,
// or -1 when nothing matches.
func (l *Level) SetQuery(query string, cursor int) int {
	l.Query = query
	runes := []rune(l.Query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.QueryCursor = cursor
	l.Matches = MatchIndices(l.Items, query)
	if strings.TrimSpace(query) == "" || len(l.Matches) == 0 {
		return -1
	}
	return BestMatchIndex(l.Items, query)
}

// ClearQuery drops the query and match highlights.
func (l *Level) ClearQuery() {
	l.Query = ""
	l.QueryCursor = 0
	l.Matches = nil
}

// QueryCursorPos returns the rune offset of the query cursor.
func (l *Level) QueryCursorPos() int {
	runes := []rune(l.Query)
	if l.QueryCursor < 0 {
		return 0
	}
	if l.QueryCursor > len(runes) {
		return len(runes)
	}
	return l.QueryCursor
}

// InsertQueryText inserts text at the query cursor and returns the best
// match as SetQuery does. ok is false when nothing was inserted.
func (l *Level) InsertQueryText(text string) (best int, ok bool) {
	insert := []rune(text)
	if len(insert) == 0 {
		return -1, false
	}
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	return l.SetQuery(string(updated), pos+len(insert)), true
}

// DeleteQueryRuneBackward deletes a rune before the query cursor.
func (l *Level) DeleteQueryRuneBackward() (best int, ok bool) {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return -1, false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	return l.SetQuery(string(updated), pos-1), true
}

// DeleteQueryWordBackward deletes the word preceding the cursor.
func (l *Level) DeleteQueryWordBackward() (best int, ok bool) {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return -1, false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	return l.SetQuery(string(updated), i), true
}

// MatchIndices returns the rows whose label or ID fuzzily matches query.
func MatchIndices(items []menu.Item, query string) map[int]struct{} {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	matches := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, menu.Labels(items)) {
		matches[rank.OriginalIndex] = struct{}{}
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.ID), lower) {
			matches[i] = struct{}{}
		}
	}
	return matches
}

// BestMatchIndex returns the best index for the query among the provided items.
func BestMatchIndex(items []menu.Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		if len(items) == 0 {
			return -1
		}
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Title(), trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Title()), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.ID), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Title()), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, menu.Labels(items))
	if len(ranks) == 0 {
		if len(items) == 0 {
			return -1
		}
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
