package state

import (
	"testing"

	"github.com/atomicstack/edgemenu/internal/menu"
)

func TestSetQueryHighlightsWithoutFiltering(t *testing.T) {
	level := NewLevel(menu.DefaultItems())
	best := level.SetQuery("sa", 2)
	if best != 2 {
		t.Fatalf("expected best match Save at 2, got %d", best)
	}
	if level.Len() != len(menu.DefaultItems()) {
		t.Fatalf("expected rows to be kept, got %d", level.Len())
	}
	if !level.IsMatch(2) {
		t.Fatalf("expected Save highlighted")
	}
	if level.IsMatch(5) {
		t.Fatalf("did not expect Quit highlighted")
	}
}

func TestSetQueryWithoutMatchReturnsMinusOne(t *testing.T) {
	level := newTestLevel("alpha", "beta")
	if best := level.SetQuery("zzz", 3); best != -1 {
		t.Fatalf("expected -1, got %d", best)
	}
	if len(level.Matches) != 0 {
		t.Fatalf("expected no matches, got %v", level.Matches)
	}
}

func TestInsertAndDeleteQueryText(t *testing.T) {
	level := newTestLevel("alpha", "beta", "gamma")

	best, ok := level.InsertQueryText("be")
	if !ok || best != 1 {
		t.Fatalf("expected beta at 1, got %d/%v", best, ok)
	}
	if level.Query != "be" || level.QueryCursor != 2 {
		t.Fatalf("unexpected query state %q/%d", level.Query, level.QueryCursor)
	}

	level.QueryCursor = 0
	if _, ok := level.InsertQueryText("g"); !ok {
		t.Fatal("expected insert at start to succeed")
	}
	if level.Query != "gbe" {
		t.Fatalf("expected gbe, got %q", level.Query)
	}

	level.QueryCursor = len([]rune(level.Query))
	if _, ok := level.DeleteQueryRuneBackward(); !ok || level.Query != "gb" {
		t.Fatalf("expected gb after backspace, got %q", level.Query)
	}
	if _, ok := level.InsertQueryText(""); ok {
		t.Fatal("expected empty insert to be ignored")
	}
}

func TestDeleteQueryWordBackward(t *testing.T) {
	level := newTestLevel("open recent")
	level.SetQuery("open rec", len("open rec"))
	if _, ok := level.DeleteQueryWordBackward(); !ok {
		t.Fatal("expected word delete")
	}
	if level.Query != "open " {
		t.Fatalf("expected %q, got %q", "open ", level.Query)
	}
	level.ClearQuery()
	if _, ok := level.DeleteQueryWordBackward(); ok {
		t.Fatal("expected nothing to delete")
	}
	if level.Matches != nil {
		t.Fatalf("expected matches cleared")
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	items := []menu.Item{
		{ID: "reset", Label: "Reset"},
		{ID: "set", Label: "Set"},
		{ID: "settings", Label: "Settings"},
	}
	if idx := BestMatchIndex(items, "set"); idx != 1 {
		t.Fatalf("expected exact match at 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "sett"); idx != 2 {
		t.Fatalf("expected prefix match at 2, got %d", idx)
	}
	if idx := BestMatchIndex(nil, ""); idx != -1 {
		t.Fatalf("expected -1 for empty items, got %d", idx)
	}
}
