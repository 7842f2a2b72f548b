package theme

import (
	"testing"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

func TestDefaultAppearanceScalars(t *testing.T) {
	a := NewDefaultAppearance()
	w, h := a.Size()
	if w != 2 || h != 1 {
		t.Fatalf("expected 2x1, got %dx%d", w, h)
	}
	if a.BorderMargin() != 1 {
		t.Fatalf("expected margin 1, got %v", a.BorderMargin())
	}
	if a.BounceOffsets() != (geometry.BounceOffsets{From: 2, To: 1}) {
		t.Fatalf("unexpected bounce %+v", a.BounceOffsets())
	}
}

func TestDefaultAppearanceShapeFacesAwayFromEdge(t *testing.T) {
	a := NewDefaultAppearance()
	near := a.Shape(geometry.Near, Frame{Width: 3, Height: 2})
	if len(near) != 2 || near[0] != "██◗" {
		t.Fatalf("unexpected near shape %q", near)
	}
	far := a.Shape(geometry.Far, Frame{Width: 3, Height: 1})
	if len(far) != 1 || far[0] != "◖██" {
		t.Fatalf("unexpected far shape %q", far)
	}
	if a.Shape(geometry.Near, Frame{}) != nil {
		t.Fatalf("expected nil shape for empty frame")
	}
}

func TestDefaultAppearanceIconRespectsMargins(t *testing.T) {
	a := NewDefaultAppearance()
	a.Icon = "≡"
	far := a.Shape(geometry.Far, Frame{Width: 3, Height: 1})
	if far[0] != "◖≡█" {
		t.Fatalf("expected icon after the far cap, got %q", far[0])
	}
	near := a.Shape(geometry.Near, Frame{Width: 3, Height: 1})
	if near[0] != "≡█◗" {
		t.Fatalf("expected icon at the near side, got %q", near[0])
	}
}
