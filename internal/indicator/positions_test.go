package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/atomicstack/edgemenu/internal/geometry"
)

var goldenBounce = geometry.BounceOffsets{From: 15, To: 5}

func TestComputePositionsNearGolden(t *testing.T) {
	got := ComputePositions(320, 50, geometry.Near, 5, goldenBounce)
	want := PositionSet{
		Start:       -5,
		StartBounce: geometry.BounceOffsets{From: -20, To: 0},
		End:         geometry.BounceOffsets{From: 285, To: 265},
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputePositionsFarGolden(t *testing.T) {
	got := ComputePositions(320, 50, geometry.Far, 5, goldenBounce)
	want := PositionSet{
		Start:       5,
		StartBounce: geometry.BounceOffsets{From: 20, To: 0},
		End:         geometry.BounceOffsets{From: -285, To: -265},
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputePositionsMirrorsAcrossEdges(t *testing.T) {
	cases := []struct {
		host, width, margin float64
		bounce              geometry.BounceOffsets
	}{
		{320, 50, 5, goldenBounce},
		{80, 2, 1, geometry.BounceOffsets{From: 2, To: 1}},
		{1024, 64, 0, geometry.BounceOffsets{From: -3, To: 7}},
	}
	for _, tc := range cases {
		near := ComputePositions(tc.host, tc.width, geometry.Near, tc.margin, tc.bounce)
		far := ComputePositions(tc.host, tc.width, geometry.Far, tc.margin, tc.bounce)
		if far.Start != -near.Start {
			t.Fatalf("start not mirrored: near %v far %v", near.Start, far.Start)
		}
		if far.StartBounce.From != -near.StartBounce.From || far.StartBounce.To != -near.StartBounce.To {
			t.Fatalf("start bounce not mirrored: near %+v far %+v", near.StartBounce, far.StartBounce)
		}
		if far.End.From != -near.End.From || far.End.To != -near.End.To {
			t.Fatalf("end not mirrored: near %+v far %+v", near.End, far.End)
		}
	}
}

func TestLeftColumnResolvesBothAnchors(t *testing.T) {
	if got := LeftColumn(geometry.Near, -1, 80, 2); got != -1 {
		t.Fatalf("expected near column -1, got %v", got)
	}
	if got := LeftColumn(geometry.Far, 1, 80, 2); got != 79 {
		t.Fatalf("expected far column 79, got %v", got)
	}
	// a traversed near anchor and the parked far anchor land on the same column
	pos := ComputePositions(320, 50, geometry.Near, 5, goldenBounce)
	if LeftColumn(geometry.Near, pos.End.To, 320, 50) != LeftColumn(geometry.Far, pos.Start, 320, 50) {
		t.Fatalf("expected traverse end to match the parked far anchor")
	}
}

func TestMoveIndicatorTo(t *testing.T) {
	got, err := MoveIndicatorTo(3, 44, 30)
	if err != nil || got != 139 {
		t.Fatalf("expected 139, got %v (%v)", got, err)
	}
	got, err = MoveIndicatorTo(0, 1, 1)
	if err != nil || got != 0 {
		t.Fatalf("expected 0, got %v (%v)", got, err)
	}
}

func TestVerticalAnchorForClamps(t *testing.T) {
	cases := []struct {
		percent float64
		want    float64
	}{
		{50, 235},
		{0, 15},
		{100, 455},
		{2, 15},
	}
	for _, tc := range cases {
		got, err := VerticalAnchorFor(tc.percent, 500, 30)
		if err != nil {
			t.Fatalf("percent %v: %v", tc.percent, err)
		}
		if got != tc.want {
			t.Fatalf("percent %v: expected %v, got %v", tc.percent, tc.want, got)
		}
	}
}

func TestVerticalPlacementRejectsBadGeometry(t *testing.T) {
	nan := math.NaN()
	rows := []struct {
		name                       string
		rowHeight, indicatorHeight float64
	}{
		{"zero row height", 0, 1},
		{"negative row height", -2, 1},
		{"zero indicator height", 2, 0},
		{"nan row height", nan, 1},
	}
	for _, tc := range rows {
		if _, err := MoveIndicatorTo(1, tc.rowHeight, tc.indicatorHeight); !errors.Is(err, geometry.ErrInvalidGeometry) {
			t.Fatalf("%s: expected ErrInvalidGeometry, got %v", tc.name, err)
		}
	}

	anchors := []struct {
		name                                 string
		percent, hostHeight, indicatorHeight float64
	}{
		{"zero host height", 50, 0, 1},
		{"negative host height", 50, -10, 1},
		{"infinite host height", 50, math.Inf(1), 1},
		{"zero indicator height", 50, 12, 0},
		{"nan percent", nan, 12, 1},
	}
	for _, tc := range anchors {
		if _, err := VerticalAnchorFor(tc.percent, tc.hostHeight, tc.indicatorHeight); !errors.Is(err, geometry.ErrInvalidGeometry) {
			t.Fatalf("%s: expected ErrInvalidGeometry, got %v", tc.name, err)
		}
	}
}

func TestOffsetForInvertsLeftColumn(t *testing.T) {
	for _, edge := range []geometry.EdgeSide{geometry.Near, geometry.Far} {
		for _, column := range []float64{-5, 0, 137, 270} {
			offset := OffsetFor(edge, column, 320, 50)
			if got := LeftColumn(edge, offset, 320, 50); got != column {
				t.Fatalf("%s: column %v round-tripped to %v", edge, column, got)
			}
		}
	}
}
