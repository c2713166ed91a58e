package valley

import (
	"math"
	"slices"
	"testing"
)

func TestPolylineSegments(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(3, 4), Pt(3, 4), Pt(6, 0)}
	got := slices.Collect(pl.Segments())
	want := []Line{
		{Pt(0, 0), Pt(3, 4)},
		{Pt(3, 4), Pt(3, 4)},
		{Pt(3, 4), Pt(6, 0)},
	}
	diff(t, got, want)
	if n := pl.NumSegments(); n != 3 {
		t.Errorf("got %d segments, want 3", n)
	}
	if l := pl.Length(); math.Abs(l-10) > 1e-12 {
		t.Errorf("got length %g, want 10", l)
	}
	if n := (Polyline{}).NumSegments(); n != 0 {
		t.Errorf("empty polyline has %d segments", n)
	}
	if n := (Polyline{Pt(1, 1)}).NumSegments(); n != 0 {
		t.Errorf("single point polyline has %d segments", n)
	}
}

func TestPolylineBoundingBox(t *testing.T) {
	pl := Polyline{Pt(5, 5), Pt(-1, 7), Pt(3, -2)}
	diff(t, pl.BoundingBox(), Rect{-1, -2, 5, 7})
	diff(t, Polyline(nil).BoundingBox(), Rect{})
}

func TestPolylineNearest(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	pt, d := pl.Nearest(Pt(12, 5))
	diff(t, pt, Pt(10, 5))
	if math.Abs(d-2) > 1e-12 {
		t.Errorf("got distance %g, want 2", d)
	}
	if _, d := Polyline(nil).Nearest(Pt(1, 1)); !math.IsInf(d, 1) {
		t.Errorf("got distance %g for empty polyline, want +Inf", d)
	}
}

func TestPolylineClone(t *testing.T) {
	pl := Polyline{Pt(1, 2), Pt(3, 4)}
	c := pl.Clone()
	c[0] = Pt(9, 9)
	diff(t, pl[0], Pt(1, 2))
	if Polyline(nil).Clone() != nil {
		t.Error("clone of nil polyline isn't nil")
	}
}

func TestPolylineClearance(t *testing.T) {
	// runs left to right, with a zero-length segment at the start
	pl := Polyline{Pt(0, 100), Pt(0, 100), Pt(100, 100)}
	tests := []struct {
		pt   Point
		want float64
	}{
		{Pt(50, 90), 10},
		{Pt(50, 115), -15},
		{Pt(50, 100), 0},
		{Pt(-3, 96), 5},
	}
	for _, tt := range tests {
		if got := pl.Clearance(tt.pt); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("clearance of %s: got %g, want %g", tt.pt, got, tt.want)
		}
	}
	// reversed direction flips the sign
	rev := Polyline{Pt(100, 100), Pt(0, 100)}
	if got := rev.Clearance(Pt(50, 90)); math.Abs(got+10) > 1e-12 {
		t.Errorf("got %g for reversed polyline, want -10", got)
	}
	if got := (Polyline{Pt(1, 1), Pt(1, 1)}).Clearance(Pt(0, 0)); !math.IsInf(got, 1) {
		t.Errorf("got %g for degenerate polyline, want +Inf", got)
	}
}
