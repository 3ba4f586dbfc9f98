package visibility

import (
	"testing"

	"github.com/mafeblanco565/mayrav/pkg/graphics"
)

type staticTarget struct {
	bounds graphics.Rect
	ok     bool
}

func (t *staticTarget) VisibleBounds() (graphics.Rect, bool) {
	return t.bounds, t.ok
}

func TestVisibleFraction(t *testing.T) {
	viewport := graphics.RectFromLTWH(0, 0, 100, 100)

	cases := []struct {
		name   string
		bounds graphics.Rect
		ok     bool
		want   float64
	}{
		{"fully inside", graphics.RectFromLTWH(10, 10, 20, 20), true, 1},
		{"half below fold", graphics.RectFromLTWH(0, 90, 100, 20), true, 0.5},
		{"fully outside", graphics.RectFromLTWH(0, 200, 100, 20), true, 0},
		{"touching edge only", graphics.RectFromLTWH(0, 100, 100, 20), true, 0},
		{"not laid out", graphics.RectFromLTWH(0, 0, 10, 10), false, 0},
		{"zero size", graphics.Rect{}, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := VisibleFraction(&staticTarget{bounds: tc.bounds, ok: tc.ok}, viewport)
			if got != tc.want {
				t.Errorf("VisibleFraction = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVisibleFraction_EmptyViewport(t *testing.T) {
	target := &staticTarget{bounds: graphics.RectFromLTWH(0, 0, 10, 10), ok: true}
	if got := VisibleFraction(target, graphics.Rect{}); got != 0 {
		t.Errorf("VisibleFraction with empty viewport = %v, want 0", got)
	}
}

func TestSatisfies(t *testing.T) {
	cases := []struct {
		fraction  float64
		threshold float64
		want      bool
	}{
		{0, 0, false},
		{0.001, 0, true},
		{0.19, 0.2, false},
		{0.2, 0.2, true},
		{0.5, 0.2, true},
		{1, 1, true},
		{0.99, 1, false},
	}
	for _, tc := range cases {
		if got := satisfies(tc.fraction, tc.threshold); got != tc.want {
			t.Errorf("satisfies(%v, %v) = %v, want %v", tc.fraction, tc.threshold, got, tc.want)
		}
	}
}
