package board

import (
	"errors"
	"testing"
)

func squareLayout() Layout {
	return Layout{X: 0, Y: 0, Size: 80, Cells: 8, Pitch: 10, Gap: 0.8}
}

func TestLocate_BoundaryIsExclusive(t *testing.T) {
	l := squareLayout()
	if _, err := Locate(0, 40, l); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds on the left edge, got %v", err)
	}
	c, err := Locate(0.01, 40, l)
	if err != nil {
		t.Fatalf("expected a cell just inside the edge, got %v", err)
	}
	if c != (Cell{Col: 0, Row: 4}) {
		t.Fatalf("expected (0,4), got %+v", c)
	}
	for _, p := range [][2]float64{{80, 40}, {40, 0}, {40, 80}, {-1, 40}, {40, 81}} {
		if _, err := Locate(p[0], p[1], l); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("point %v should be out of bounds, got %v", p, err)
		}
	}
}

func TestLocate_ResolvesCells(t *testing.T) {
	l := squareLayout()
	cases := []struct {
		x, y float64
		want Cell
	}{
		{5, 5, Cell{0, 0}},
		{9.99, 10.01, Cell{0, 1}},
		{35, 45, Cell{3, 4}},
		{79.99, 79.99, Cell{7, 7}},
	}
	for _, tc := range cases {
		got, err := Locate(tc.x, tc.y, l)
		if err != nil {
			t.Fatalf("locate(%.2f,%.2f): unexpected error %v", tc.x, tc.y, err)
		}
		if got != tc.want {
			t.Fatalf("locate(%.2f,%.2f): expected %+v, got %+v", tc.x, tc.y, tc.want, got)
		}
	}
}

func TestLocate_OffsetOrigin(t *testing.T) {
	l := Recompute(800, 900, 8)
	x, y := l.CellCenter(Cell{Col: 3, Row: 4})
	c, err := Locate(x, y, l)
	if err != nil || c != (Cell{Col: 3, Row: 4}) {
		t.Fatalf("expected (3,4), got %+v err=%v", c, err)
	}
}

func TestLocate_DegenerateLayout(t *testing.T) {
	l := Recompute(800, 0, 8)
	if _, err := Locate(400, 0, l); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds on a degenerate layout, got %v", err)
	}
}

func TestNotation(t *testing.T) {
	if s := Notation(Cell{Col: 3, Row: 4}); s != "d5" {
		t.Fatalf("expected d5, got %s", s)
	}
	if s := Notation(Cell{Col: 30, Row: 1}); s != "(30,1)" {
		t.Fatalf("expected (30,1), got %s", s)
	}
}
