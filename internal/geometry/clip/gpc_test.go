package clip

import "testing"

func rect(x1, y1, x2, y2 float64) Contour {
	return Contour{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
}

func TestUnionDisjointRectangles(t *testing.T) {
	a := Polygon{Contours: []Contour{rect(0, 0, 1, 1)}, Hole: []bool{false}}
	b := Polygon{Contours: []Contour{rect(5, 5, 6, 6)}, Hole: []bool{false}}

	got, err := Union(a, b)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(got.Contours) != 2 {
		t.Fatalf("expected 2 disjoint contours, got %d", len(got.Contours))
	}
}

func TestUnionOverlappingRectangles(t *testing.T) {
	a := Polygon{Contours: []Contour{rect(0, 0, 2, 2)}, Hole: []bool{false}}
	b := Polygon{Contours: []Contour{rect(1, 1, 3, 3)}, Hole: []bool{false}}

	got, err := Union(a, b)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(got.Contours) != 1 {
		t.Fatalf("expected a single merged contour, got %d", len(got.Contours))
	}
	for _, h := range got.Hole {
		if h {
			t.Fatalf("overlapping union should not introduce a hole")
		}
	}
}

func TestUnionWithEmptyOperand(t *testing.T) {
	a := Polygon{Contours: []Contour{rect(0, 0, 1, 1)}, Hole: []bool{false}}

	got, err := Union(a, Polygon{})
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(got.Contours) != 1 {
		t.Fatalf("expected the single input contour back, got %d", len(got.Contours))
	}
}

func TestUnionPreservesHole(t *testing.T) {
	outer := rect(0, 0, 10, 10)
	hole := Contour{{3, 3}, {3, 7}, {7, 7}, {7, 3}}
	a := Polygon{Contours: []Contour{outer, hole}, Hole: []bool{false, true}}

	got, err := Union(a, Polygon{})
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	holes := 0
	for _, h := range got.Hole {
		if h {
			holes++
		}
	}
	if holes != 1 {
		t.Fatalf("expected the hole to survive the union, got %d holes", holes)
	}
}
