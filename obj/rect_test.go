package obj

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	edges := []struct {
		name string
		got  float64
		want float64
	}{
		{"left", r.Left(), 10},
		{"right", r.Right(), 40},
		{"top", r.Top(), 20},
		{"bottom", r.Bottom(), 60},
		{"center_x", r.CenterX(), 25},
		{"center_y", r.CenterY(), 40},
	}
	for _, e := range edges {
		if e.got != e.want {
			t.Fatalf("%s = %v, want %v", e.name, e.got, e.want)
		}
	}
}

func TestRectSetters(t *testing.T) {
	r := NewRect(0, 0, 10, 20)

	r.SetRight(50)
	if r.X != 40 {
		t.Fatalf("SetRight: X = %v, want 40", r.X)
	}
	r.SetBottom(100)
	if r.Y != 80 {
		t.Fatalf("SetBottom: Y = %v, want 80", r.Y)
	}
	r.SetMidBottom(25, 60)
	if r.CenterX() != 25 || r.Bottom() != 60 {
		t.Fatalf("SetMidBottom: center=%v bottom=%v, want 25, 60", r.CenterX(), r.Bottom())
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 4, 4), true},
		{"touching_edges_do_not_intersect", NewRect(10, 0, 10, 10), false},
		{"separated", NewRect(20, 20, 5, 5), false},
		{"vertical_overlap_only", NewRect(15, 0, 5, 10), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects should be symmetric")
			}
		})
	}
}
