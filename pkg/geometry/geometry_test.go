package geometry

import "testing"

func TestRotateCardinalExact(t *testing.T) {
	type rotation struct {
		in    Position
		angle Angle
		want  Position
	}

	cases := []rotation{
		{Position{X: 1, Y: 0}, 0, Position{X: 1, Y: 0}},
		{Position{X: 1, Y: 0}, 90, Position{X: 0, Y: 1}},
		{Position{X: 1, Y: 0}, 180, Position{X: -1, Y: 0}},
		{Position{X: 1, Y: 0}, 270, Position{X: 0, Y: -1}},
		{Position{X: 2.54, Y: -1.27}, 90, Position{X: 1.27, Y: 2.54}},
		{Position{X: 2.54, Y: -1.27}, 180, Position{X: -2.54, Y: 1.27}},
		{Position{X: 2.54, Y: -1.27}, 270, Position{X: -1.27, Y: -2.54}},
		// Angles outside [0, 360) normalize to a cardinal.
		{Position{X: 1, Y: 1}, 450, Position{X: -1, Y: 1}},
		{Position{X: 1, Y: 1}, -90, Position{X: 1, Y: -1}},
	}

	for _, tc := range cases {
		got := RotateCardinal(tc.in, tc.angle)
		if got != tc.want {
			t.Fatalf("RotateCardinal(%v, %v) = %v, want %v", tc.in, tc.angle, got, tc.want)
		}
	}
}

func TestRotateCardinalIsExactNotApproximate(t *testing.T) {
	// Four successive 90° rotations must return the bitwise-identical point.
	p := Position{X: 3.1415, Y: -2.7182}
	got := p
	for i := 0; i < 4; i++ {
		got = RotateCardinal(got, 90)
	}
	if got != p {
		t.Fatalf("four 90° rotations of %v = %v, want identity", p, got)
	}
}

func TestIsCardinal(t *testing.T) {
	for _, a := range []Angle{0, 90, 180, 270, 360, -90, 450} {
		if !IsCardinal(a) {
			t.Fatalf("IsCardinal(%v) = false, want true", a)
		}
	}
	for _, a := range []Angle{45, 30, 90.5, -1} {
		if IsCardinal(a) {
			t.Fatalf("IsCardinal(%v) = true, want false", a)
		}
	}
}

func TestBoundingBoxExpand(t *testing.T) {
	bb := NewBoundingBox()
	if !bb.IsEmpty() {
		t.Fatal("new bounding box should be empty")
	}

	bb.Expand(Position{X: 1, Y: 2})
	bb.Expand(Position{X: -3, Y: 5})

	if bb.Min.X != -3 || bb.Min.Y != 2 || bb.Max.X != 1 || bb.Max.Y != 5 {
		t.Fatalf("unexpected box after expand: %+v", bb)
	}
	if bb.Width() != 4 || bb.Height() != 3 {
		t.Fatalf("Width/Height = %v/%v, want 4/3", bb.Width(), bb.Height())
	}
	if c := bb.Center(); c.X != -1 || c.Y != 3.5 {
		t.Fatalf("Center = %v, want (-1, 3.5)", c)
	}
}

func TestBoundingBoxTranslated(t *testing.T) {
	bb := BoundingBox{Min: Position{X: 0, Y: 0}, Max: Position{X: 2, Y: 1}}
	got := bb.Translated(Position{X: 10, Y: -5})

	want := BoundingBox{Min: Position{X: 10, Y: -5}, Max: Position{X: 12, Y: -4}}
	if got != want {
		t.Fatalf("Translated = %+v, want %+v", got, want)
	}

	empty := NewBoundingBox()
	if !empty.Translated(Position{X: 1, Y: 1}).IsEmpty() {
		t.Fatal("translating an empty box must keep it empty")
	}
}

func TestRotateBox(t *testing.T) {
	bb := BoundingBox{Min: Position{X: 0, Y: 0}, Max: Position{X: 4, Y: 2}}
	got := RotateBox(bb, 90)

	want := BoundingBox{Min: Position{X: -2, Y: 0}, Max: Position{X: 0, Y: 4}}
	if got != want {
		t.Fatalf("RotateBox(90) = %+v, want %+v", got, want)
	}
}

func TestContainsBox(t *testing.T) {
	outer := BoundingBox{Min: Position{X: 0, Y: 0}, Max: Position{X: 10, Y: 10}}
	inner := BoundingBox{Min: Position{X: 2, Y: 2}, Max: Position{X: 8, Y: 8}}

	if !outer.ContainsBox(inner) {
		t.Fatal("outer should contain inner")
	}
	if inner.ContainsBox(outer) {
		t.Fatal("inner should not contain outer")
	}
}
