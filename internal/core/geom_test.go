package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},   // Top-left corner
		{11, 7, true},  // Bottom-right inside cell
		{12, 3, false}, // Right edge is exclusive
		{2, 8, false},  // Bottom edge is exclusive
		{1, 3, false},
		{2, 2, false},
		{6, 5, true},
	}

	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d,%d)=%v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)
	if r.Right() != 12 {
		t.Errorf("Right=%d, want 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom=%d, want 8", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(2)
	want := NewRect(2, 2, 6, 2)
	if r != want {
		t.Errorf("Inset(2)=%+v, want %+v", r, want)
	}

	// Over-inset produces a degenerate rectangle.
	deg := NewRect(0, 0, 4, 4).Inset(3)
	if deg.W > 0 && deg.H > 0 {
		t.Errorf("expected degenerate rect, got %+v", deg)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10)=%d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10)=%d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10)=%d", got)
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5,0,1)=%g", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5,0,1)=%g", got)
	}
}

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
		if a.Intn(100) != b.Intn(100) {
			t.Fatalf("same seed diverged at Intn draw %d", i)
		}
	}
}
