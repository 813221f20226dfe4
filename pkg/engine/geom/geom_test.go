package geom

import "testing"

func TestBoundsAround(t *testing.T) {
	b := BoundsAround(V(4, 0), V(2, 2))
	want := Bounds{MinX: 3, MinY: -1, MaxX: 5, MaxY: 1}
	if b != want {
		t.Errorf("BoundsAround((4,0),(2,2)) = %+v, want %+v", b, want)
	}
	if b.Width() != 2 || b.Height() != 2 {
		t.Errorf("size = %v, want (2,2)", b.Size())
	}
}

func TestBoundsUnion(t *testing.T) {
	a := BoundsAround(V(0, 0), V(2, 2))
	b := BoundsAround(V(4, 0), V(2, 2))
	got := a.Union(b)
	want := Bounds{MinX: -1, MinY: -1, MaxX: 5, MaxY: 1}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if !got.Contains(V(2, 0)) {
		t.Error("union should contain (2,0)")
	}
	if got.Center() != V(2, 0) {
		t.Errorf("Center = %v, want (2,0)", got.Center())
	}
}

func TestVecArithmetic(t *testing.T) {
	v := V(3, 4)
	if got := v.Add(V(1, 1)).Sub(V(2, 2)); got != V(2, 3) {
		t.Errorf("Add/Sub = %v, want (2,3)", got)
	}
	if got := v.Mul(V(0.5, 2)); got != V(1.5, 8) {
		t.Errorf("Mul = %v, want (1.5,8)", got)
	}
	if got := v.Neg().Half(); got != V(-1.5, -2) {
		t.Errorf("Neg.Half = %v, want (-1.5,-2)", got)
	}
	if !V(0, 0).IsZero() || v.IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{100, 0.25, 6, 6},
		{0, 0.25, 6, 0.25},
		{1, 0.25, 6, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := ClampInt(2000, 32, 1024); got != 1024 {
		t.Errorf("ClampInt(2000) = %d, want 1024", got)
	}
}
