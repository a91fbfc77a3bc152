package geometry

import (
	"math"
	"testing"
)

func TestTranslation(t *testing.T) {
	tr := Translation(5, -3, 2)
	p := NewPoint(-3, 4, 5)

	if got := tr.MulPoint(p); !got.Eq(NewPoint(2, 1, 7)) {
		t.Errorf("translate point = %+v, want (2, 1, 7)", got)
	}
	if got := tr.Inverse().MulPoint(p); !got.Eq(NewPoint(-8, 7, 3)) {
		t.Errorf("inverse translate point = %+v, want (-8, 7, 3)", got)
	}

	v := NewVector(-3, 4, 5)
	if got := tr.MulVector(v); !got.Eq(v) {
		t.Errorf("translation affected a vector: %+v", got)
	}
}

func TestScaling(t *testing.T) {
	s := Scaling(2, 3, 4)

	if got := s.MulPoint(NewPoint(-4, 6, 8)); !got.Eq(NewPoint(-8, 18, 32)) {
		t.Errorf("scale point = %+v, want (-8, 18, 32)", got)
	}
	if got := s.MulVector(NewVector(-4, 6, 8)); !got.Eq(NewVector(-8, 18, 32)) {
		t.Errorf("scale vector = %+v, want (-8, 18, 32)", got)
	}
	if got := s.Inverse().MulVector(NewVector(-4, 6, 8)); !got.Eq(NewVector(-2, 2, 2)) {
		t.Errorf("inverse scale vector = %+v, want (-2, 2, 2)", got)
	}

	// Reflection is scaling by a negative value.
	if got := Scaling(-1, 1, 1).MulPoint(NewPoint(2, 3, 4)); !got.Eq(NewPoint(-2, 3, 4)) {
		t.Errorf("reflect point = %+v, want (-2, 3, 4)", got)
	}
}

func TestRotationX(t *testing.T) {
	p := NewPoint(0, 1, 0)
	halfQuarter := RotationX(math.Pi / 4)
	fullQuarter := RotationX(math.Pi / 2)

	sq := math.Sqrt(2) / 2
	if got := halfQuarter.MulPoint(p); !got.Eq(NewPoint(0, sq, sq)) {
		t.Errorf("eighth turn = %+v, want (0, %v, %v)", got, sq, sq)
	}
	if got := fullQuarter.MulPoint(p); !got.Eq(NewPoint(0, 0, 1)) {
		t.Errorf("quarter turn = %+v, want (0, 0, 1)", got)
	}
	if got := halfQuarter.Inverse().MulPoint(p); !got.Eq(NewPoint(0, sq, -sq)) {
		t.Errorf("inverse eighth turn = %+v, want (0, %v, %v)", got, sq, -sq)
	}
}

func TestRotationY(t *testing.T) {
	p := NewPoint(0, 0, 1)
	sq := math.Sqrt(2) / 2
	if got := RotationY(math.Pi / 4).MulPoint(p); !got.Eq(NewPoint(sq, 0, sq)) {
		t.Errorf("eighth turn = %+v, want (%v, 0, %v)", got, sq, sq)
	}
	if got := RotationY(math.Pi / 2).MulPoint(p); !got.Eq(NewPoint(1, 0, 0)) {
		t.Errorf("quarter turn = %+v, want (1, 0, 0)", got)
	}
}

func TestRotationZ(t *testing.T) {
	p := NewPoint(0, 1, 0)
	sq := math.Sqrt(2) / 2
	if got := RotationZ(math.Pi / 4).MulPoint(p); !got.Eq(NewPoint(-sq, sq, 0)) {
		t.Errorf("eighth turn = %+v, want (%v, %v, 0)", got, -sq, sq)
	}
	if got := RotationZ(math.Pi / 2).MulPoint(p); !got.Eq(NewPoint(-1, 0, 0)) {
		t.Errorf("quarter turn = %+v, want (-1, 0, 0)", got)
	}
}

func TestShearing(t *testing.T) {
	p := NewPoint(2, 3, 4)
	tests := []struct {
		name                   string
		xy, xz, yx, yz, zx, zy float64
		want                   Point
	}{
		{"x in proportion to y", 1, 0, 0, 0, 0, 0, NewPoint(5, 3, 4)},
		{"x in proportion to z", 0, 1, 0, 0, 0, 0, NewPoint(6, 3, 4)},
		{"y in proportion to x", 0, 0, 1, 0, 0, 0, NewPoint(2, 5, 4)},
		{"y in proportion to z", 0, 0, 0, 1, 0, 0, NewPoint(2, 7, 4)},
		{"z in proportion to x", 0, 0, 0, 0, 1, 0, NewPoint(2, 3, 6)},
		{"z in proportion to y", 0, 0, 0, 0, 0, 1, NewPoint(2, 3, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Shearing(tt.xy, tt.xz, tt.yx, tt.yz, tt.zx, tt.zy)
			if got := m.MulPoint(p); !got.Eq(tt.want) {
				t.Errorf("shear = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChainedTransforms(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// Individual steps applied in sequence.
	p2 := a.MulPoint(p)
	if !p2.Eq(NewPoint(1, -1, 0)) {
		t.Fatalf("after rotation: %+v, want (1, -1, 0)", p2)
	}
	p3 := b.MulPoint(p2)
	if !p3.Eq(NewPoint(5, -5, 0)) {
		t.Fatalf("after scaling: %+v, want (5, -5, 0)", p3)
	}
	p4 := c.MulPoint(p3)
	if !p4.Eq(NewPoint(15, 0, 7)) {
		t.Fatalf("after translation: %+v, want (15, 0, 7)", p4)
	}

	// Chained in reverse order as a single matrix.
	if got := c.Mul(b).Mul(a).MulPoint(p); !got.Eq(NewPoint(15, 0, 7)) {
		t.Errorf("chained = %+v, want (15, 0, 7)", got)
	}
}
