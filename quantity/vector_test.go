package quantity

import (
	"fmt"
	"math"
	"testing"

	"github.com/pthm-cable/phys/unit"
)

const angleEps = 1e-9

func TestVectorZero(t *testing.T) {
	if got := (Position{}); !got.IsZero() {
		t.Errorf("zero value should be the zero vector, got %v", got)
	}
	if NewPosition(0, 1).IsZero() {
		t.Error("(0, 1) is not the zero vector")
	}
}

func TestVectorArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Position
		want Position
	}{
		{"add", NewPosition(2, 3).Add(NewPosition(5, 7)), NewPosition(7, 10)},
		{"sub", NewPosition(2, 3).Sub(NewPosition(5, 7)), NewPosition(-3, -4)},
		{"neg", NewPosition(2, 3).Neg(), NewPosition(-2, -3)},
		{"scale", NewPosition(2, 3).Scale(5), NewPosition(10, 15)},
		{"div", NewPosition(2, 3).Div(5), NewPosition(0.4, 0.6)},
		{"scale then div is identity", NewPosition(2, 3).Scale(4).Div(4), NewPosition(2, 3)},
		{"add then sub is identity", NewPosition(2, 3).Add(NewPosition(5, 7)).Sub(NewPosition(5, 7)), NewPosition(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVectorRatio(t *testing.T) {
	got := NewPosition(3, 5).Ratio(Meters(2))
	want := VectorOf[unit.Unitless](1.5, 2.5)
	if got != want {
		t.Errorf("Ratio = %v, want %v", got, want)
	}
}

func TestVectorMagnitude(t *testing.T) {
	if got := NewPosition(3, 4).MagnitudeSquared(); got != 25 {
		t.Errorf("MagnitudeSquared = %v, want 25", got)
	}
	if got := NewPosition(3, 4).Magnitude(); got != Meters(5) {
		t.Errorf("Magnitude = %v, want 5 m", got)
	}
	if got := (Position{}).Magnitude(); got != Meters(0) {
		t.Errorf("zero vector Magnitude = %v, want 0 m", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	if _, ok := (Position{}).Normalize(); ok {
		t.Error("zero vector has no direction")
	}

	got, ok := NewPosition(0, 2.1).Normalize()
	if !ok {
		t.Fatal("nonzero vector should normalize")
	}
	if want := VectorOf[unit.Unitless](0, 1); got != want {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestVectorNormalizeRoundTrip(t *testing.T) {
	v := NewPosition(1, 2)
	dir, ok := v.Normalize()
	if !ok {
		t.Fatal("nonzero vector should normalize")
	}

	back := v.Magnitude().Along(dir)
	if math.Abs(back.X.Value-v.X.Value) > angleEps || math.Abs(back.Y.Value-v.Y.Value) > angleEps {
		t.Errorf("magnitude along direction = %v, want %v", back, v)
	}
}

func TestVectorHeading(t *testing.T) {
	tests := []struct {
		name    string
		v       Position
		wantDeg float64
	}{
		{"north", NewPosition(0, 1), 0},
		{"north-east", NewPosition(1, 1), 45},
		{"east", NewPosition(1, 0), 90},
		{"south-east", NewPosition(1, -1), 135},
		{"south", NewPosition(0, -1), 180},
		{"south-west", NewPosition(-1, -1), 225},
		{"west", NewPosition(-1, 0), 270},
		{"north-west", NewPosition(-1, 1), 315},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Heading()
			if !ok {
				t.Fatal("nonzero vector should have a heading")
			}
			if math.Abs(got.Degrees()-tt.wantDeg) > 1e-6 {
				t.Errorf("Heading = %v°, want %v°", got.Degrees(), tt.wantDeg)
			}
		})
	}
}

func TestVectorHeadingZero(t *testing.T) {
	if _, ok := (Position{}).Heading(); ok {
		t.Error("zero vector has no heading")
	}
}

func TestPolarRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 35, 90, 135, 180, 225, 270, 315} {
		angle := Degrees(deg)
		v := Polar(Meters(3), angle)

		if math.Abs(v.Magnitude().Value-3) > angleEps {
			t.Errorf("Polar(3 m, %v°) magnitude = %v, want 3", deg, v.Magnitude())
		}

		got, ok := v.Heading()
		if !ok {
			t.Fatalf("Polar(3 m, %v°) should have a heading", deg)
		}
		diff := math.Abs(got.Degrees() - deg)
		if diff > 1e-6 && math.Abs(diff-360) > 1e-6 {
			t.Errorf("Polar then Heading = %v°, want %v°", got.Degrees(), deg)
		}
	}
}

func TestRotateCW(t *testing.T) {
	v := NewPosition(0, 1)

	if got := v.RotateCW(Degrees(0)); math.Abs(got.X.Value) > angleEps || math.Abs(got.Y.Value-1) > angleEps {
		t.Errorf("rotation by zero should be identity, got %v", got)
	}

	// Two quarter turns flip the vector.
	half := v.RotateCW(Degrees(90)).RotateCW(Degrees(90))
	if math.Abs(half.X.Value) > angleEps || math.Abs(half.Y.Value+1) > angleEps {
		t.Errorf("two quarter turns = %v, want (0, -1)", half)
	}

	// Rotation preserves magnitude.
	r := NewPosition(3, 4).RotateCW(Degrees(27))
	if math.Abs(r.Magnitude().Value-5) > angleEps {
		t.Errorf("rotation changed magnitude: %v", r.Magnitude())
	}
}

func TestVectorDisplay(t *testing.T) {
	tests := []struct {
		name   string
		format string
		arg    any
		want   string
	}{
		{"default precision", "%v", NewPosition(1.5, 2.5), "(1.50 m, 2.50 m)"},
		{"explicit precision", "%.1f", NewPosition(1.44444, 2.555555), "(1.4 m, 2.6 m)"},
		{"dimensionless", "%v", VectorOf[unit.Unitless](0, 1), "(0.00, 1.00)"},
		{"exponential", "%e", NewPosition(1500, 0.25), "(1.50e+03 m, 2.50e-01 m)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmt.Sprintf(tt.format, tt.arg); got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
