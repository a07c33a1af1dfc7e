package posture

import (
	"errors"
	"math"
	"testing"
)

// almostEqual checks if two float64 values are approximately equal
func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestAngleOf(t *testing.T) {

	const tolerance = 1e-9

	tests := []struct {
		name     string
		a, b, c  Point2D
		expected float64
	}{
		{"straight continuation", Pt(0, 0), Pt(10, 0), Pt(20, 0), 180},
		{"fold back", Pt(0, 0), Pt(10, 0), Pt(0, 0), 0},
		{"fold back past start", Pt(0, 0), Pt(10, 0), Pt(-5, 0), 0},
		{"right angle turn", Pt(0, 0), Pt(10, 0), Pt(10, 10), 90},
		{"right angle other side", Pt(0, 0), Pt(10, 0), Pt(10, -10), 90},
		{"45 degree bend", Pt(0, 0), Pt(10, 0), Pt(0, 10), 45},
		{"135 degree bend", Pt(0, 0), Pt(10, 0), Pt(20, 10), 135},
		// upright trunk: reference above hip, nose above hip
		{"upright trunk", Pt(100, 140), Pt(100, 200), Pt(100, 50), 0},
		{"vertical straight", Pt(5, 0), Pt(5, 3), Pt(5, 1000), 180},
	}

	for _, tc := range tests {
		got, err := AngleOf(tc.a, tc.b, tc.c)

		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}

		if !almostEqual(got, tc.expected, tolerance) {
			t.Errorf("%s: expected angle %f, got %f", tc.name, tc.expected, got)
		}
	}
}

func TestAngleOfRange(t *testing.T) {

	// sweep c around b and check result always falls in [0, 180]
	a := Pt(0, 0)
	b := Pt(50, 50)

	for deg := 0; deg < 360; deg += 5 {
		rad := float64(deg) * math.Pi / 180
		c := Pt(b.X+30*math.Cos(rad), b.Y+30*math.Sin(rad))

		got, err := AngleOf(a, b, c)

		if err != nil {
			t.Fatalf("unexpected error at %d degrees: %v", deg, err)
		}

		if got < 0 || got > 180+1e-9 {
			t.Errorf("angle at sweep %d degrees out of range: %f", deg, got)
		}
	}
}

func TestAngleOfDegenerate(t *testing.T) {

	tests := []struct {
		name    string
		a, b, c Point2D
	}{
		{"a equals b", Pt(3, 3), Pt(3, 3), Pt(10, 10)},
		{"b equals c", Pt(0, 0), Pt(3, 3), Pt(3, 3)},
		{"all equal", Pt(1, 1), Pt(1, 1), Pt(1, 1)},
	}

	for _, tc := range tests {
		_, err := AngleOf(tc.a, tc.b, tc.c)

		if !errors.Is(err, ErrDegenerateSegment) {
			t.Errorf("%s: expected ErrDegenerateSegment, got %v", tc.name, err)
		}
	}
}
