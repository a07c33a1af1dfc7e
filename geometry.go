package posture

import (
	"errors"
	"fmt"
	"gonum.org/v1/gonum/spatial/r2"
	"math"
)

// ErrDegenerateSegment is returned when two consecutive points of an angle
// are at the same position so no direction can be derived
var ErrDegenerateSegment = errors.New("zero length segment")

// AngleOf returns the bend angle in degrees of the path a -> b -> c at b.
//
// The angle between the segment vectors v1 = b-a and v2 = c-b is subtracted
// from 180 and normalised to [0, 360).  So a path that folds straight back on
// itself at b gives 0, a right angle turn gives 90 and a path continuing
// straight through b gives 180.
func AngleOf(a, b, c Point2D) (float64, error) {

	v1 := r2.Sub(r2.Vec(b), r2.Vec(a))
	v2 := r2.Sub(r2.Vec(c), r2.Vec(b))

	l1 := r2.Norm(v1)
	l2 := r2.Norm(v2)

	if l1 == 0 || l2 == 0 {
		return 0, fmt.Errorf("angle at (%.1f, %.1f): %w", b.X, b.Y, ErrDegenerateSegment)
	}

	cos := r2.Dot(v1, v2) / (l1 * l2)

	// floating point error can push the cosine just outside acos domain
	cos = math.Max(-1, math.Min(1, cos))

	angle := 180 - math.Acos(cos)*180/math.Pi

	if angle < 0 {
		angle += 360
	}

	return angle, nil
}
