package classify

import (
	"errors"
	"github.com/swdee/go-posture"
	"math"
	"testing"
)

// standingPerson returns an upright person facing the camera with both
// forearms bent inwards at chest height
func standingPerson() posture.Person {

	var c [posture.NumBodyParts]posture.Point2D

	c[posture.Nose] = posture.Pt(200, 80)
	c[posture.LeftEye] = posture.Pt(210, 70)
	c[posture.RightEye] = posture.Pt(190, 70)
	c[posture.LeftEar] = posture.Pt(220, 75)
	c[posture.RightEar] = posture.Pt(180, 75)
	c[posture.LeftShoulder] = posture.Pt(240, 140)
	c[posture.RightShoulder] = posture.Pt(160, 140)
	c[posture.LeftElbow] = posture.Pt(250, 220)
	c[posture.RightElbow] = posture.Pt(150, 220)
	c[posture.LeftWrist] = posture.Pt(215, 200)
	c[posture.RightWrist] = posture.Pt(185, 200)
	c[posture.LeftHip] = posture.Pt(225, 320)
	c[posture.RightHip] = posture.Pt(175, 320)
	c[posture.LeftKnee] = posture.Pt(225, 430)
	c[posture.RightKnee] = posture.Pt(175, 430)
	c[posture.LeftAnkle] = posture.Pt(225, 540)
	c[posture.RightAnkle] = posture.Pt(175, 540)

	var scores [posture.NumBodyParts]float64
	for i := range scores {
		scores[i] = 0.9
	}

	return posture.NewPerson(1, c, scores)
}

// withPoint returns a copy of the person with one keypoint moved
func withPoint(p posture.Person, part posture.BodyPart, pt posture.Point2D) posture.Person {
	kps := append([]posture.KeyPoint(nil), p.KeyPoints...)
	kps[part].Coordinate = pt
	p.KeyPoints = kps
	return p
}

// bendTrunk moves the nose so the trunk angle measured at the given hip is
// the given number of degrees
func bendTrunk(p posture.Person, hip posture.BodyPart, degrees float64) posture.Person {
	rad := degrees * math.Pi / 180
	h := p.Coordinate(hip)
	nose := posture.Pt(h.X+200*math.Sin(rad), h.Y-200*math.Cos(rad))
	return withPoint(p, posture.Nose, nose)
}

// almostEqual checks if two float64 values are approximately equal
func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestTrunkBand(t *testing.T) {

	c := New(DefaultParams())

	tests := []struct {
		left, right float64
		expected    Band
	}{
		{0, 0, Safe},
		{29.9, 0, Safe},
		{0, 29.9, Safe},
		{30, 0, Caution},
		{0, 30, Caution},
		{45, 10, Caution},
		{10, 45, Caution},
		{59.99, 0, Caution},
		{60, 0, Danger},
		{0, 60, Danger},
		{75, 75, Danger},
		{0, 180, Danger},
		// caution on either side takes precedence over danger
		{45, 75, Caution},
		{75, 45, Caution},
	}

	for _, tc := range tests {
		got := c.TrunkBand(tc.left, tc.right)

		if got != tc.expected {
			t.Errorf("TrunkBand(%.2f, %.2f): expected %s, got %s",
				tc.left, tc.right, tc.expected, got)
		}
	}
}

func TestTrunkUpright(t *testing.T) {

	c := New(DefaultParams())

	res, err := c.Trunk(standingPerson())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Band != Safe {
		t.Errorf("expected upright trunk to be safe, got %s (left %.2f, right %.2f)",
			res.Band, res.LeftAngle, res.RightAngle)
	}

	if res.LeftAngle > 10 || res.RightAngle > 10 {
		t.Errorf("expected small upright angles, got left %.2f, right %.2f",
			res.LeftAngle, res.RightAngle)
	}
}

func TestTrunkBent(t *testing.T) {

	c := New(DefaultParams())

	tests := []struct {
		degrees  float64
		expected Band
	}{
		{20, Safe},
		{45, Caution},
		{70, Danger},
		{90, Danger},
	}

	for _, tc := range tests {
		p := bendTrunk(standingPerson(), posture.RightHip, tc.degrees)

		res, err := c.Trunk(p)

		if err != nil {
			t.Errorf("%.0f degrees: unexpected error: %v", tc.degrees, err)
			continue
		}

		if !almostEqual(res.RightAngle, tc.degrees, 1e-6) {
			t.Errorf("%.0f degrees: measured right angle %f", tc.degrees, res.RightAngle)
		}

		if res.Band != tc.expected {
			t.Errorf("%.0f degrees: expected %s, got %s (left %.2f)",
				tc.degrees, tc.expected, res.Band, res.LeftAngle)
		}
	}
}

func TestArmSafe(t *testing.T) {

	c := New(DefaultParams())
	p := standingPerson()

	for _, side := range []Side{Left, Right} {
		res, err := c.Arm(p, side)

		if err != nil {
			t.Fatalf("%s: unexpected error: %v", side, err)
		}

		if res.Band != Safe || res.AboveEye {
			t.Errorf("%s: expected safe arm, got %s (elevation %.2f, extension %.2f)",
				side, res.Band, res.Elevation, res.Extension)
		}

		if res.Extension >= 150 {
			t.Errorf("%s: expected bent arm, got extension %.2f", side, res.Extension)
		}
	}
}

func TestArmWristAboveEye(t *testing.T) {

	c := New(DefaultParams())

	// lift only the left wrist above the right eye
	p := withPoint(standingPerson(), posture.LeftWrist, posture.Pt(215, 60))

	left, err := c.Arm(p, Left)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !left.AboveEye || left.Band != Alert {
		t.Errorf("expected left arm alert from wrist above eye, got %s", left.Band)
	}

	// the angle rule alone would not raise it
	if left.Extension > 150 {
		t.Errorf("expected bent left arm, got extension %.2f", left.Extension)
	}

	right, err := c.Arm(p, Right)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if right.Band != Safe {
		t.Errorf("expected right arm unaffected, got %s", right.Band)
	}
}

func TestArmElevatedAndExtended(t *testing.T) {

	c := New(DefaultParams())

	tests := []struct {
		name     string
		elbow    posture.Point2D
		wrist    posture.Point2D
		expected Band
	}{
		// straight arm held away from the shoulder reference
		{"straight hanging arm", posture.Pt(245, 220), posture.Pt(250, 300), Alert},
		// straight arm pointing outward along the reference has no elevation
		{"straight arm outward", posture.Pt(320, 140), posture.Pt(400, 140), Safe},
	}

	for _, tc := range tests {
		p := withPoint(standingPerson(), posture.LeftElbow, tc.elbow)
		p = withPoint(p, posture.LeftWrist, tc.wrist)

		res, err := c.Arm(p, Left)

		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}

		if res.Extension <= 150 {
			t.Errorf("%s: expected straight arm, got extension %.2f", tc.name, res.Extension)
		}

		if res.Band != tc.expected {
			t.Errorf("%s: expected %s, got %s (elevation %.2f)", tc.name,
				tc.expected, res.Band, res.Elevation)
		}
	}
}

func TestShoulderReference(t *testing.T) {

	c := New(DefaultParams())
	p := standingPerson()

	if got := c.ShoulderReference(p, Left); got != posture.Pt(260, 140) {
		t.Errorf("expected left reference (260, 140), got %v", got)
	}

	if got := c.ShoulderReference(p, Right); got != posture.Pt(140, 140) {
		t.Errorf("expected right reference (140, 140), got %v", got)
	}
}

func TestAssess(t *testing.T) {

	c := New(DefaultParams())

	p := bendTrunk(standingPerson(), posture.RightHip, 70)
	p = withPoint(p, posture.RightWrist, posture.Pt(185, 40))

	a, err := c.Assess(p)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.PersonID != 1 {
		t.Errorf("expected person id 1, got %d", a.PersonID)
	}

	if a.Trunk.Band != Danger {
		t.Errorf("expected danger trunk, got %s", a.Trunk.Band)
	}

	if a.LeftArm.Band != Safe || a.RightArm.Band != Alert {
		t.Errorf("expected left safe and right alert, got %s and %s",
			a.LeftArm.Band, a.RightArm.Band)
	}
}

func TestAssessErrors(t *testing.T) {

	c := New(DefaultParams())
	p := standingPerson()

	tests := []struct {
		name     string
		person   posture.Person
		expected error
	}{
		{"missing keypoints", posture.Person{ID: 9}, posture.ErrKeyPointCount},
		{"nose on hip", withPoint(p, posture.Nose, p.Coordinate(posture.LeftHip)), posture.ErrDegenerateSegment},
		{"wrist on elbow", withPoint(p, posture.RightWrist, p.Coordinate(posture.RightElbow)), posture.ErrDegenerateSegment},
		{"wrist on shoulder", withPoint(p, posture.LeftWrist, p.Coordinate(posture.LeftShoulder)), posture.ErrDegenerateSegment},
	}

	for _, tc := range tests {
		_, err := c.Assess(tc.person)

		if !errors.Is(err, tc.expected) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, err)
		}
	}
}
