package classify

import (
	"fmt"
	"github.com/swdee/go-posture"
)

// Classifier measures joint angles of a Person and maps them to risk bands
type Classifier struct {
	// Params are the classification thresholds
	Params Params
}

// TrunkResult is the trunk flexion classification for one person
type TrunkResult struct {
	// LeftAngle and RightAngle are the trunk angles measured at each hip
	LeftAngle  float64
	RightAngle float64
	// Band applies to both hip to shoulder segments
	Band Band
}

// ArmResult is the elevation classification for one arm
type ArmResult struct {
	Side Side
	// Elevation is the angle at the shoulder between the outward reference
	// point and the wrist
	Elevation float64
	// Extension is the angle at the elbow, 180 for a straight arm
	Extension float64
	// AboveEye is set when the wrist is higher in the image than the right eye
	AboveEye bool
	// Band is Alert when the arm is raised, otherwise Safe
	Band Band
}

// Assessment is the complete posture classification for one person
type Assessment struct {
	PersonID int
	Trunk    TrunkResult
	LeftArm  ArmResult
	RightArm ArmResult
}

// New returns an instance of the Classifier using the given Params
func New(p Params) *Classifier {
	return &Classifier{
		Params: p,
	}
}

// Assess validates the person and classifies trunk and both arms
func (c *Classifier) Assess(p posture.Person) (Assessment, error) {

	if err := p.Validate(); err != nil {
		return Assessment{}, err
	}

	trunk, err := c.Trunk(p)

	if err != nil {
		return Assessment{}, err
	}

	left, err := c.Arm(p, Left)

	if err != nil {
		return Assessment{}, err
	}

	right, err := c.Arm(p, Right)

	if err != nil {
		return Assessment{}, err
	}

	return Assessment{
		PersonID: p.ID,
		Trunk:    trunk,
		LeftArm:  left,
		RightArm: right,
	}, nil
}

// Trunk measures forward flexion of the trunk at both hips against a vertical
// reference and returns one combined band.  The Person must have passed
// Validate.
func (c *Classifier) Trunk(p posture.Person) (TrunkResult, error) {

	nose := p.Coordinate(posture.Nose)

	left, err := c.trunkAngle(p.Coordinate(posture.LeftHip), nose)

	if err != nil {
		return TrunkResult{}, fmt.Errorf("person %d left trunk: %w", p.ID, err)
	}

	right, err := c.trunkAngle(p.Coordinate(posture.RightHip), nose)

	if err != nil {
		return TrunkResult{}, fmt.Errorf("person %d right trunk: %w", p.ID, err)
	}

	return TrunkResult{
		LeftAngle:  left,
		RightAngle: right,
		Band:       c.TrunkBand(left, right),
	}, nil
}

// trunkAngle returns the bend angle at the hip between a point directly above
// it and the nose
func (c *Classifier) trunkAngle(hip, nose posture.Point2D) (float64, error) {
	ref := hip.Add(0, -c.Params.TrunkReferenceOffset)
	return posture.AngleOf(ref, hip, nose)
}

// TrunkBand combines the left and right trunk angles into a single band.
// Caution is checked first on both sides, so a Caution angle on one side wins
// over a Danger angle on the other.
func (c *Classifier) TrunkBand(left, right float64) Band {

	if c.inCaution(left) || c.inCaution(right) {
		return Caution
	}

	if left >= c.Params.TrunkDanger || right >= c.Params.TrunkDanger {
		return Danger
	}

	return Safe
}

func (c *Classifier) inCaution(angle float64) bool {
	return angle >= c.Params.TrunkCaution && angle < c.Params.TrunkDanger
}

// ShoulderReference returns the synthetic reference point placed outward of
// the given side's shoulder
func (c *Classifier) ShoulderReference(p posture.Person, side Side) posture.Point2D {

	if side == Left {
		return p.Coordinate(posture.LeftShoulder).Add(c.Params.ShoulderReferenceOffset, 0)
	}

	return p.Coordinate(posture.RightShoulder).Add(-c.Params.ShoulderReferenceOffset, 0)
}

// Arm classifies elevation of one arm.  The arm is raised when its wrist is
// above the right eye, or when it is lifted away from the body while held
// straight.  The Person must have passed Validate.
func (c *Classifier) Arm(p posture.Person, side Side) (ArmResult, error) {

	shoulder, elbow, wrist := armParts(side)

	shoulderPt := p.Coordinate(shoulder)
	elbowPt := p.Coordinate(elbow)
	wristPt := p.Coordinate(wrist)

	elevation, err := posture.AngleOf(c.ShoulderReference(p, side), shoulderPt, wristPt)

	if err != nil {
		return ArmResult{}, fmt.Errorf("person %d %s arm elevation: %w", p.ID, side, err)
	}

	extension, err := posture.AngleOf(shoulderPt, elbowPt, wristPt)

	if err != nil {
		return ArmResult{}, fmt.Errorf("person %d %s arm extension: %w", p.ID, side, err)
	}

	// y grows downwards so a smaller y is higher up
	aboveEye := p.Coordinate(posture.RightEye).Y > wristPt.Y

	res := ArmResult{
		Side:      side,
		Elevation: elevation,
		Extension: extension,
		AboveEye:  aboveEye,
		Band:      Safe,
	}

	if aboveEye || (elevation > c.Params.ArmElevation && extension > c.Params.ArmExtension) {
		res.Band = Alert
	}

	return res, nil
}

// armParts returns the shoulder, elbow and wrist of the given side
func armParts(side Side) (posture.BodyPart, posture.BodyPart, posture.BodyPart) {
	if side == Left {
		return posture.LeftShoulder, posture.LeftElbow, posture.LeftWrist
	}
	return posture.RightShoulder, posture.RightElbow, posture.RightWrist
}
