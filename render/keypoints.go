package render

import (
	"github.com/swdee/go-posture"
	"github.com/swdee/go-posture/classify"
)

// Skeleton draws every bone of the topology in the skeleton paint
func Skeleton(c Canvas, p posture.Person, style *Style) {
	for _, bone := range posture.Bones() {
		seg := bone.Resolve(p)
		c.DrawLine(seg.A, seg.B, style.Skeleton)
	}
}

// Trunk redraws both hip to shoulder segments in the color of the trunk band
func Trunk(c Canvas, p posture.Person, res classify.TrunkResult, style *Style) {

	paint := style.BandPaint(res.Band)

	c.DrawLine(p.Coordinate(posture.LeftHip), p.Coordinate(posture.LeftShoulder), paint)
	c.DrawLine(p.Coordinate(posture.RightHip), p.Coordinate(posture.RightShoulder), paint)
}

// Arm redraws the forearm and upper arm of a raised arm in the alert paint.
// Arms that are not raised keep the skeleton color.
func Arm(c Canvas, p posture.Person, res classify.ArmResult, style *Style) {

	if res.Band != classify.Alert {
		return
	}

	shoulder, elbow, wrist := posture.LeftShoulder, posture.LeftElbow, posture.LeftWrist

	if res.Side == classify.Right {
		shoulder, elbow, wrist = posture.RightShoulder, posture.RightElbow, posture.RightWrist
	}

	paint := style.BandPaint(res.Band)

	c.DrawLine(p.Coordinate(elbow), p.Coordinate(wrist), paint)
	c.DrawLine(p.Coordinate(shoulder), p.Coordinate(elbow), paint)
}

// References marks the synthetic shoulder reference points used for arm
// elevation
func References(c Canvas, left, right posture.Point2D, style *Style) {
	c.DrawRect(pointRect(left, style.LeftReference.Width), style.LeftReference)
	c.DrawRect(pointRect(right, style.RightReference.Width), style.RightReference)
}

// KeyPoints draws a marker circle at every keypoint
func KeyPoints(c Canvas, p posture.Person, style *Style) {
	for _, kp := range p.KeyPoints {
		c.DrawCircle(kp.Coordinate, style.MarkerRadius, style.Marker)
	}
}

// pointRect returns a square of the given size centered on the point
func pointRect(pt posture.Point2D, size float64) posture.Rect {
	half := strokeWidth(size) / 2
	return posture.Rect{
		Left:   pt.X - half,
		Top:    pt.Y - half,
		Right:  pt.X + half,
		Bottom: pt.Y + half,
	}
}
