package posture

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyPointCount is returned when a Person does not carry exactly one
	// KeyPoint per BodyPart
	ErrKeyPointCount = errors.New("keypoint count does not match body parts")
	// ErrKeyPointOrder is returned when a KeyPoint is not stored at its
	// BodyPart position
	ErrKeyPointOrder = errors.New("keypoint stored out of body part order")
)

// Point2D is a coordinate in image space with the origin at the top left and
// y increasing downwards
type Point2D struct {
	X, Y float64
}

// Pt is shorthand for Point2D{X: x, Y: y}
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns the point translated by dx, dy
func (p Point2D) Add(dx, dy float64) Point2D {
	return Point2D{X: p.X + dx, Y: p.Y + dy}
}

// KeyPoint is the detected position of a BodyPart for one person in one frame
type KeyPoint struct {
	BodyPart   BodyPart
	Coordinate Point2D
	Score      float64
}

// Rect is an axis aligned bounding box
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width of the rectangle
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height of the rectangle
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Person is one detected human in a frame.  KeyPoints must hold exactly one
// KeyPoint per BodyPart stored at BodyPart.Position().  BoundingBox and Score
// are optional and may be nil.
type Person struct {
	ID          int
	KeyPoints   []KeyPoint
	BoundingBox *Rect
	Score       *float64
}

// NewPerson creates a Person with its KeyPoints laid out in BodyPart order
// from the given coordinates and scores
func NewPerson(id int, coords [NumBodyParts]Point2D, scores [NumBodyParts]float64) Person {

	kps := make([]KeyPoint, NumBodyParts)

	for i := range kps {
		kps[i] = KeyPoint{
			BodyPart:   BodyPart(i),
			Coordinate: coords[i],
			Score:      scores[i],
		}
	}

	return Person{
		ID:        id,
		KeyPoints: kps,
	}
}

// Validate checks the KeyPoints layout so lookups by BodyPart position are
// always valid
func (p Person) Validate() error {

	if len(p.KeyPoints) != NumBodyParts {
		return fmt.Errorf("person %d has %d keypoints, want %d: %w",
			p.ID, len(p.KeyPoints), NumBodyParts, ErrKeyPointCount)
	}

	for i, kp := range p.KeyPoints {
		if kp.BodyPart != BodyPart(i) {
			return fmt.Errorf("person %d keypoint %d is %s, want %s: %w",
				p.ID, i, kp.BodyPart, BodyPart(i), ErrKeyPointOrder)
		}
	}

	return nil
}

// Coordinate returns the position of the given body part.  The Person must
// have passed Validate.
func (p Person) Coordinate(b BodyPart) Point2D {
	return p.KeyPoints[b.Position()].Coordinate
}
