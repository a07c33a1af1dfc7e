package posture

import (
	"fmt"
	"strings"
)

// BodyPart is an anatomical landmark detected by the pose model.  The integer
// value of a BodyPart is its position in Person.KeyPoints.
type BodyPart int

// COCO keypoint ordering as output by MoveNet/PoseNet/YOLOv8-pose models
const (
	Nose BodyPart = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle

	// NumBodyParts is the number of keypoints in a skeleton
	NumBodyParts = 17
)

var bodyPartNames = [NumBodyParts]string{
	"nose",
	"left_eye",
	"right_eye",
	"left_ear",
	"right_ear",
	"left_shoulder",
	"right_shoulder",
	"left_elbow",
	"right_elbow",
	"left_wrist",
	"right_wrist",
	"left_hip",
	"right_hip",
	"left_knee",
	"right_knee",
	"left_ankle",
	"right_ankle",
}

// Position returns the index of the body part in a Person's KeyPoints
func (b BodyPart) Position() int {
	return int(b)
}

// Valid reports whether b is one of the declared body parts
func (b BodyPart) Valid() bool {
	return b >= 0 && b < NumBodyParts
}

func (b BodyPart) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BodyPart(%d)", int(b))
	}
	return bodyPartNames[b]
}

// ParseBodyPart returns the BodyPart matching the given snake_case name, eg:
// "left_shoulder"
func ParseBodyPart(name string) (BodyPart, error) {

	name = strings.ToLower(strings.TrimSpace(name))

	for i, n := range bodyPartNames {
		if n == name {
			return BodyPart(i), nil
		}
	}

	return 0, fmt.Errorf("unknown body part %q", name)
}

// BodyParts returns all body parts in position order
func BodyParts() []BodyPart {
	parts := make([]BodyPart, NumBodyParts)
	for i := range parts {
		parts[i] = BodyPart(i)
	}
	return parts
}
