package posture

// Bone is a skeleton edge drawn between two body parts
type Bone struct {
	From, To BodyPart
}

// Segment is a Bone resolved to a Person's coordinates
type Segment struct {
	A, B Point2D
}

// skeleton defines the body parts to draw lines between
var skeleton = [...]Bone{
	{Nose, LeftEye},
	{Nose, RightEye},
	{Nose, LeftShoulder},
	{Nose, RightShoulder},
	{LeftShoulder, LeftElbow},
	{LeftElbow, LeftWrist},
	{RightShoulder, RightElbow},
	{RightElbow, RightWrist},
	{LeftShoulder, RightShoulder},
	{LeftShoulder, LeftHip},
	{RightShoulder, RightHip},
	{LeftHip, RightHip},
	{LeftHip, LeftKnee},
	{LeftKnee, LeftAnkle},
	{RightHip, RightKnee},
	{RightKnee, RightAnkle},
}

// NumBones is the number of bones in the skeleton topology
const NumBones = len(skeleton)

// Bones returns a copy of the skeleton topology in drawing order
func Bones() []Bone {
	bones := make([]Bone, NumBones)
	copy(bones, skeleton[:])
	return bones
}

// Resolve returns the segment of the bone for the given person.  The Person
// must have passed Validate.
func (b Bone) Resolve(p Person) Segment {
	return Segment{
		A: p.Coordinate(b.From),
		B: p.Coordinate(b.To),
	}
}

// BonesOf resolves every skeleton bone through the person's keypoints
func BonesOf(p Person) ([]Segment, error) {

	if err := p.Validate(); err != nil {
		return nil, err
	}

	segs := make([]Segment, NumBones)

	for i, bone := range skeleton {
		segs[i] = bone.Resolve(p)
	}

	return segs, nil
}
