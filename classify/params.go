package classify

// Params defines the reference offsets and angle thresholds used to classify
// posture risk.  Offsets are in image pixels, angles in degrees as returned by
// posture.AngleOf.
type Params struct {
	// TrunkReferenceOffset is the distance above each hip of the synthetic
	// vertical reference point used to measure trunk flexion
	TrunkReferenceOffset float64
	// ShoulderReferenceOffset is the horizontal distance of the synthetic
	// shoulder reference point, placed outward for the left shoulder (+x) and
	// for the right shoulder (-x)
	ShoulderReferenceOffset float64
	// TrunkCaution is the lowest trunk angle classed as Caution
	TrunkCaution float64
	// TrunkDanger is the lowest trunk angle classed as Danger.  Angles in
	// [TrunkCaution, TrunkDanger) are Caution.
	TrunkDanger float64
	// ArmElevation is the shoulder angle an arm must exceed, together with
	// ArmExtension, to be flagged as raised
	ArmElevation float64
	// ArmExtension is the elbow angle an arm must exceed to count as
	// extended
	ArmExtension float64
}

// DefaultParams returns an instance of Params configured with the default
// values:
// - Trunk Reference Offset: 60
// - Shoulder Reference Offset: 20
// - Trunk Caution/Danger: 30/60
// - Arm Elevation/Extension: 45/150
func DefaultParams() Params {
	return Params{
		TrunkReferenceOffset:    60,
		ShoulderReferenceOffset: 20,
		TrunkCaution:            30,
		TrunkDanger:             60,
		ArmElevation:            45,
		ArmExtension:            150,
	}
}
