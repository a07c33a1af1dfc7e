/*
go-posture renders detected human pose skeletons onto still images and flags
risky working postures by color.

Given a frame and the keypoints produced by a pose estimation model, the
render package draws the skeleton, keypoint markers and optional person
identifiers, while the classify package measures joint angles to decide
whether the trunk is flexed (caution/danger) or an arm is raised (alert).

The root package holds the shared pose data model, the fixed skeleton
topology and the bend angle geometry used by the classifier.

See example code and usage in the example subdirectory.
*/
package posture
