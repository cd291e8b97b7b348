package bridge

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/rkirkendall/armeasure/pkg/measure"
)

// Shell message types.
const (
	TypeFrame    = "frame"
	TypeToggle   = "toggle"
	TypeSnapshot = "snapshot"
	TypeError    = "error"
)

// ClientMessage is one inbound shell message. A frame carries the
// per-frame hit-test result (hit omitted when no surface is detected)
// and tracking quality; a toggle switches measuring on or off.
type ClientMessage struct {
	Type      string      `json:"type"`
	Hit       *[3]float64 `json:"hit,omitempty"`
	Tracking  string      `json:"tracking,omitempty"`
	Measuring *bool       `json:"measuring,omitempty"`
}

// PoseMessage is the renderable box pose sent back to the shell. The
// rotation is given both as axis-angle and as a w-first quaternion so
// renderers can take whichever form their scene graph wants.
type PoseMessage struct {
	Visible         bool       `json:"visible"`
	Position        [3]float64 `json:"position"`
	RotationAxis    [3]float64 `json:"rotation_axis"`
	RotationRadians float64    `json:"rotation_radians"`
	Quaternion      [4]float64 `json:"quaternion"`
	Size            [3]float64 `json:"size"`
}

// SnapshotMessage is sent to the shell after every applied message
type SnapshotMessage struct {
	Type           string      `json:"type"`
	Session        string      `json:"session"`
	Status         string      `json:"status"`
	StatusText     string      `json:"status_text"`
	Tracking       string      `json:"tracking"`
	TrackingText   string      `json:"tracking_text"`
	DistanceMeters float64     `json:"distance_meters"`
	DistanceLabel  string      `json:"distance_label"`
	Pose           PoseMessage `json:"pose"`
}

// ErrorMessage reports a rejected shell message; the connection stays up
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func newSnapshotMessage(snap measure.Snapshot) SnapshotMessage {
	pose := snap.Pose
	quat := mgl64.QuatRotate(pose.RotationRadians, mgl64.Vec3{
		pose.RotationAxis.X, pose.RotationAxis.Y, pose.RotationAxis.Z,
	})

	return SnapshotMessage{
		Type:           TypeSnapshot,
		Status:         snap.Status.Name(),
		StatusText:     snap.Status.String(),
		Tracking:       snap.Tracking.Name(),
		TrackingText:   snap.Tracking.String(),
		DistanceMeters: snap.Distance,
		DistanceLabel:  measure.FormatDistance(snap.Distance),
		Pose: PoseMessage{
			Visible:         pose.Visible,
			Position:        [3]float64{pose.Position.X, pose.Position.Y, pose.Position.Z},
			RotationAxis:    [3]float64{pose.RotationAxis.X, pose.RotationAxis.Y, pose.RotationAxis.Z},
			RotationRadians: pose.RotationRadians,
			Quaternion:      [4]float64{quat.W, quat.V.X(), quat.V.Y(), quat.V.Z()},
			Size:            [3]float64{pose.Width, pose.Height, pose.Depth},
		},
	}
}
