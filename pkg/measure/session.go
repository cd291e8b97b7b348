package measure

import (
	"math"

	"github.com/rkirkendall/armeasure/pkg/geometry"
)

// Mode identifies whether a session is actively measuring
type Mode int

const (
	ModeIdle Mode = iota
	ModeMeasuring
)

// YawAxis is the vertical axis the measurement box rotates about.
var YawAxis = geometry.NewVector3(0, 1, 0)

// run holds the state that only exists while a measuring run is active.
// A fresh value is allocated on every Idle to Measuring transition, so
// a stale start point or distance can never leak across runs.
type run struct {
	start    *geometry.Vector3
	distance float64
}

// Session is the per-connection measuring state machine. It is owned by
// a single frame-driving caller; Tick is not safe for concurrent use.
type Session struct {
	extent   *ExtentModel
	run      *run // nil while idle
	tracking TrackingQuality
	status   Status
}

// NewSession creates an idle session with a zero-length box
func NewSession() *Session {
	return &Session{
		extent:   NewExtentModel(),
		tracking: TrackingUnavailable,
		status:   StatusNotReady,
	}
}

// Mode returns the current session mode
func (s *Session) Mode() Mode {
	if s.run != nil {
		return ModeMeasuring
	}
	return ModeIdle
}

// SetMeasuring switches the session between Idle and Measuring. Turning
// measuring on starts a fresh run and resets the box to a zero-length
// state at the origin; turning it off keeps the last box pose and drops
// the run state. Re-asserting the current mode is a no-op.
func (s *Session) SetMeasuring(on bool) {
	if on == (s.run != nil) {
		return
	}
	if on {
		s.run = &run{}
		s.extent.Reset(geometry.Vector3{})
	} else {
		s.run = nil
		s.status = StatusNotReady
	}
}

// Tick advances the session by one frame. hit is the surface hit-test
// result for this frame, nil when no surface is detected at the aim
// point; quality is the tracker's current confidence. It returns the
// snapshot for the renderer to apply.
func (s *Session) Tick(hit *geometry.Vector3, quality TrackingQuality) Snapshot {
	s.tracking = quality
	switch {
	case hit == nil:
		s.status = StatusNotReady
	case s.run == nil:
		s.status = StatusReady
	default:
		s.status = StatusMeasuring
		s.measure(*hit)
	}
	return s.Snapshot()
}

// measure latches the start point on the first hit of a run, then
// stretches and turns the box to span from the start to the hit.
func (s *Session) measure(hit geometry.Vector3) {
	if s.run.start == nil {
		start := hit
		s.run.start = &start
		s.extent.SetWorldPosition(hit)
	}
	start := *s.run.start
	s.run.distance = start.Distance(hit)
	s.extent.SetExtent(s.run.distance)
	s.extent.SetYaw(AppliedYaw(start, hit))
}

// AppliedYaw returns the rotation, in radians about YawAxis, that faces
// the box's local +x from start toward target. The raw atan2 takes its
// arguments as start minus target, which points backward; negating and
// adding a half turn restores the correct facing. The formula is kept
// in this exact form: an algebraically equal variant with different
// signs turns the box away from the target.
func AppliedYaw(start, target geometry.Vector3) float64 {
	raw := math.Atan2(start.Z-target.Z, start.X-target.X)
	return -(raw + math.Pi)
}

// BoxPose is the renderable pose of the measurement box after a tick
type BoxPose struct {
	Visible         bool
	Position        geometry.Vector3 // anchor world position (the latched start)
	Offset          geometry.Vector3 // anchor-local placement of the center-origined box
	RotationAxis    geometry.Vector3
	RotationRadians float64
	Width           float64
	Height          float64
	Depth           float64
}

// Center returns the world-space center of the box: the anchor position
// plus the local placement offset rotated by the box yaw.
func (p BoxPose) Center() geometry.Vector3 {
	sin, cos := math.Sincos(p.RotationRadians)
	return p.Position.Add(geometry.NewVector3(
		p.Offset.X*cos+p.Offset.Z*sin,
		p.Offset.Y,
		-p.Offset.X*sin+p.Offset.Z*cos,
	))
}

// Snapshot is the read-only view of a session after a tick
type Snapshot struct {
	Status   Status
	Tracking TrackingQuality
	Distance float64 // meters
	Pose     BoxPose
}

// Snapshot returns the current session state without advancing it
func (s *Session) Snapshot() Snapshot {
	var distance float64
	if s.run != nil {
		distance = s.run.distance
	}
	size := s.extent.Bounds().Size()
	return Snapshot{
		Status:   s.status,
		Tracking: s.tracking,
		Distance: distance,
		Pose: BoxPose{
			Visible:         s.run != nil,
			Position:        s.extent.WorldPosition(),
			Offset:          s.extent.Placement(),
			RotationAxis:    YawAxis,
			RotationRadians: s.extent.Yaw(),
			Width:           s.extent.Width(),
			Height:          size.Y,
			Depth:           size.Z,
		},
	}
}
