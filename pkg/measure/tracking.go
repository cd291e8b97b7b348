package measure

import "fmt"

// TrackingQuality is the tracker's confidence classification for the
// current camera pose estimate, as reported by the shell.
type TrackingQuality int

const (
	TrackingUnavailable TrackingQuality = iota
	TrackingNormal
	TrackingLimitedExcessiveMotion
	TrackingLimitedInsufficientFeatures
	TrackingLimitedInitializing
)

// String returns the display text shown to the user
func (q TrackingQuality) String() string {
	switch q {
	case TrackingNormal:
		return "Tracking normal"
	case TrackingLimitedExcessiveMotion:
		return "Tracking limited: excessive motion"
	case TrackingLimitedInsufficientFeatures:
		return "Tracking limited: insufficient features"
	case TrackingLimitedInitializing:
		return "Tracking limited: initializing"
	default:
		return "Tracking unavailable"
	}
}

// Name returns the wire token used in frame logs and bridge messages
func (q TrackingQuality) Name() string {
	switch q {
	case TrackingNormal:
		return "normal"
	case TrackingLimitedExcessiveMotion:
		return "excessive_motion"
	case TrackingLimitedInsufficientFeatures:
		return "insufficient_features"
	case TrackingLimitedInitializing:
		return "initializing"
	default:
		return "unavailable"
	}
}

// ParseTrackingQuality maps a wire token back to a quality value
func ParseTrackingQuality(name string) (TrackingQuality, error) {
	switch name {
	case "unavailable", "":
		return TrackingUnavailable, nil
	case "normal":
		return TrackingNormal, nil
	case "excessive_motion":
		return TrackingLimitedExcessiveMotion, nil
	case "insufficient_features":
		return TrackingLimitedInsufficientFeatures, nil
	case "initializing":
		return TrackingLimitedInitializing, nil
	default:
		return TrackingUnavailable, fmt.Errorf("unknown tracking quality %q", name)
	}
}

// Status classifies what the session can do this frame
type Status int

const (
	StatusNotReady Status = iota // no surface under the aim point
	StatusReady                  // surface detected, not measuring
	StatusMeasuring              // actively stretching the box
)

// String returns the display text shown to the user
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusMeasuring:
		return "Measuring"
	default:
		return "Not ready"
	}
}

// Name returns the wire token used in bridge messages
func (s Status) Name() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusMeasuring:
		return "measuring"
	default:
		return "not_ready"
	}
}
