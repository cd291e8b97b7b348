// Package replay records and replays the per-frame input a measuring
// shell feeds the core, one JSON object per line.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rkirkendall/armeasure/pkg/geometry"
	"github.com/rkirkendall/armeasure/pkg/measure"
)

// Frame is one recorded shell frame. Hit is omitted when no surface was
// detected at the aim point; Measuring, when present, is a mode toggle
// applied before the frame is ticked.
type Frame struct {
	T         float64     `json:"t"`
	Hit       *[3]float64 `json:"hit,omitempty"`
	Tracking  string      `json:"tracking,omitempty"`
	Measuring *bool       `json:"measuring,omitempty"`
}

// HitPoint returns the frame's hit as a geometry point, nil when the
// frame carried none.
func (f Frame) HitPoint() *geometry.Vector3 {
	if f.Hit == nil {
		return nil
	}
	v := geometry.NewVector3(f.Hit[0], f.Hit[1], f.Hit[2])
	return &v
}

// ReadFrames parses a JSONL frame log. Blank lines are skipped.
func ReadFrames(r io.Reader) ([]Frame, error) {
	var frames []Frame
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			return nil, fmt.Errorf("frame log line %d: %w", line, err)
		}
		frames = append(frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading frame log: %w", err)
	}
	return frames, nil
}

// Recorder appends frames to a log as they arrive
type Recorder struct {
	enc *json.Encoder
	w   *bufio.Writer
}

// NewRecorder creates a recorder writing JSONL frames to w
func NewRecorder(w io.Writer) *Recorder {
	bw := bufio.NewWriter(w)
	return &Recorder{enc: json.NewEncoder(bw), w: bw}
}

// Record appends one frame to the log
func (r *Recorder) Record(frame Frame) error {
	if err := r.enc.Encode(frame); err != nil {
		return fmt.Errorf("recording frame: %w", err)
	}
	return nil
}

// Flush writes any buffered frames through to the underlying writer
func (r *Recorder) Flush() error {
	return r.w.Flush()
}

// Report summarizes a replayed measuring run
type Report struct {
	Frames        int
	HitFrames     int
	FinalStatus   measure.Status
	FinalDistance float64
	MaxDistance   float64
	SweptBounds   geometry.BoundingBox
}

// Run drives a fresh session through the frames in order and reports
// what the measurement ended up as. observe, when non-nil, is called
// with each frame's resulting snapshot.
func Run(frames []Frame, observe func(i int, frame Frame, snap measure.Snapshot)) (Report, error) {
	session := measure.NewSession()
	report := Report{SweptBounds: geometry.NewBoundingBox()}

	for i, frame := range frames {
		quality, err := measure.ParseTrackingQuality(frame.Tracking)
		if err != nil {
			return Report{}, fmt.Errorf("frame %d: %w", i+1, err)
		}
		if frame.Measuring != nil {
			session.SetMeasuring(*frame.Measuring)
		}

		hit := frame.HitPoint()
		snap := session.Tick(hit, quality)
		if observe != nil {
			observe(i, frame, snap)
		}

		report.Frames++
		if hit != nil {
			report.HitFrames++
			report.SweptBounds.Extend(*hit)
		}
		report.FinalStatus = snap.Status
		report.FinalDistance = snap.Distance
		if snap.Distance > report.MaxDistance {
			report.MaxDistance = snap.Distance
		}
	}
	return report, nil
}
