package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rkirkendall/armeasure/pkg/geometry"
	"github.com/rkirkendall/armeasure/pkg/measure"
)

// minDrawSize keeps degenerate boxes visible; the core reports the true
// degenerate size, clamping is purely presentation.
const minDrawSize = 0.01

// groundHit casts the mouse ray against the ground plane, the preview's
// stand-in for the detected surface. Returns nil when the tracker is
// down or the ray never reaches the plane, mirroring a failed hit-test.
func (app *App) groundHit() *geometry.Vector3 {
	if app.tracking == measure.TrackingUnavailable {
		return nil
	}

	ray := rl.GetMouseRay(rl.GetMousePosition(), app.camera)
	origin := geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z))
	dir := geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z))

	if math.Abs(dir.Y) < 1e-9 {
		return nil
	}
	t := -origin.Y / dir.Y
	if t <= 0 {
		return nil
	}

	hit := origin.Add(dir.Mul(t))
	return &hit
}

// drawHit marks the current aim point on the surface
func (app *App) drawHit(hit *geometry.Vector3) {
	if hit == nil {
		return
	}
	rl.DrawSphere(toRaylib(*hit), 0.02, rl.NewColor(255, 255, 0, 180))
}

// drawBox renders the measurement box from the session pose. The last
// box is kept on screen dimmed after a run ends.
func (app *App) drawBox(hit *geometry.Vector3) {
	pose := app.snapshot.Pose
	if !pose.Visible && pose.Width == 0 {
		return
	}

	color := rl.NewColor(80, 180, 255, 200)
	if !pose.Visible {
		color = rl.Fade(color, 0.35)
	}

	scale := rl.Vector3{
		X: drawSize(pose.Width),
		Y: drawSize(pose.Height),
		Z: drawSize(pose.Depth),
	}
	angleDeg := float32(pose.RotationRadians * 180.0 / math.Pi)

	rl.DrawModelEx(app.boxModel, toRaylib(pose.Center()), toRaylib(pose.RotationAxis), angleDeg, scale, color)

	// Anchor marker at the latched start point.
	rl.DrawSphere(toRaylib(pose.Position), 0.025, rl.Green)
	if pose.Visible && hit != nil {
		rl.DrawLine3D(toRaylib(pose.Position), toRaylib(*hit), rl.Yellow)
	}
}

func drawSize(v float64) float32 {
	if v < minDrawSize {
		return float32(minDrawSize)
	}
	return float32(v)
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
