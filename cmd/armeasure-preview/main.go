// armeasure-preview is a desktop stand-in for the AR shell: the mouse
// ray plays the camera aim, the ground plane plays the detected
// surface, and the measurement box is rendered from the session pose
// exactly as a device renderer would.
package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rkirkendall/armeasure/pkg/measure"
)

type App struct {
	session  *measure.Session
	snapshot measure.Snapshot
	tracking measure.TrackingQuality

	camera         rl.Camera3D
	cameraDistance float32
	cameraAngleX   float32
	cameraAngleY   float32

	boxModel rl.Model
}

func main() {
	screenWidth := int32(1280)
	screenHeight := int32(800)
	rl.InitWindow(screenWidth, screenHeight, "ARMeasure - Measuring Preview")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	app := &App{
		session:        measure.NewSession(),
		tracking:       measure.TrackingNormal,
		cameraDistance: 4.0,
		cameraAngleX:   0.6,
		cameraAngleY:   0.4,
	}
	app.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 2, Z: 4},
		Target:     rl.Vector3{X: 0, Y: 0, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.boxModel = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	defer rl.UnloadModel(app.boxModel)

	app.snapshot = app.session.Snapshot()

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.updateCamera()

		// The per-frame shell contract: hit-test the aim point, then
		// tick the session with the result.
		hit := app.groundHit()
		app.snapshot = app.session.Tick(hit, app.tracking)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.camera)
		rl.DrawGrid(20, 0.25)
		app.drawHit(hit)
		app.drawBox(hit)
		rl.EndMode3D()

		app.drawHUD()
		rl.EndDrawing()
	}
}

func (app *App) handleInput() {
	// Camera orbit with right mouse drag; the left ray stays free for
	// aiming, matching a phone shell where aiming is just pointing.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		app.cameraAngleY += delta.X * 0.01
		app.cameraAngleX += delta.Y * 0.01
		if app.cameraAngleX > 1.5 {
			app.cameraAngleX = 1.5
		}
		if app.cameraAngleX < 0.05 {
			app.cameraAngleX = 0.05
		}
	}

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.cameraDistance *= 1.0 - wheel*0.05
		if app.cameraDistance < 1.0 {
			app.cameraDistance = 1.0
		}
		if app.cameraDistance > 20.0 {
			app.cameraDistance = 20.0
		}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		app.session.SetMeasuring(app.session.Mode() == measure.ModeIdle)
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.tracking = nextTracking(app.tracking)
	}
}

// nextTracking cycles through the simulated tracker states
func nextTracking(q measure.TrackingQuality) measure.TrackingQuality {
	order := []measure.TrackingQuality{
		measure.TrackingNormal,
		measure.TrackingLimitedInitializing,
		measure.TrackingLimitedExcessiveMotion,
		measure.TrackingLimitedInsufficientFeatures,
		measure.TrackingUnavailable,
	}
	for i, candidate := range order {
		if candidate == q {
			return order[(i+1)%len(order)]
		}
	}
	return measure.TrackingNormal
}

func (app *App) updateCamera() {
	x := app.cameraDistance * float32(math.Cos(float64(app.cameraAngleX))) * float32(math.Sin(float64(app.cameraAngleY)))
	y := app.cameraDistance * float32(math.Sin(float64(app.cameraAngleX)))
	z := app.cameraDistance * float32(math.Cos(float64(app.cameraAngleX))) * float32(math.Cos(float64(app.cameraAngleY)))

	app.camera.Position = rl.Vector3{X: x, Y: y, Z: z}
	app.camera.Target = rl.Vector3{X: 0, Y: 0, Z: 0}
}

func (app *App) drawHUD() {
	rl.DrawText("ARMeasure preview", 20, 20, 20, rl.White)
	rl.DrawText("SPACE measure on/off   T tracking   right-drag orbit   wheel zoom", 20, 48, 10, rl.LightGray)

	statusColor := rl.LightGray
	switch app.snapshot.Status {
	case measure.StatusReady:
		statusColor = rl.Green
	case measure.StatusMeasuring:
		statusColor = rl.Yellow
	}
	rl.DrawText(app.snapshot.Status.String(), 20, 76, 20, statusColor)
	rl.DrawText(app.snapshot.Tracking.String(), 20, 102, 10, rl.LightGray)

	if app.snapshot.Status == measure.StatusMeasuring {
		label := measure.FormatDistance(app.snapshot.Distance)
		fontSize := int32(40)
		textWidth := rl.MeasureText(label, fontSize)
		x := int32(rl.GetScreenWidth())/2 - textWidth/2
		rl.DrawText(label, x, 700, fontSize, rl.Yellow)
	}
}
