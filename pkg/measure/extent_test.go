package measure

import (
	"math"
	"testing"

	"github.com/rkirkendall/armeasure/pkg/geometry"
)

func TestExtentModelReset(t *testing.T) {
	m := NewExtentModel()
	m.SetExtent(3.5)
	m.SetWorldPosition(geometry.NewVector3(1, 2, 3))
	m.SetYaw(1.0)

	m.Reset(geometry.Vector3{})

	if m.Width() != 0 {
		t.Errorf("Width after reset: expected 0, got %v", m.Width())
	}
	if m.WorldPosition() != (geometry.Vector3{}) {
		t.Errorf("WorldPosition after reset: expected origin, got %v", m.WorldPosition())
	}
	if m.Yaw() != 0 {
		t.Errorf("Yaw after reset: expected 0, got %v", m.Yaw())
	}

	size := m.Bounds().Size()
	if size.Y != BoxThickness || size.Z != BoxThickness {
		t.Errorf("cross-section after reset: expected %v, got %v x %v", BoxThickness, size.Y, size.Z)
	}
}

func TestExtentModelSetCornersNormalizes(t *testing.T) {
	a := geometry.NewVector3(2, -1, 4)
	b := geometry.NewVector3(-3, 5, 0)

	m1 := NewExtentModel()
	m1.SetCorners(a, b)
	m2 := NewExtentModel()
	m2.SetCorners(b, a)

	if m1.Bounds() != m2.Bounds() {
		t.Errorf("SetCorners order dependent: %v vs %v", m1.Bounds(), m2.Bounds())
	}
	if m1.Bounds().Min != a.Min(b) {
		t.Errorf("Min corner: expected %v, got %v", a.Min(b), m1.Bounds().Min)
	}
}

func TestExtentModelSetExtentPositive(t *testing.T) {
	m := NewExtentModel()
	m.SetExtent(2.0)

	if m.Width() != 2.0 {
		t.Errorf("Width: expected 2.0, got %v", m.Width())
	}
	if m.PivotOffset() != 1.0 {
		t.Errorf("PivotOffset: expected 1.0, got %v", m.PivotOffset())
	}

	// The cross-section must not be disturbed by extent updates.
	size := m.Bounds().Size()
	if size.Y != BoxThickness || size.Z != BoxThickness {
		t.Errorf("cross-section changed: got %v x %v", size.Y, size.Z)
	}
}

// A center-origined geometry translated by min corner + pivot offset
// must span exactly from minX to minX + |extent|, for negative extents
// included.
func TestExtentModelPivotPlacement(t *testing.T) {
	extents := []float64{0, 0.5, 2.0, -1.5, -0.001}

	for _, e := range extents {
		m := NewExtentModel()
		m.SetExtent(e)

		minX := m.Bounds().Min.X
		nearFace := m.Placement().X - m.Width()/2.0
		farFace := m.Placement().X + m.Width()/2.0

		if math.Abs(nearFace-minX) > 1e-12 {
			t.Errorf("extent %v: near face at %v, expected %v", e, nearFace, minX)
		}
		if math.Abs(farFace-(minX+math.Abs(e))) > 1e-12 {
			t.Errorf("extent %v: far face at %v, expected %v", e, farFace, minX+math.Abs(e))
		}
	}
}

func TestExtentModelNegativeExtentSwapsCorners(t *testing.T) {
	m := NewExtentModel()
	m.SetExtent(-2.0)

	if m.Bounds().Min.X != -2.0 {
		t.Errorf("Min.X: expected -2.0, got %v", m.Bounds().Min.X)
	}
	if m.Bounds().Max.X != 0.0 {
		t.Errorf("Max.X: expected 0.0, got %v", m.Bounds().Max.X)
	}
	if m.Width() != 2.0 {
		t.Errorf("Width: expected 2.0, got %v", m.Width())
	}
}

func TestExtentModelZeroExtentDegenerate(t *testing.T) {
	m := NewExtentModel()
	m.SetExtent(0)

	if m.Width() != 0 {
		t.Errorf("Width: expected 0, got %v", m.Width())
	}
	if m.PivotOffset() != 0 {
		t.Errorf("PivotOffset: expected 0, got %v", m.PivotOffset())
	}
	if m.Placement() != (geometry.Vector3{}) {
		t.Errorf("Placement: expected origin, got %v", m.Placement())
	}
}
