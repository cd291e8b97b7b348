package measure

import (
	"math"

	"github.com/rkirkendall/armeasure/pkg/geometry"
)

// BoxThickness is the fixed height and depth of the measurement box in
// meters. Only the x axis is driven by the measured length.
const BoxThickness = 0.001

// ExtentModel owns the measurement box: an axis-aligned bounding box in
// anchor-local space plus the anchor's world position and yaw. The box
// grows along local +x from its min corner; width, pivot offset and
// placement are derived from the stored corners on every read.
type ExtentModel struct {
	bounds        geometry.BoundingBox
	worldPosition geometry.Vector3
	yaw           float64
}

// NewExtentModel creates an extent model holding a zero-length box at
// the origin.
func NewExtentModel() *ExtentModel {
	m := &ExtentModel{}
	m.Reset(geometry.Vector3{})
	return m
}

// Reset returns the box to a zero-length state with its anchor placed
// at origin.
func (m *ExtentModel) Reset(origin geometry.Vector3) {
	m.bounds.SetCorners(geometry.Vector3{}, geometry.NewVector3(0, BoxThickness, BoxThickness))
	m.worldPosition = origin
	m.yaw = 0
}

// SetCorners stores the two box corners, normalized so they may be
// passed in either order.
func (m *ExtentModel) SetCorners(a, b geometry.Vector3) {
	m.bounds.SetCorners(a, b)
}

// SetExtent replaces the max corner's X with length and re-normalizes
// the corners. The y/z components keep their last-set values, so a
// negative length swaps which corner is the min along x without
// disturbing the box cross-section.
func (m *ExtentModel) SetExtent(length float64) {
	maxCorner := m.bounds.Max
	maxCorner.X = length
	m.bounds.SetCorners(m.bounds.Min, maxCorner)
}

// Bounds returns the stored, normalized box corners.
func (m *ExtentModel) Bounds() geometry.BoundingBox {
	return m.bounds
}

// Width returns the box extent along x. The corners are normalized on
// every write, but the absolute value keeps the width nonnegative for
// any stored pair.
func (m *ExtentModel) Width() float64 {
	return math.Abs(m.bounds.Max.X - m.bounds.Min.X)
}

// PivotOffset returns half the extent along x. A box geometry modeled
// symmetric about its own origin, translated by the min corner plus
// this offset, spans exactly from the min to the max corner.
func (m *ExtentModel) PivotOffset() float64 {
	return (m.bounds.Max.X - m.bounds.Min.X) / 2.0
}

// Placement returns the anchor-local point where a center-origined box
// geometry must be placed: the min corner translated by the pivot
// offset along x.
func (m *ExtentModel) Placement() geometry.Vector3 {
	return m.bounds.Min.Add(geometry.NewVector3(m.PivotOffset(), 0, 0))
}

// SetWorldPosition moves the anchor in world space
func (m *ExtentModel) SetWorldPosition(p geometry.Vector3) {
	m.worldPosition = p
}

// WorldPosition returns the anchor's world-space position
func (m *ExtentModel) WorldPosition() geometry.Vector3 {
	return m.worldPosition
}

// SetYaw sets the anchor's rotation about the vertical axis, in radians
func (m *ExtentModel) SetYaw(radians float64) {
	m.yaw = radians
}

// Yaw returns the anchor's rotation about the vertical axis, in radians
func (m *ExtentModel) Yaw() float64 {
	return m.yaw
}
