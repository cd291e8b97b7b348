package measure

import (
	"fmt"

	"github.com/rkirkendall/armeasure/pkg/geometry"
)

// FormatDistance formats a distance in meters as the centimeter display
// string used by every shell.
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.1f cm", meters*100.0)
}

// FormatVector formats a 3D point for reports
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
