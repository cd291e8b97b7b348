package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxSetCorners(t *testing.T) {
	var bbox BoundingBox
	bbox.SetCorners(NewVector3(4, 0, -2), NewVector3(-1, 3, 5))

	expectedMin := NewVector3(-1, 0, -2)
	expectedMax := NewVector3(4, 3, 5)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxSetCornersOrderIndependent(t *testing.T) {
	a := NewVector3(2, -1, 7)
	b := NewVector3(-3, 4, 0)

	var forward, reversed BoundingBox
	forward.SetCorners(a, b)
	reversed.SetCorners(b, a)

	if forward != reversed {
		t.Errorf("SetCorners order dependent: %v vs %v", forward, reversed)
	}
}

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxSize(t *testing.T) {
	var bbox BoundingBox
	bbox.SetCorners(NewVector3(0, 0, 0), NewVector3(10, 20, 30))

	size := bbox.Size()
	expected := NewVector3(10, 20, 30)

	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	var bbox BoundingBox
	bbox.SetCorners(NewVector3(0, 0, 0), NewVector3(10, 20, 30))

	center := bbox.Center()
	expected := NewVector3(5, 10, 15)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestBoundingBoxDiagonal(t *testing.T) {
	var bbox BoundingBox
	bbox.SetCorners(NewVector3(0, 0, 0), NewVector3(3, 0, 4))

	diagonal := bbox.Diagonal()
	expected := 5.0

	if math.Abs(diagonal-expected) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", expected, diagonal)
	}
}
