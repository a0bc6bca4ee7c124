package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleSignedVolume(t *testing.T) {
	// Tetrahedron spanned by the unit axes and the origin has volume 1/6
	tri := NewTriangle(
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	)

	volume := tri.SignedVolume()
	expected := 1.0 / 6.0

	if math.Abs(volume-expected) > 1e-10 {
		t.Errorf("SignedVolume failed: expected %v, got %v", expected, volume)
	}
}

func TestTriangleSignedVolumeWindingFlipsSign(t *testing.T) {
	tri := NewTriangle(
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	)
	flipped := NewTriangle(tri.V2, tri.V1, tri.V3)

	if math.Abs(tri.SignedVolume()+flipped.SignedVolume()) > 1e-10 {
		t.Errorf("winding flip should negate signed volume: %v vs %v",
			tri.SignedVolume(), flipped.SignedVolume())
	}
}
