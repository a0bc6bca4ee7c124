// Package mesh holds the decoded triangle-mesh data model and the
// enclosed-volume estimator built on it.
package mesh

import (
	"fmt"
	"math"

	"github.com/printfab/printcost/pkg/geometry"
)

// Mesh is an immutable triangle mesh: vertex positions plus an optional
// triangle index. When Indices is nil, triangles are formed from
// consecutive vertex triples instead.
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Indices  []int
}

// New creates an unindexed mesh from a flat vertex sequence
func New(name string, vertices []geometry.Vector3) *Mesh {
	return &Mesh{Name: name, Vertices: vertices}
}

// NewIndexed creates a mesh whose triangles reference the vertex slice
// through an index buffer. The index length must be a multiple of 3 and
// every index must be in range.
func NewIndexed(name string, vertices []geometry.Vector3, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("index %d out of range for %d vertices", idx, len(vertices))
		}
	}
	return &Mesh{Name: name, Vertices: vertices, Indices: indices}, nil
}

// TriangleCount returns the number of triangles in the mesh. A vertex
// or index sequence whose length is not a multiple of 3 forms no
// triangles at all, so degenerate input measures as empty rather than
// erroring.
func (m *Mesh) TriangleCount() int {
	if m.Indices != nil {
		if len(m.Indices)%3 != 0 {
			return 0
		}
		return len(m.Indices) / 3
	}
	if len(m.Vertices)%3 != 0 {
		return 0
	}
	return len(m.Vertices) / 3
}

// Triangle returns the i-th triangle, resolving indices when present
func (m *Mesh) Triangle(i int) geometry.Triangle {
	if m.Indices != nil {
		return geometry.NewTriangle(
			m.Vertices[m.Indices[3*i]],
			m.Vertices[m.Indices[3*i+1]],
			m.Vertices[m.Indices[3*i+2]],
		)
	}
	return geometry.NewTriangle(
		m.Vertices[3*i],
		m.Vertices[3*i+1],
		m.Vertices[3*i+2],
	)
}

// VolumeMm3 returns the enclosed volume of the mesh in cubic millimeters,
// computed as the absolute value of the signed-tetrahedron sum over all
// triangles. The result is exact for closed, consistently wound meshes
// and independent of winding direction; non-watertight meshes silently
// underestimate. Degenerate input yields 0, not an error.
func (m *Mesh) VolumeMm3() float64 {
	sum := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		sum += m.Triangle(i).SignedVolume()
	}
	return math.Abs(sum)
}

// SurfaceArea returns the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	totalArea := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		totalArea += m.Triangle(i).Area()
	}
	return totalArea
}
