// Package mesh holds CPU-side drawable geometry: meshes, the per-draw mesh
// instance with its render flags, materials, and the procedural primitive
// generators used by shape-driven render components.
package mesh

import (
	"github.com/chewxy/math32"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name           string
	positions      [][3]float32
	normals        [][3]float32
	uvs            [][2]float32
	indices        []uint32
	boundingRadius float32
}

// Mesh defines the interface for a single drawable geometry buffer set.
// It is produced by the container loader or a procedural primitive generator
// and shared between the mesh instances that draw it.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Positions retrieves the vertex positions.
	//
	// Returns:
	//   - [][3]float32: the position data
	Positions() [][3]float32

	// Normals retrieves the vertex normals, or nil if absent.
	//
	// Returns:
	//   - [][3]float32: the normal data
	Normals() [][3]float32

	// UVs retrieves the texture coordinates, or nil if absent.
	//
	// Returns:
	//   - [][2]float32: the UV data
	UVs() [][2]float32

	// Indices retrieves the triangle index data.
	//
	// Returns:
	//   - []uint32: the index data
	Indices() []uint32

	// BoundingRadius returns the bounding sphere radius for this mesh, measured
	// as the maximum vertex distance from the origin. Used by frustum culling.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh instance with the specified options applied.
// The bounding radius is computed from the positions unless overridden.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, option := range options {
		option(m)
	}
	if m.boundingRadius == 0 {
		m.boundingRadius = computeBoundingRadius(m.positions)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Positions() [][3]float32 {
	return m.positions
}

func (m *mesh) Normals() [][3]float32 {
	return m.normals
}

func (m *mesh) UVs() [][2]float32 {
	return m.uvs
}

func (m *mesh) Indices() []uint32 {
	return m.indices
}

func (m *mesh) BoundingRadius() float32 {
	return m.boundingRadius
}

// computeBoundingRadius returns the maximum vertex distance from the origin.
func computeBoundingRadius(positions [][3]float32) float32 {
	var maxSq float32
	for _, p := range positions {
		sq := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if sq > maxSq {
			maxSq = sq
		}
	}
	return math32.Sqrt(maxSq)
}

// Area sums the triangle surface area of a mesh. Lightmap allocation uses
// this to size texture space per primitive.
//
// Parameters:
//   - m: the mesh to measure
//
// Returns:
//   - float32: the total surface area
func Area(m Mesh) float32 {
	if m == nil {
		return 0
	}
	positions := m.Positions()
	indices := m.Indices()
	var total float32
	for i := 0; i+2 < len(indices); i += 3 {
		a := positions[indices[i]]
		b := positions[indices[i+1]]
		c := positions[indices[i+2]]
		ab := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		ac := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		cx := ab[1]*ac[2] - ab[2]*ac[1]
		cy := ab[2]*ac[0] - ab[0]*ac[2]
		cz := ab[0]*ac[1] - ab[1]*ac[0]
		total += 0.5 * math32.Sqrt(cx*cx+cy*cy+cz*cz)
	}
	return total
}
