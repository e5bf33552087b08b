package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Primitive shape names accepted by Primitive and by shape-driven render
// components. PrimitiveNames lists them in a stable order.
const (
	PrimitiveBox      = "box"
	PrimitiveSphere   = "sphere"
	PrimitivePlane    = "plane"
	PrimitiveCylinder = "cylinder"
	PrimitiveCone     = "cone"
	PrimitiveCapsule  = "capsule"
	PrimitiveTorus    = "torus"
)

// PrimitiveNames is the fixed set of procedural shape names.
var PrimitiveNames = []string{
	PrimitiveBox, PrimitiveSphere, PrimitivePlane, PrimitiveCylinder,
	PrimitiveCone, PrimitiveCapsule, PrimitiveTorus,
}

const (
	segments     = 16  // latitudinal/radial tessellation
	ringSegments = 24  // torus ring tessellation
	tubeRadius   = 0.2 // torus tube radius
	ringRadius   = 0.3 // torus ring radius
)

// Primitive generates the procedural mesh for one of the fixed shape names.
//
// Parameters:
//   - kind: one of the Primitive* shape names
//
// Returns:
//   - Mesh: the generated unit-scale mesh
//   - error: error if the shape name is not recognized
func Primitive(kind string) (Mesh, error) {
	switch kind {
	case PrimitiveBox:
		return box(), nil
	case PrimitiveSphere:
		return sphere(0.5, 0), nil
	case PrimitivePlane:
		return plane(), nil
	case PrimitiveCylinder:
		return lathe(kind, 0.5, 0.5, 1), nil
	case PrimitiveCone:
		return lathe(kind, 0.5, 0, 1), nil
	case PrimitiveCapsule:
		return capsule(), nil
	case PrimitiveTorus:
		return torus(), nil
	default:
		return nil, fmt.Errorf("unknown primitive shape: %q", kind)
	}
}

// box builds a unit cube centered on the origin with per-face normals.
func box() Mesh {
	he := float32(0.5)
	faces := [6]struct {
		normal [3]float32
		u, v   [3]float32
	}{
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	}

	var positions, normals [][3]float32
	var uvs [][2]float32
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(positions))
		for _, corner := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			positions = append(positions, [3]float32{
				he * (f.normal[0] + corner[0]*f.u[0] + corner[1]*f.v[0]),
				he * (f.normal[1] + corner[0]*f.u[1] + corner[1]*f.v[1]),
				he * (f.normal[2] + corner[0]*f.u[2] + corner[1]*f.v[2]),
			})
			normals = append(normals, f.normal)
			uvs = append(uvs, [2]float32{(corner[0] + 1) / 2, (corner[1] + 1) / 2})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return NewMesh(
		WithMeshName(PrimitiveBox),
		WithPositions(positions),
		WithNormals(normals),
		WithUVs(uvs),
		WithIndices(indices),
	)
}

// plane builds a unit quad on the XZ plane facing +Y.
func plane() Mesh {
	he := float32(0.5)
	return NewMesh(
		WithMeshName(PrimitivePlane),
		WithPositions([][3]float32{{-he, 0, -he}, {he, 0, -he}, {he, 0, he}, {-he, 0, he}}),
		WithNormals([][3]float32{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}}),
		WithUVs([][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}),
		WithIndices([]uint32{0, 2, 1, 0, 3, 2}),
	)
}

// sphere builds a lat/long sphere of the given radius. yOffsetSplit shifts the
// upper and lower hemispheres apart, which is how the capsule is produced.
func sphere(radius, yOffsetSplit float32) Mesh {
	var positions, normals [][3]float32
	var uvs [][2]float32
	var indices []uint32

	for lat := 0; lat <= segments; lat++ {
		theta := float32(lat) * math32.Pi / segments
		sinT, cosT := math32.Sin(theta), math32.Cos(theta)
		yShift := yOffsetSplit
		if lat > segments/2 {
			yShift = -yOffsetSplit
		}
		for lon := 0; lon <= segments; lon++ {
			phi := float32(lon) * 2 * math32.Pi / segments
			sinP, cosP := math32.Sin(phi), math32.Cos(phi)
			n := [3]float32{sinT * cosP, cosT, sinT * sinP}
			positions = append(positions, [3]float32{n[0] * radius, n[1]*radius + yShift, n[2] * radius})
			normals = append(normals, n)
			uvs = append(uvs, [2]float32{float32(lon) / segments, float32(lat) / segments})
		}
	}
	stride := uint32(segments + 1)
	for lat := uint32(0); lat < segments; lat++ {
		for lon := uint32(0); lon < segments; lon++ {
			a := lat*stride + lon
			b := a + stride
			indices = append(indices, a, b, a+1, b, b+1, a+1)
		}
	}

	name := PrimitiveSphere
	if yOffsetSplit > 0 {
		name = PrimitiveCapsule
	}
	return NewMesh(
		WithMeshName(name),
		WithPositions(positions),
		WithNormals(normals),
		WithUVs(uvs),
		WithIndices(indices),
	)
}

// capsule builds a sphere whose hemispheres are pulled apart by the cylinder
// half-height.
func capsule() Mesh {
	return sphere(0.3, 0.35)
}

// lathe builds a surface of revolution between a bottom and top radius with
// flat end caps, producing cylinders (equal radii) and cones (top radius 0).
func lathe(name string, bottomRadius, topRadius, height float32) Mesh {
	var positions, normals [][3]float32
	var uvs [][2]float32
	var indices []uint32

	halfH := height / 2
	slope := (bottomRadius - topRadius) / height
	for ring := 0; ring <= 1; ring++ {
		radius := bottomRadius
		y := -halfH
		if ring == 1 {
			radius = topRadius
			y = halfH
		}
		for seg := 0; seg <= segments; seg++ {
			phi := float32(seg) * 2 * math32.Pi / segments
			sinP, cosP := math32.Sin(phi), math32.Cos(phi)
			positions = append(positions, [3]float32{radius * cosP, y, radius * sinP})
			n := [3]float32{cosP, slope, sinP}
			invLen := 1 / math32.Sqrt(n[0]*n[0]+n[1]*n[1]+n[2]*n[2])
			normals = append(normals, [3]float32{n[0] * invLen, n[1] * invLen, n[2] * invLen})
			uvs = append(uvs, [2]float32{float32(seg) / segments, float32(ring)})
		}
	}
	stride := uint32(segments + 1)
	for seg := uint32(0); seg < segments; seg++ {
		a := seg
		b := a + stride
		indices = append(indices, a, a+1, b, b, a+1, b+1)
	}

	// End caps: a center vertex fanned to each ring vertex.
	for ring := 0; ring <= 1; ring++ {
		radius := bottomRadius
		y := -halfH
		ny := float32(-1)
		if ring == 1 {
			radius = topRadius
			y = halfH
			ny = 1
		}
		if radius == 0 {
			continue
		}
		center := uint32(len(positions))
		positions = append(positions, [3]float32{0, y, 0})
		normals = append(normals, [3]float32{0, ny, 0})
		uvs = append(uvs, [2]float32{0.5, 0.5})
		for seg := 0; seg <= segments; seg++ {
			phi := float32(seg) * 2 * math32.Pi / segments
			positions = append(positions, [3]float32{radius * math32.Cos(phi), y, radius * math32.Sin(phi)})
			normals = append(normals, [3]float32{0, ny, 0})
			uvs = append(uvs, [2]float32{(math32.Cos(phi) + 1) / 2, (math32.Sin(phi) + 1) / 2})
		}
		for seg := uint32(0); seg < segments; seg++ {
			if ring == 0 {
				indices = append(indices, center, center+1+seg, center+2+seg)
			} else {
				indices = append(indices, center, center+2+seg, center+1+seg)
			}
		}
	}

	return NewMesh(
		WithMeshName(name),
		WithPositions(positions),
		WithNormals(normals),
		WithUVs(uvs),
		WithIndices(indices),
	)
}

// torus builds a torus from the package ring and tube radii.
func torus() Mesh {
	var positions, normals [][3]float32
	var uvs [][2]float32
	var indices []uint32

	for ring := 0; ring <= ringSegments; ring++ {
		theta := float32(ring) * 2 * math32.Pi / ringSegments
		sinT, cosT := math32.Sin(theta), math32.Cos(theta)
		for seg := 0; seg <= segments; seg++ {
			phi := float32(seg) * 2 * math32.Pi / segments
			sinP, cosP := math32.Sin(phi), math32.Cos(phi)
			positions = append(positions, [3]float32{
				(ringRadius + tubeRadius*cosP) * cosT,
				tubeRadius * sinP,
				(ringRadius + tubeRadius*cosP) * sinT,
			})
			normals = append(normals, [3]float32{cosP * cosT, sinP, cosP * sinT})
			uvs = append(uvs, [2]float32{float32(ring) / ringSegments, float32(seg) / segments})
		}
	}
	stride := uint32(segments + 1)
	for ring := uint32(0); ring < ringSegments; ring++ {
		for seg := uint32(0); seg < segments; seg++ {
			a := ring*stride + seg
			b := a + stride
			indices = append(indices, a, b, a+1, b, b+1, a+1)
		}
	}

	return NewMesh(
		WithMeshName(PrimitiveTorus),
		WithPositions(positions),
		WithNormals(normals),
		WithUVs(uvs),
		WithIndices(indices),
	)
}
