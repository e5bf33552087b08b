package mesh

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithMeshName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithMeshName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithPositions is an option builder that sets the vertex positions of the Mesh.
//
// Parameters:
//   - positions: the position data
//
// Returns:
//   - MeshBuilderOption: a function that applies the positions option to a mesh
func WithPositions(positions [][3]float32) MeshBuilderOption {
	return func(m *mesh) {
		m.positions = positions
	}
}

// WithNormals is an option builder that sets the vertex normals of the Mesh.
//
// Parameters:
//   - normals: the normal data
//
// Returns:
//   - MeshBuilderOption: a function that applies the normals option to a mesh
func WithNormals(normals [][3]float32) MeshBuilderOption {
	return func(m *mesh) {
		m.normals = normals
	}
}

// WithUVs is an option builder that sets the texture coordinates of the Mesh.
//
// Parameters:
//   - uvs: the UV data
//
// Returns:
//   - MeshBuilderOption: a function that applies the UVs option to a mesh
func WithUVs(uvs [][2]float32) MeshBuilderOption {
	return func(m *mesh) {
		m.uvs = uvs
	}
}

// WithIndices is an option builder that sets the triangle index data of the Mesh.
//
// Parameters:
//   - indices: the index data
//
// Returns:
//   - MeshBuilderOption: a function that applies the indices option to a mesh
func WithIndices(indices []uint32) MeshBuilderOption {
	return func(m *mesh) {
		m.indices = indices
	}
}

// WithMeshBoundingRadius is an option builder that manually sets the bounding
// sphere radius. Use this to override the auto-computed value when a manually
// tuned conservative bound is preferred.
//
// Parameters:
//   - radius: the bounding radius to set
//
// Returns:
//   - MeshBuilderOption: a function that applies the bounding radius option to a mesh
func WithMeshBoundingRadius(radius float32) MeshBuilderOption {
	return func(m *mesh) {
		m.boundingRadius = radius
	}
}
