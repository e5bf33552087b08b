package mesh

import (
	"github.com/Carmen-Shannon/lumen-go/engine/texture"
)

// material is the implementation of the Material interface.
type material struct {
	name           string
	baseColor      [4]float32
	metallic       float32
	roughness      float32
	diffuseTexture texture.Texture
}

// Material defines the interface for a render material, encapsulating surface
// properties and the texture reference carried by mesh instances.
//
// Surface properties (name, base color, metallic, roughness) are set at load
// time and are read-only through this interface. The diffuse texture slot is
// mutable so a texture decoded later in the pipeline can be attached after
// construction.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// DiffuseTexture retrieves the diffuse/albedo texture, or nil if none is set.
	//
	// Returns:
	//   - texture.Texture: the diffuse texture, or nil
	DiffuseTexture() texture.Texture

	// SetDiffuseTexture attaches a diffuse/albedo texture to this material.
	//
	// Parameters:
	//   - tex: the texture to attach, or nil to detach
	SetDiffuseTexture(tex texture.Texture)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of MaterialBuilderOption functions to configure the Material
//
// Returns:
//   - Material: a new instance of Material configured with the provided options
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: [4]float32{1, 1, 1, 1},
		roughness: 1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) DiffuseTexture() texture.Texture {
	return m.diffuseTexture
}

func (m *material) SetDiffuseTexture(tex texture.Texture) {
	m.diffuseTexture = tex
}
