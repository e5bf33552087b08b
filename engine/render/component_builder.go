package render

import (
	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
)

// ComponentBuilderOption is a functional option for configuring a Component via
// NewComponent.
type ComponentBuilderOption func(*component)

// WithType is an option builder that sets the geometry source of the Component.
// Unlike SetType this applies no instance synthesis; pair it with
// WithComponentMaterial and a later SetType or SetMeshInstances call.
//
// Parameters:
//   - typ: TypeAsset or one of the mesh.Primitive* shape names
//
// Returns:
//   - ComponentBuilderOption: a function that applies the type option to a component
func WithType(typ string) ComponentBuilderOption {
	return func(c *component) {
		c.typ = typ
	}
}

// WithComponentEnabled is an option builder that sets the initial enabled flag
// of the Component. An enabled component binds scene membership as soon as its
// node reports enabled.
//
// Parameters:
//   - enabled: the initial enabled state
//
// Returns:
//   - ComponentBuilderOption: a function that applies the enabled option to a component
func WithComponentEnabled(enabled bool) ComponentBuilderOption {
	return func(c *component) {
		c.enabled = enabled
	}
}

// WithCastShadows is an option builder that sets the initial cast-shadows flag.
//
// Parameters:
//   - cast: the initial cast-shadows state
//
// Returns:
//   - ComponentBuilderOption: a function that applies the cast-shadows option to a component
func WithCastShadows(cast bool) ComponentBuilderOption {
	return func(c *component) {
		c.castShadows = cast
	}
}

// WithReceiveShadows is an option builder that sets the initial receive-shadows flag.
//
// Parameters:
//   - receive: the initial receive-shadows state
//
// Returns:
//   - ComponentBuilderOption: a function that applies the receive-shadows option to a component
func WithReceiveShadows(receive bool) ComponentBuilderOption {
	return func(c *component) {
		c.receiveShadows = receive
	}
}

// WithStatic is an option builder that sets the initial static flag.
//
// Parameters:
//   - static: the initial static state
//
// Returns:
//   - ComponentBuilderOption: a function that applies the static option to a component
func WithStatic(static bool) ComponentBuilderOption {
	return func(c *component) {
		c.static = static
	}
}

// WithLightmapped is an option builder that sets the initial lightmap flag.
//
// Parameters:
//   - lightmapped: the initial lightmapped state
//
// Returns:
//   - ComponentBuilderOption: a function that applies the lightmapped option to a component
func WithLightmapped(lightmapped bool) ComponentBuilderOption {
	return func(c *component) {
		c.lightmapped = lightmapped
	}
}

// WithBatchGroupID is an option builder that sets the initial batch group of
// the Component.
//
// Parameters:
//   - id: the batch group id, or scene.BatchGroupNone
//
// Returns:
//   - ComponentBuilderOption: a function that applies the batch group option to a component
func WithBatchGroupID(id int) ComponentBuilderOption {
	return func(c *component) {
		c.batchGroupID = id
	}
}

// WithLayers is an option builder that sets the initial layer-id list of the
// Component.
//
// Parameters:
//   - ids: the layer ids to bind into
//
// Returns:
//   - ComponentBuilderOption: a function that applies the layers option to a component
func WithLayers(ids []int) ComponentBuilderOption {
	return func(c *component) {
		c.layers = append(c.layers[:0], ids...)
	}
}

// WithComponentMaterial is an option builder that sets the component-level
// material.
//
// Parameters:
//   - m: the material to use
//
// Returns:
//   - ComponentBuilderOption: a function that applies the material option to a component
func WithComponentMaterial(m mesh.Material) ComponentBuilderOption {
	return func(c *component) {
		c.material = m
	}
}
