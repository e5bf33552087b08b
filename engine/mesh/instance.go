package mesh

// RenderStyle selects how an instance's geometry is rasterized.
type RenderStyle int

const (
	// RenderStyleSolid draws filled triangles.
	RenderStyleSolid RenderStyle = iota
	// RenderStyleWireframe draws triangle edges only.
	RenderStyleWireframe
	// RenderStylePoints draws vertices as points.
	RenderStylePoints
)

// instance is the implementation of the Instance interface.
type instance struct {
	mesh          Mesh
	material      Material
	castShadow    bool
	receiveShadow bool
	static        bool
	lightmapped   bool
	visible       bool
	renderStyle   RenderStyle
}

// Instance defines the interface for a single drawable unit: a mesh buffer
// reference, a material reference, and per-instance render flags. Instances
// are exclusively owned by the component that created them; replacing a
// component's instance set discards ownership of the old ones.
type Instance interface {
	// Mesh retrieves the geometry this instance draws.
	//
	// Returns:
	//   - Mesh: the mesh reference
	Mesh() Mesh

	// Material retrieves the material this instance draws with, or nil.
	//
	// Returns:
	//   - Material: the material reference or nil
	Material() Material

	// SetMaterial assigns the material this instance draws with.
	//
	// Parameters:
	//   - m: the material to assign
	SetMaterial(m Material)

	// CastShadow reports whether this instance is rendered into shadow maps.
	CastShadow() bool

	// SetCastShadow sets whether this instance is rendered into shadow maps.
	SetCastShadow(cast bool)

	// ReceiveShadow reports whether this instance samples shadow maps when lit.
	ReceiveShadow() bool

	// SetReceiveShadow sets whether this instance samples shadow maps when lit.
	SetReceiveShadow(receive bool)

	// Static reports whether this instance is eligible for static batching
	// and baked lighting.
	Static() bool

	// SetStatic sets whether this instance is eligible for static batching
	// and baked lighting.
	SetStatic(static bool)

	// Lightmapped reports whether this instance samples baked lightmaps
	// instead of realtime lighting.
	Lightmapped() bool

	// SetLightmapped sets whether this instance samples baked lightmaps.
	SetLightmapped(lightmapped bool)

	// Visible reports whether this instance is drawn at all.
	Visible() bool

	// SetVisible sets whether this instance is drawn at all.
	SetVisible(visible bool)

	// RenderStyle retrieves the rasterization style for this instance.
	RenderStyle() RenderStyle

	// SetRenderStyle sets the rasterization style for this instance.
	SetRenderStyle(style RenderStyle)
}

var _ Instance = &instance{}

// NewInstance creates a new Instance with the specified options applied.
// Instances default to visible, solid-rendered, non-casting.
//
// Parameters:
//   - options: a variadic list of InstanceBuilderOption functions to configure the Instance
//
// Returns:
//   - Instance: a new instance configured with the provided options
func NewInstance(options ...InstanceBuilderOption) Instance {
	inst := &instance{
		visible: true,
	}
	for _, option := range options {
		option(inst)
	}
	return inst
}

func (i *instance) Mesh() Mesh {
	return i.mesh
}

func (i *instance) Material() Material {
	return i.material
}

func (i *instance) SetMaterial(m Material) {
	i.material = m
}

func (i *instance) CastShadow() bool {
	return i.castShadow
}

func (i *instance) SetCastShadow(cast bool) {
	i.castShadow = cast
}

func (i *instance) ReceiveShadow() bool {
	return i.receiveShadow
}

func (i *instance) SetReceiveShadow(receive bool) {
	i.receiveShadow = receive
}

func (i *instance) Static() bool {
	return i.static
}

func (i *instance) SetStatic(static bool) {
	i.static = static
}

func (i *instance) Lightmapped() bool {
	return i.lightmapped
}

func (i *instance) SetLightmapped(lightmapped bool) {
	i.lightmapped = lightmapped
}

func (i *instance) Visible() bool {
	return i.visible
}

func (i *instance) SetVisible(visible bool) {
	i.visible = visible
}

func (i *instance) RenderStyle() RenderStyle {
	return i.renderStyle
}

func (i *instance) SetRenderStyle(style RenderStyle) {
	i.renderStyle = style
}
