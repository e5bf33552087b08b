package asset

import (
	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
)

// RenderResource is the live resource of a render asset: the mesh group it
// references inside its container, once resolved. Meshes stays nil until the
// container chain completes.
type RenderResource struct {
	// Meshes is the resolved mesh group, or nil while unresolved.
	Meshes []mesh.Mesh
}

// renderHandler resolves render assets against the container asset they
// reference. A render asset carries no bytes of its own; its load step is a
// dependency walk that may wait on the container's registration, its load,
// or neither.
type renderHandler struct{}

var _ Handler = &renderHandler{}

// NewRenderHandler creates the handler for TypeRender assets.
//
// Returns:
//   - Handler: the render handler
func NewRenderHandler() Handler {
	return &renderHandler{}
}

// Load completes immediately. Render assets are pure references; the real
// work happens in Patch once the empty resource is installed.
func (h *renderHandler) Load(url string, done LoadCallback) {
	done(nil, nil)
}

func (h *renderHandler) Open(url string, data []byte) (any, error) {
	return &RenderResource{}, nil
}

// Patch walks the container dependency. Exactly one of three paths runs:
// the container is not registered yet (wait for "add"), registered but not
// loaded (wait for "load" and kick the load), or already loaded (extract
// now). All three converge on extract, which runs at most once.
func (h *renderHandler) Patch(a Asset, r Registry) {
	if res, ok := a.Resource().(*RenderResource); !ok || res == nil {
		return
	}
	d := a.RenderData()
	if d == nil {
		return
	}

	container := r.Get(d.ContainerAsset)
	if container == nil {
		r.Once(AddEventKey(d.ContainerAsset), func(arg any) {
			added, ok := arg.(Asset)
			if !ok {
				return
			}
			h.bind(a, added, r)
		})
		return
	}
	h.bind(a, container, r)
}

// bind attaches to a registered container, loading it first if needed.
func (h *renderHandler) bind(a, container Asset, r Registry) {
	if container.Loaded() {
		h.extract(a, container)
		return
	}
	r.Once(LoadEventKey(container.ID()), func(arg any) {
		loaded, ok := arg.(Asset)
		if !ok {
			return
		}
		h.extract(a, loaded)
	})
	r.Load(container)
}

// extract copies the referenced mesh group out of the container resource.
func (h *renderHandler) extract(a, container Asset) {
	res, ok := a.Resource().(*RenderResource)
	if !ok || res == nil {
		// The render asset was torn down while waiting on its container.
		return
	}
	if res.Meshes != nil {
		return
	}

	cres, ok := container.Resource().(*ContainerResource)
	if !ok || cres == nil {
		return
	}
	idx := a.RenderData().RenderIndex
	if idx < 0 || idx >= len(cres.MeshGroups) {
		return
	}
	res.Meshes = cres.MeshGroups[idx]
}
