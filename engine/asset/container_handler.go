package asset

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
)

// ContainerResource is the live resource of a container asset: the mesh
// groups and materials extracted from a glTF/GLB payload. Render assets
// reference one mesh group by index.
type ContainerResource struct {
	// MeshGroups holds one mesh list per glTF mesh, in document order.
	MeshGroups [][]mesh.Mesh
	// Materials holds the document's materials, in document order.
	Materials []mesh.Material
}

// containerHandler decodes container assets from glTF or GLB payloads.
type containerHandler struct {
	fetch func(url string) ([]byte, error)
}

var _ Handler = &containerHandler{}

// NewContainerHandler creates the handler for TypeContainer assets.
//
// Returns:
//   - Handler: the container handler
func NewContainerHandler() Handler {
	return &containerHandler{}
}

func (h *containerHandler) Load(url string, done LoadCallback) {
	fetch := h.fetch
	if fetch == nil {
		fetch = os.ReadFile
	}
	data, err := fetch(url)
	if err != nil {
		done(fmt.Errorf("failed to fetch %s: %w", url, err), nil)
		return
	}
	if len(data) == 0 {
		done(fmt.Errorf("empty resource: %s", url), nil)
		return
	}
	done(nil, data)
}

func (h *containerHandler) Open(url string, data []byte) (any, error) {
	c := &gltfContainer{}
	if err := c.parse(data); err != nil {
		return nil, fmt.Errorf("failed to parse container %s: %w", url, err)
	}

	groups, err := c.meshGroups()
	if err != nil {
		return nil, fmt.Errorf("failed to extract meshes from %s: %w", url, err)
	}

	return &ContainerResource{
		MeshGroups: groups,
		Materials:  c.materials(),
	}, nil
}

func (h *containerHandler) Patch(a Asset, r Registry) {}
