package asset

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
)

// Common errors returned by the container parser
var (
	errInvalidGLTFVersion = errors.New("invalid glTF version: must be 2.0")
	errInvalidGLBMagic    = errors.New("invalid GLB magic number")
	errInvalidGLBVersion  = errors.New("invalid GLB version: must be 2")
	errMissingJSONChunk   = errors.New("GLB file missing JSON chunk")
	errExternalBufferURI  = errors.New("external buffer URIs are not supported for in-memory containers")
	errInvalidBufferURI   = errors.New("invalid buffer URI")
	errBufferSizeMismatch = errors.New("buffer size mismatch")
)

const (
	glbMagic     = 0x46546C67 // "glTF"
	glbVersion   = 2
	glbChunkJSON = 0x4E4F534A // "JSON"
	glbChunkBIN  = 0x004E4942 // "BIN\0"
)

// glTF component types
const (
	gltfComponentTypeByte          = 5120
	gltfComponentTypeUnsignedByte  = 5121
	gltfComponentTypeShort         = 5122
	gltfComponentTypeUnsignedShort = 5123
	gltfComponentTypeUnsignedInt   = 5125
	gltfComponentTypeFloat         = 5126
)

// glTF accessor types
const (
	gltfAccessorTypeScalar = "SCALAR"
	gltfAccessorTypeVec2   = "VEC2"
	gltfAccessorTypeVec3   = "VEC3"
)

type glbHeader struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

type glbChunkHeader struct {
	ChunkLength uint32
	ChunkType   uint32
}

type gltfDocument struct {
	Asset       gltfAssetInfo  `json:"asset"`
	Buffers     []gltfBuffer   `json:"buffers"`
	BufferViews []gltfView     `json:"bufferViews"`
	Accessors   []gltfAccessor `json:"accessors"`
	Meshes      []gltfMesh     `json:"meshes"`
	Materials   []gltfMaterial `json:"materials"`
}

type gltfAssetInfo struct {
	Version string `json:"version"`
}

type gltfBuffer struct {
	URI        string `json:"uri"`
	ByteLength int    `json:"byteLength"`

	// Data is filled during parsing, not deserialized.
	Data []byte `json:"-"`
}

type gltfView struct {
	Buffer     int  `json:"buffer"`
	ByteOffset int  `json:"byteOffset"`
	ByteLength int  `json:"byteLength"`
	ByteStride *int `json:"byteStride"`
}

type gltfAccessor struct {
	BufferView    *int   `json:"bufferView"`
	ByteOffset    int    `json:"byteOffset"`
	ComponentType int    `json:"componentType"`
	Count         int    `json:"count"`
	Type          string `json:"type"`
}

type gltfMesh struct {
	Name       string          `json:"name"`
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices"`
	Material   *int           `json:"material"`
}

type gltfMaterial struct {
	Name string `json:"name"`
	PBR  *struct {
		BaseColorFactor *[4]float32 `json:"baseColorFactor"`
		MetallicFactor  *float32    `json:"metallicFactor"`
		RoughnessFactor *float32    `json:"roughnessFactor"`
	} `json:"pbrMetallicRoughness"`
}

// gltfContainer parses an in-memory glTF or GLB payload and extracts mesh
// groups and materials from it. Buffers must be embedded (GLB binary chunk or
// base64 data URIs); external file URIs are rejected.
type gltfContainer struct {
	document *gltfDocument
	binChunk []byte
}

// parse detects the format from the payload and loads the document.
func (c *gltfContainer) parse(data []byte) error {
	if len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == glbMagic {
		return c.parseGLB(data)
	}
	return c.parseJSON(data)
}

func (c *gltfContainer) parseJSON(data []byte) error {
	var doc gltfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse glTF JSON: %w", err)
	}

	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return errInvalidGLTFVersion
	}

	if err := c.loadBuffers(&doc); err != nil {
		return fmt.Errorf("failed to load buffers: %w", err)
	}

	c.document = &doc
	return nil
}

// parseGLB splits the binary container into its JSON and BIN chunks.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#glb-file-format-specification
func (c *gltfContainer) parseGLB(data []byte) error {
	if len(data) < 12 {
		return errors.New("GLB file too small")
	}

	r := bytes.NewReader(data)

	var header glbHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to read GLB header: %w", err)
	}

	if header.Magic != glbMagic {
		return errInvalidGLBMagic
	}
	if header.Version != glbVersion {
		return errInvalidGLBVersion
	}

	var jsonData []byte
	var binData []byte

	for {
		var chunkHeader glbChunkHeader
		if err := binary.Read(r, binary.LittleEndian, &chunkHeader); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read chunk header: %w", err)
		}

		chunkData := make([]byte, chunkHeader.ChunkLength)
		if _, err := io.ReadFull(r, chunkData); err != nil {
			return fmt.Errorf("failed to read chunk data: %w", err)
		}

		switch chunkHeader.ChunkType {
		case glbChunkJSON:
			jsonData = chunkData
		case glbChunkBIN:
			binData = chunkData
		}
	}

	if jsonData == nil {
		return errMissingJSONChunk
	}

	c.binChunk = binData

	var doc gltfDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("failed to parse glTF JSON: %w", err)
	}

	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return errInvalidGLTFVersion
	}

	if err := c.loadBuffers(&doc); err != nil {
		return fmt.Errorf("failed to load buffers: %w", err)
	}

	c.document = &doc
	return nil
}

// loadBuffers resolves buffer data from the GLB binary chunk or data URIs.
func (c *gltfContainer) loadBuffers(doc *gltfDocument) error {
	for i := range doc.Buffers {
		buf := &doc.Buffers[i]

		if buf.URI == "" {
			if i == 0 && c.binChunk != nil {
				buf.Data = c.binChunk
				if len(buf.Data) < buf.ByteLength {
					return fmt.Errorf("buffer %d: %w", i, errBufferSizeMismatch)
				}
				continue
			}
			return fmt.Errorf("buffer %d has no URI and no GLB binary chunk", i)
		}

		if !strings.HasPrefix(buf.URI, "data:") {
			return fmt.Errorf("buffer %d: %w", i, errExternalBufferURI)
		}

		data, err := decodeDataURI(buf.URI)
		if err != nil {
			return fmt.Errorf("buffer %d: %w", i, err)
		}
		buf.Data = data

		if len(buf.Data) < buf.ByteLength {
			return fmt.Errorf("buffer %d: %w", i, errBufferSizeMismatch)
		}
	}

	return nil
}

// decodeDataURI decodes a base64 data URI.
// Format: data:[<mediatype>][;base64],<data>
func decodeDataURI(uri string) ([]byte, error) {
	commaIdx := strings.Index(uri, ",")
	if commaIdx < 0 {
		return nil, errInvalidBufferURI
	}

	header := uri[5:commaIdx]
	dataStr := uri[commaIdx+1:]

	if !strings.Contains(header, "base64") {
		return nil, fmt.Errorf("unsupported data URI encoding: %s", header)
	}

	data, err := base64.StdEncoding.DecodeString(dataStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	return data, nil
}

// accessor resolves an accessor index against the document, validating it.
func (c *gltfContainer) accessor(accessorIndex int) (*gltfAccessor, error) {
	if accessorIndex < 0 || accessorIndex >= len(c.document.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", accessorIndex)
	}
	return &c.document.Accessors[accessorIndex], nil
}

// readAccessorData reads raw, de-strided bytes from an accessor.
func (c *gltfContainer) readAccessorData(accessorIndex int) ([]byte, error) {
	acc, err := c.accessor(accessorIndex)
	if err != nil {
		return nil, err
	}
	if acc.BufferView == nil {
		return nil, errors.New("accessor has no bufferView")
	}
	if *acc.BufferView < 0 || *acc.BufferView >= len(c.document.BufferViews) {
		return nil, fmt.Errorf("accessor %d: bufferView index %d out of range", accessorIndex, *acc.BufferView)
	}

	bv := &c.document.BufferViews[*acc.BufferView]
	if bv.Buffer < 0 || bv.Buffer >= len(c.document.Buffers) {
		return nil, fmt.Errorf("bufferView %d: buffer index %d out of range", *acc.BufferView, bv.Buffer)
	}
	buf := &c.document.Buffers[bv.Buffer]

	componentSize := gltfComponentTypeSize(acc.ComponentType)
	componentCount := gltfAccessorTypeComponentCount(acc.Type)
	elementSize := componentSize * componentCount

	stride := elementSize
	if bv.ByteStride != nil && *bv.ByteStride > 0 {
		stride = *bv.ByteStride
	}

	bufferOffset := bv.ByteOffset + acc.ByteOffset
	if bufferOffset+(acc.Count-1)*stride+elementSize > len(buf.Data) {
		return nil, fmt.Errorf("accessor %d overruns its buffer", accessorIndex)
	}

	result := make([]byte, acc.Count*elementSize)
	for i := 0; i < acc.Count; i++ {
		srcOffset := bufferOffset + i*stride
		dstOffset := i * elementSize
		copy(result[dstOffset:dstOffset+elementSize], buf.Data[srcOffset:srcOffset+elementSize])
	}

	return result, nil
}

func (c *gltfContainer) readVec2Accessor(accessorIndex int) ([][2]float32, error) {
	acc, err := c.accessor(accessorIndex)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltfAccessorTypeVec2 || acc.ComponentType != gltfComponentTypeFloat {
		return nil, fmt.Errorf("accessor is not VEC2 FLOAT: type=%s, componentType=%d", acc.Type, acc.ComponentType)
	}

	data, err := c.readAccessorData(accessorIndex)
	if err != nil {
		return nil, err
	}

	result := make([][2]float32, acc.Count)
	r := bytes.NewReader(data)
	for i := 0; i < acc.Count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &result[i]); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (c *gltfContainer) readVec3Accessor(accessorIndex int) ([][3]float32, error) {
	acc, err := c.accessor(accessorIndex)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltfAccessorTypeVec3 || acc.ComponentType != gltfComponentTypeFloat {
		return nil, fmt.Errorf("accessor is not VEC3 FLOAT: type=%s, componentType=%d", acc.Type, acc.ComponentType)
	}

	data, err := c.readAccessorData(accessorIndex)
	if err != nil {
		return nil, err
	}

	result := make([][3]float32, acc.Count)
	r := bytes.NewReader(data)
	for i := 0; i < acc.Count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &result[i]); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (c *gltfContainer) readIndicesAccessor(accessorIndex int) ([]uint32, error) {
	acc, err := c.accessor(accessorIndex)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltfAccessorTypeScalar {
		return nil, fmt.Errorf("index accessor is not SCALAR: type=%s", acc.Type)
	}

	data, err := c.readAccessorData(accessorIndex)
	if err != nil {
		return nil, err
	}

	result := make([]uint32, acc.Count)
	r := bytes.NewReader(data)

	switch acc.ComponentType {
	case gltfComponentTypeUnsignedByte:
		for i := 0; i < acc.Count; i++ {
			var v uint8
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, err
			}
			result[i] = uint32(v)
		}
	case gltfComponentTypeUnsignedShort:
		for i := 0; i < acc.Count; i++ {
			var v uint16
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return nil, err
			}
			result[i] = uint32(v)
		}
	case gltfComponentTypeUnsignedInt:
		if err := binary.Read(r, binary.LittleEndian, &result); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported index component type: %d", acc.ComponentType)
	}

	return result, nil
}

// meshGroups converts the document's meshes into engine mesh groups. Each glTF
// mesh becomes one group; each primitive becomes one engine mesh.
func (c *gltfContainer) meshGroups() ([][]mesh.Mesh, error) {
	groups := make([][]mesh.Mesh, 0, len(c.document.Meshes))
	for mi, gm := range c.document.Meshes {
		group := make([]mesh.Mesh, 0, len(gm.Primitives))
		for pi, prim := range gm.Primitives {
			posIdx, ok := prim.Attributes["POSITION"]
			if !ok {
				return nil, fmt.Errorf("mesh %d primitive %d has no POSITION attribute", mi, pi)
			}

			positions, err := c.readVec3Accessor(posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d positions: %w", mi, pi, err)
			}

			options := []mesh.MeshBuilderOption{
				mesh.WithMeshName(primitiveName(gm.Name, mi, pi)),
				mesh.WithPositions(positions),
			}

			if normIdx, ok := prim.Attributes["NORMAL"]; ok {
				normals, err := c.readVec3Accessor(normIdx)
				if err != nil {
					return nil, fmt.Errorf("mesh %d primitive %d normals: %w", mi, pi, err)
				}
				options = append(options, mesh.WithNormals(normals))
			}

			if uvIdx, ok := prim.Attributes["TEXCOORD_0"]; ok {
				uvs, err := c.readVec2Accessor(uvIdx)
				if err != nil {
					return nil, fmt.Errorf("mesh %d primitive %d uvs: %w", mi, pi, err)
				}
				options = append(options, mesh.WithUVs(uvs))
			}

			if prim.Indices != nil {
				indices, err := c.readIndicesAccessor(*prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %d primitive %d indices: %w", mi, pi, err)
				}
				options = append(options, mesh.WithIndices(indices))
			}

			group = append(group, mesh.NewMesh(options...))
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// materials converts the document's materials into engine materials.
func (c *gltfContainer) materials() []mesh.Material {
	result := make([]mesh.Material, 0, len(c.document.Materials))
	for i, gm := range c.document.Materials {
		imported := common.ImportedMaterial{
			Name:      gm.Name,
			BaseColor: [4]float32{1, 1, 1, 1},
			Roughness: 1,
		}
		if imported.Name == "" {
			imported.Name = fmt.Sprintf("material_%d", i)
		}
		if gm.PBR != nil {
			if gm.PBR.BaseColorFactor != nil {
				imported.BaseColor = *gm.PBR.BaseColorFactor
			}
			if gm.PBR.MetallicFactor != nil {
				imported.Metallic = *gm.PBR.MetallicFactor
			}
			if gm.PBR.RoughnessFactor != nil {
				imported.Roughness = *gm.PBR.RoughnessFactor
			}
		}
		result = append(result, mesh.NewMaterial(
			mesh.WithMaterialName(imported.Name),
			mesh.WithBaseColor(imported.BaseColor),
			mesh.WithMetallic(imported.Metallic),
			mesh.WithRoughness(imported.Roughness),
		))
	}
	return result
}

func primitiveName(meshName string, meshIdx, primIdx int) string {
	if meshName == "" {
		meshName = fmt.Sprintf("mesh_%d", meshIdx)
	}
	if primIdx == 0 {
		return meshName
	}
	return fmt.Sprintf("%s_%d", meshName, primIdx)
}

func gltfComponentTypeSize(componentType int) int {
	switch componentType {
	case gltfComponentTypeByte, gltfComponentTypeUnsignedByte:
		return 1
	case gltfComponentTypeShort, gltfComponentTypeUnsignedShort:
		return 2
	case gltfComponentTypeUnsignedInt, gltfComponentTypeFloat:
		return 4
	default:
		return 0
	}
}

func gltfAccessorTypeComponentCount(accessorType string) int {
	switch accessorType {
	case gltfAccessorTypeScalar:
		return 1
	case gltfAccessorTypeVec2:
		return 2
	case gltfAccessorTypeVec3:
		return 3
	default:
		return 0
	}
}
