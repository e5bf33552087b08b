package scene

// BatchKind identifies which component family a batch group merges.
type BatchKind string

// BatchKindRender merges render-component geometry.
const BatchKindRender BatchKind = "render"

// BatchGroupNone is the batch-group id meaning "not batched".
const BatchGroupNone = -1

// BatchManager is the registry of batch groups: nodes registered under the
// same (kind, group id) key have their geometry merged into fewer draw calls,
// which excludes that geometry from direct per-layer draws.
type BatchManager struct {
	groups map[BatchKind]map[int][]Node
	dirty  map[int]bool
}

// NewBatchManager creates an empty batch-group registry.
//
// Returns:
//   - *BatchManager: the new registry
func NewBatchManager() *BatchManager {
	return &BatchManager{
		groups: make(map[BatchKind]map[int][]Node),
		dirty:  make(map[int]bool),
	}
}

// Insert registers a node under a batch group and marks the group dirty for
// rebatching. Inserting an already-registered node is a no-op.
//
// Parameters:
//   - kind: the component family of the group
//   - groupID: the batch group id
//   - n: the node to register
func (b *BatchManager) Insert(kind BatchKind, groupID int, n Node) {
	if n == nil || groupID == BatchGroupNone {
		return
	}
	byID := b.groups[kind]
	if byID == nil {
		byID = make(map[int][]Node)
		b.groups[kind] = byID
	}
	for _, e := range byID[groupID] {
		if e == n {
			return
		}
	}
	byID[groupID] = append(byID[groupID], n)
	b.dirty[groupID] = true
}

// Remove unregisters a node from a batch group and marks the group dirty for
// rebatching. Removing an absent node is a no-op.
//
// Parameters:
//   - kind: the component family of the group
//   - groupID: the batch group id
//   - n: the node to unregister
func (b *BatchManager) Remove(kind BatchKind, groupID int, n Node) {
	byID := b.groups[kind]
	if byID == nil {
		return
	}
	nodes := byID[groupID]
	for i, e := range nodes {
		if e == n {
			byID[groupID] = append(nodes[:i], nodes[i+1:]...)
			b.dirty[groupID] = true
			return
		}
	}
}

// Nodes returns the nodes registered under a batch group.
//
// Parameters:
//   - kind: the component family of the group
//   - groupID: the batch group id
//
// Returns:
//   - []Node: the registered nodes
func (b *BatchManager) Nodes(kind BatchKind, groupID int) []Node {
	if byID := b.groups[kind]; byID != nil {
		return byID[groupID]
	}
	return nil
}

// MarkGroupClean clears a group's rebatch flag once the batcher has rebuilt it.
//
// Parameters:
//   - groupID: the batch group id
func (b *BatchManager) MarkGroupClean(groupID int) {
	delete(b.dirty, groupID)
}

// GroupDirty reports whether a group needs rebatching.
//
// Parameters:
//   - groupID: the batch group id
//
// Returns:
//   - bool: true if the group membership changed since the last rebuild
func (b *BatchManager) GroupDirty(groupID int) bool {
	return b.dirty[groupID]
}
