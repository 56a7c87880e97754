package model

import (
	"fmt"
	"sort"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Element is one object of a mesh. Nodes holds the identifiers of the
// nodes the element is defined over, stored as plain data.
type Element struct {
	mesh  *Mesh
	id    api.ID
	nodes []api.ID
}

func (e *Element) Identifier() api.ID {
	return e.id
}

// Nodes returns a copy of the element's node identifiers.
func (e *Element) Nodes() []api.ID {
	out := make([]api.ID, len(e.nodes))
	copy(out, e.nodes)
	return out
}

// Mesh is a region's element domain of one dimension (1 to 3).
type Mesh struct {
	region    *Region
	dimension int
	elements  map[api.ID]*Element
}

func newMesh(r *Region, dimension int) *Mesh {
	return &Mesh{
		region:    r,
		dimension: dimension,
		elements:  map[api.ID]*Element{},
	}
}

func (m *Mesh) Region() *Region {
	return m.region
}

func (m *Mesh) Dimension() int {
	return m.dimension
}

func (m *Mesh) DomainType() api.DomainType {
	return api.MeshDomain(m.dimension)
}

func (m *Mesh) Size() int {
	return len(m.elements)
}

// Find returns the element with the given identifier, or nil.
func (m *Mesh) Find(id api.ID) *Element {
	return m.elements[id]
}

// Create adds an element with the given identifier and node identifiers.
func (m *Mesh) Create(id api.ID, nodes []api.ID) (*Element, error) {
	if id < 1 {
		return nil, fmt.Errorf("%s %s: %w", m.DomainType(), id, ErrBadIdentifier)
	}

	if _, ok := m.elements[id]; ok {
		return nil, fmt.Errorf("%s %s: %w", m.DomainType(), id, ErrIDInUse)
	}

	e := &Element{mesh: m, id: id, nodes: append([]api.ID(nil), nodes...)}
	m.elements[id] = e
	m.region.changed(m.DomainType())

	return e, nil
}

// Identifiers returns the identifiers present, ascending.
func (m *Mesh) Identifiers() []api.ID {
	ids := make([]api.ID, 0, len(m.elements))
	for id := range m.elements {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// SetIdentifier renumbers an element. Same contract as
// Nodeset.SetIdentifier.
func (m *Mesh) SetIdentifier(old, new api.ID) error {
	e := m.elements[old]
	if e == nil {
		return fmt.Errorf("%s %s: %w", m.DomainType(), old, ErrNotFound)
	}

	if new == old {
		return nil
	}

	if new < 1 {
		return fmt.Errorf("%s %s: %w", m.DomainType(), new, ErrBadIdentifier)
	}

	if _, ok := m.elements[new]; ok {
		return fmt.Errorf("%s %s: %w", m.DomainType(), new, ErrIDInUse)
	}

	delete(m.elements, old)
	e.id = new
	m.elements[new] = e

	m.region.renumberGroupMember(m.DomainType(), old, new)
	m.region.changed(m.DomainType())

	return nil
}

// Destroy removes the element with the given identifier, if present, and
// drops it from any groups.
func (m *Mesh) Destroy(id api.ID) {
	if _, ok := m.elements[id]; !ok {
		return
	}

	delete(m.elements, id)
	m.region.removeGroupMember(m.DomainType(), id)
	m.region.changed(m.DomainType())
}

// DestroyAll empties the mesh.
func (m *Mesh) DestroyAll() {
	if len(m.elements) == 0 {
		return
	}

	for id := range m.elements {
		m.region.removeGroupMember(m.DomainType(), id)
	}

	m.elements = map[api.ID]*Element{}
	m.region.changed(m.DomainType())
}
