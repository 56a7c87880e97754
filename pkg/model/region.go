// Package model is a small in-memory stand-in for a finite-element field
// store: a region tree owning nodesets, meshes, and groups, with coalesced
// change notification and an opaque stream codec for moving domains
// between regions. It carries just enough behavior for the helpers in
// pkg/group, pkg/selection and pkg/region to be real, tested code; it is
// not a field-modelling library.
package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Region is a node in the model's region tree. Each region owns its own
// object domains: a nodes nodeset, a datapoints nodeset, and meshes of
// dimension 1 to 3. Identifiers are unique per domain per region, nothing
// wider than that.
//
// Regions are not safe for concurrent use. Callers hold exclusive access
// for the duration of any read-modify-write sequence.
type Region struct {
	name     string
	parent   *Region
	children []*Region

	nodes      *Nodeset
	datapoints *Nodeset
	meshes     [3]*Mesh

	groups    map[string]*Group
	selection *Group

	// Change batching. See batch.go.
	batchDepth int
	pending    map[api.DomainType]bool
	observers  map[ObserverHandle]Observer
}

func NewRegion(name string) *Region {
	r := &Region{
		name:      name,
		groups:    map[string]*Group{},
		pending:   map[api.DomainType]bool{},
		observers: map[ObserverHandle]Observer{},
	}

	r.nodes = newNodeset(r, api.DomainNodes)
	r.datapoints = newNodeset(r, api.DomainDatapoints)

	for d := 1; d <= 3; d++ {
		r.meshes[d-1] = newMesh(r, d)
	}

	return r
}

func (r *Region) Name() string {
	return r.name
}

func (r *Region) Parent() *Region {
	return r.parent
}

func (r *Region) Children() []*Region {
	out := make([]*Region, len(r.children))
	copy(out, r.children)
	return out
}

// CreateChild adds a new empty subregion. Sibling names must be unique.
func (r *Region) CreateChild(name string) (*Region, error) {
	if r.FindChild(name) != nil {
		return nil, fmt.Errorf("child region %q: %w", name, ErrNameInUse)
	}

	c := NewRegion(name)
	c.parent = r
	r.children = append(r.children, c)

	return c, nil
}

// FindChild returns the direct child with the given name, or nil.
func (r *Region) FindChild(name string) *Region {
	for _, c := range r.children {
		if c.name == name {
			return c
		}
	}

	return nil
}

// FindSubregion resolves a slash-separated path relative to r, e.g.
// "body/left". The empty path is r itself. Returns nil if any component is
// missing.
func (r *Region) FindSubregion(path string) *Region {
	s := r

	for _, name := range strings.Split(path, "/") {
		if name == "" {
			continue
		}

		s = s.FindChild(name)
		if s == nil {
			return nil
		}
	}

	return s
}

// Path returns the slash-separated path from the root to r, excluding the
// root's own name.
func (r *Region) Path() string {
	if r.parent == nil {
		return ""
	}

	prefix := r.parent.Path()
	if prefix == "" {
		return r.name
	}

	return prefix + "/" + r.name
}

// ContainsRegion returns true if other is r or a descendant of r.
func (r *Region) ContainsRegion(other *Region) bool {
	for s := other; s != nil; s = s.parent {
		if s == r {
			return true
		}
	}

	return false
}

// Walk visits r and every region below it, depth first, children in
// creation order.
func (r *Region) Walk(fn func(*Region)) {
	fn(r)

	for _, c := range r.children {
		c.Walk(fn)
	}
}

// Nodeset returns the point domain of the given type, or nil for mesh
// domain types.
func (r *Region) Nodeset(dt api.DomainType) *Nodeset {
	switch dt {
	case api.DomainNodes:
		return r.nodes
	case api.DomainDatapoints:
		return r.datapoints
	}

	return nil
}

// Mesh returns the element domain of the given dimension (1 to 3), or nil.
func (r *Region) Mesh(dimension int) *Mesh {
	if dimension < 1 || dimension > 3 {
		return nil
	}

	return r.meshes[dimension-1]
}

// Group returns the named group, or nil.
func (r *Region) Group(name string) *Group {
	return r.groups[name]
}

// GetOrCreateGroup returns the named group, creating it empty if needed.
func (r *Region) GetOrCreateGroup(name string) *Group {
	g := r.groups[name]
	if g == nil {
		g = newGroup(r, name)
		r.groups[name] = g
	}

	return g
}

// Groups returns the region's groups sorted by name.
func (r *Region) Groups() []*Group {
	out := make([]*Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// SelectionGroup returns the group set as this region's selection, or nil.
func (r *Region) SelectionGroup() *Group {
	return r.selection
}

// SetSelectionGroup sets or clears (nil) the region's selection group.
func (r *Region) SetSelectionGroup(g *Group) {
	r.selection = g
}

// renumberGroupMember moves group membership when an object changes
// identifier, so groups keep tracking the same object.
func (r *Region) renumberGroupMember(dt api.DomainType, old, new api.ID) {
	for _, g := range r.groups {
		g.renumberMember(dt, old, new)
	}
}

// removeGroupMember drops a destroyed object from every group.
func (r *Region) removeGroupMember(dt api.DomainType, id api.ID) {
	for _, g := range r.groups {
		g.removeMember(dt, id)
	}
}
