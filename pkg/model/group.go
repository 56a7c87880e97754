package model

import (
	"fmt"
	"sort"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Group is a named subset of one region's objects, used for selection and
// labeling. Membership is tracked per domain; mesh and nodeset subgroups
// are created lazily on first use. A group's subregion groups are simply
// the same-named groups in descendant regions.
type Group struct {
	region *Region
	name   string

	meshGroups    map[int]*MeshGroup
	nodesetGroups map[api.DomainType]*NodesetGroup
}

func newGroup(r *Region, name string) *Group {
	return &Group{
		region:        r,
		name:          name,
		meshGroups:    map[int]*MeshGroup{},
		nodesetGroups: map[api.DomainType]*NodesetGroup{},
	}
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Region() *Region {
	return g.region
}

// MeshGroup returns the subgroup for the mesh of the given dimension, or
// nil if it has never been created.
func (g *Group) MeshGroup(dimension int) *MeshGroup {
	return g.meshGroups[dimension]
}

// GetOrCreateMeshGroup returns the subgroup for the mesh of the given
// dimension (1 to 3), creating it empty if needed.
func (g *Group) GetOrCreateMeshGroup(dimension int) *MeshGroup {
	mesh := g.region.Mesh(dimension)
	if mesh == nil {
		return nil
	}

	mg := g.meshGroups[dimension]
	if mg == nil {
		mg = &MeshGroup{group: g, mesh: mesh, members: map[api.ID]bool{}}
		g.meshGroups[dimension] = mg
	}

	return mg
}

// NodesetGroup returns the subgroup for the given point domain, or nil if
// it has never been created.
func (g *Group) NodesetGroup(dt api.DomainType) *NodesetGroup {
	return g.nodesetGroups[dt]
}

// GetOrCreateNodesetGroup returns the subgroup for the given point domain,
// creating it empty if needed.
func (g *Group) GetOrCreateNodesetGroup(dt api.DomainType) *NodesetGroup {
	ns := g.region.Nodeset(dt)
	if ns == nil {
		return nil
	}

	ng := g.nodesetGroups[dt]
	if ng == nil {
		ng = &NodesetGroup{group: g, nodeset: ns, members: map[api.ID]bool{}}
		g.nodesetGroups[dt] = ng
	}

	return ng
}

// SubregionGroup returns the same-named group in the given region, which
// must be in g's region tree. Returns nil if the region is outside the
// tree or has no such group yet.
func (g *Group) SubregionGroup(r *Region) *Group {
	if !g.region.ContainsRegion(r) {
		return nil
	}

	return r.Group(g.name)
}

// GetOrCreateSubregionGroup returns the same-named group in the given
// region, creating it if needed. The region must be g's region or a
// descendant of it.
func (g *Group) GetOrCreateSubregionGroup(r *Region) (*Group, error) {
	if !g.region.ContainsRegion(r) {
		return nil, fmt.Errorf("group %q in region %q: %w", g.name, r.Name(), ErrNotDescendant)
	}

	return r.GetOrCreateGroup(g.name), nil
}

// Clear empties every subgroup of g, and of the same-named groups in every
// descendant region.
func (g *Group) Clear() {
	for _, mg := range g.meshGroups {
		mg.clear()
	}
	for _, ng := range g.nodesetGroups {
		ng.clear()
	}

	for _, c := range g.region.children {
		c.Walk(func(s *Region) {
			if sub := s.Group(g.name); sub != nil {
				for _, mg := range sub.meshGroups {
					mg.clear()
				}
				for _, ng := range sub.nodesetGroups {
					ng.clear()
				}
			}
		})
	}
}

func (g *Group) renumberMember(dt api.DomainType, old, new api.ID) {
	if dt.IsMesh() {
		if mg := g.meshGroups[dt.Dimension()]; mg != nil && mg.members[old] {
			delete(mg.members, old)
			mg.members[new] = true
		}
		return
	}

	if ng := g.nodesetGroups[dt]; ng != nil && ng.members[old] {
		delete(ng.members, old)
		ng.members[new] = true
	}
}

func (g *Group) removeMember(dt api.DomainType, id api.ID) {
	if dt.IsMesh() {
		if mg := g.meshGroups[dt.Dimension()]; mg != nil {
			delete(mg.members, id)
		}
		return
	}

	if ng := g.nodesetGroups[dt]; ng != nil {
		delete(ng.members, id)
	}
}

// MeshGroup is the subset of one mesh's elements belonging to a group.
type MeshGroup struct {
	group   *Group
	mesh    *Mesh
	members map[api.ID]bool
}

// MasterMesh returns the mesh this subgroup selects from.
func (mg *MeshGroup) MasterMesh() *Mesh {
	return mg.mesh
}

func (mg *MeshGroup) Size() int {
	return len(mg.members)
}

func (mg *MeshGroup) Contains(id api.ID) bool {
	return mg.members[id]
}

// AddElement adds the element with the given identifier, which must exist
// in the master mesh. Adding a member twice is a no-op.
func (mg *MeshGroup) AddElement(id api.ID) error {
	if mg.mesh.Find(id) == nil {
		return fmt.Errorf("%s %s: %w", mg.mesh.DomainType(), id, ErrNotFound)
	}

	if !mg.members[id] {
		mg.members[id] = true
		mg.group.region.changed(mg.mesh.DomainType())
	}

	return nil
}

// RemoveElement drops the element from the subgroup, if present.
func (mg *MeshGroup) RemoveElement(id api.ID) {
	if mg.members[id] {
		delete(mg.members, id)
		mg.group.region.changed(mg.mesh.DomainType())
	}
}

// Identifiers returns the member identifiers, ascending.
func (mg *MeshGroup) Identifiers() []api.ID {
	ids := make([]api.ID, 0, len(mg.members))
	for id := range mg.members {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

func (mg *MeshGroup) clear() {
	if len(mg.members) == 0 {
		return
	}

	mg.members = map[api.ID]bool{}
	mg.group.region.changed(mg.mesh.DomainType())
}

// NodesetGroup is the subset of one nodeset's nodes belonging to a group.
type NodesetGroup struct {
	group   *Group
	nodeset *Nodeset
	members map[api.ID]bool
}

// MasterNodeset returns the nodeset this subgroup selects from.
func (ng *NodesetGroup) MasterNodeset() *Nodeset {
	return ng.nodeset
}

func (ng *NodesetGroup) Size() int {
	return len(ng.members)
}

func (ng *NodesetGroup) Contains(id api.ID) bool {
	return ng.members[id]
}

// AddNode adds the node with the given identifier, which must exist in the
// master nodeset. Adding a member twice is a no-op.
func (ng *NodesetGroup) AddNode(id api.ID) error {
	if ng.nodeset.Find(id) == nil {
		return fmt.Errorf("%s %s: %w", ng.nodeset.DomainType(), id, ErrNotFound)
	}

	if !ng.members[id] {
		ng.members[id] = true
		ng.group.region.changed(ng.nodeset.DomainType())
	}

	return nil
}

// RemoveNode drops the node from the subgroup, if present.
func (ng *NodesetGroup) RemoveNode(id api.ID) {
	if ng.members[id] {
		delete(ng.members, id)
		ng.group.region.changed(ng.nodeset.DomainType())
	}
}

// Identifiers returns the member identifiers, ascending.
func (ng *NodesetGroup) Identifiers() []api.ID {
	ids := make([]api.ID, 0, len(ng.members))
	for id := range ng.members {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

func (ng *NodesetGroup) clear() {
	if len(ng.members) == 0 {
		return
	}

	ng.members = map[api.ID]bool{}
	ng.group.region.changed(ng.nodeset.DomainType())
}
