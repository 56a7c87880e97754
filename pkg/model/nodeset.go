package model

import (
	"fmt"
	"sort"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Node is a point object carrying per-field component values, keyed by
// field name. The model stores values as plain data; there is no field
// evaluation here.
type Node struct {
	ns     *Nodeset
	id     api.ID
	values map[string][]float64
}

func (n *Node) Identifier() api.ID {
	return n.id
}

// Values returns a copy of the stored component values for the named
// field, or nil if the field is not defined on this node.
func (n *Node) Values(field string) []float64 {
	v, ok := n.values[field]
	if !ok {
		return nil
	}

	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// SetValues stores component values for the named field, replacing any
// previous values.
func (n *Node) SetValues(field string, v []float64) {
	vals := make([]float64, len(v))
	copy(vals, v)

	n.values[field] = vals
	n.ns.region.changed(n.ns.domain)
}

// Fields returns the names of the fields defined on this node, sorted.
func (n *Node) Fields() []string {
	out := make([]string, 0, len(n.values))
	for f := range n.values {
		out = append(out, f)
	}

	sort.Strings(out)
	return out
}

// Nodeset is one of a region's two point domains (nodes or datapoints).
type Nodeset struct {
	region *Region
	domain api.DomainType
	nodes  map[api.ID]*Node
}

func newNodeset(r *Region, dt api.DomainType) *Nodeset {
	return &Nodeset{
		region: r,
		domain: dt,
		nodes:  map[api.ID]*Node{},
	}
}

func (ns *Nodeset) Region() *Region {
	return ns.region
}

func (ns *Nodeset) DomainType() api.DomainType {
	return ns.domain
}

func (ns *Nodeset) Size() int {
	return len(ns.nodes)
}

// Find returns the node with the given identifier, or nil.
func (ns *Nodeset) Find(id api.ID) *Node {
	return ns.nodes[id]
}

// Create adds a node with the given identifier.
func (ns *Nodeset) Create(id api.ID) (*Node, error) {
	if id < 1 {
		return nil, fmt.Errorf("%s %s: %w", ns.domain, id, ErrBadIdentifier)
	}

	if _, ok := ns.nodes[id]; ok {
		return nil, fmt.Errorf("%s %s: %w", ns.domain, id, ErrIDInUse)
	}

	n := &Node{ns: ns, id: id, values: map[string][]float64{}}
	ns.nodes[id] = n
	ns.region.changed(ns.domain)

	return n, nil
}

// Identifiers returns the identifiers present, ascending. This is the
// enumeration order the range extraction in pkg/ranges expects.
func (ns *Nodeset) Identifiers() []api.ID {
	ids := make([]api.ID, 0, len(ns.nodes))
	for id := range ns.nodes {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// SetIdentifier renumbers a node. Fails without side effects if no node
// has the old identifier or the new one is already taken. Group membership
// follows the node.
func (ns *Nodeset) SetIdentifier(old, new api.ID) error {
	n := ns.nodes[old]
	if n == nil {
		return fmt.Errorf("%s %s: %w", ns.domain, old, ErrNotFound)
	}

	if new == old {
		return nil
	}

	if new < 1 {
		return fmt.Errorf("%s %s: %w", ns.domain, new, ErrBadIdentifier)
	}

	if _, ok := ns.nodes[new]; ok {
		return fmt.Errorf("%s %s: %w", ns.domain, new, ErrIDInUse)
	}

	delete(ns.nodes, old)
	n.id = new
	ns.nodes[new] = n

	ns.region.renumberGroupMember(ns.domain, old, new)
	ns.region.changed(ns.domain)

	return nil
}

// Destroy removes the node with the given identifier, if present, and
// drops it from any groups.
func (ns *Nodeset) Destroy(id api.ID) {
	if _, ok := ns.nodes[id]; !ok {
		return
	}

	delete(ns.nodes, id)
	ns.region.removeGroupMember(ns.domain, id)
	ns.region.changed(ns.domain)
}

// DestroyAll empties the nodeset.
func (ns *Nodeset) DestroyAll() {
	if len(ns.nodes) == 0 {
		return
	}

	for id := range ns.nodes {
		ns.region.removeGroupMember(ns.domain, id)
	}

	ns.nodes = map[api.ID]*Node{}
	ns.region.changed(ns.domain)
}
