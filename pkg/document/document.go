// Package document reads and writes a small YAML description of a region
// tree, with domain contents given as identifier range strings. Handy for
// fixtures and for the zincutil command line.
package document

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cmlibs/zincutil/pkg/api"
	"github.com/cmlibs/zincutil/pkg/group"
	"github.com/cmlibs/zincutil/pkg/model"
	"github.com/cmlibs/zincutil/pkg/ranges"
)

// Document is the top-level YAML structure: a single root region.
type Document struct {
	Region RegionDoc `yaml:"region"`
}

// RegionDoc describes one region: its domain contents as range strings,
// its groups, and its children.
type RegionDoc struct {
	Name       string         `yaml:"name"`
	Nodes      string         `yaml:"nodes,omitempty"`
	Datapoints string         `yaml:"datapoints,omitempty"`
	Meshes     map[int]string `yaml:"meshes,omitempty"`
	Groups     []GroupDoc     `yaml:"groups,omitempty"`
	Children   []RegionDoc    `yaml:"children,omitempty"`
}

// GroupDoc describes one group's membership as range strings per domain.
type GroupDoc struct {
	Name       string         `yaml:"name"`
	Nodes      string         `yaml:"nodes,omitempty"`
	Datapoints string         `yaml:"datapoints,omitempty"`
	Meshes     map[int]string `yaml:"meshes,omitempty"`
}

// Load parses a YAML document.
func Load(data []byte) (*Document, error) {
	var d Document

	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	if d.Region.Name == "" {
		return nil, fmt.Errorf("document has no root region name")
	}

	return &d, nil
}

// Marshal renders the document back to YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Build instantiates the described region tree. Nodes are given a
// synthetic single-component "coordinates" value so copied data is
// visible; elements are created without node lists.
func (d *Document) Build() (*model.Region, error) {
	root := model.NewRegion(d.Region.Name)

	err := root.HierarchicalBatch(func() error {
		return buildRegion(root, &d.Region)
	})
	if err != nil {
		return nil, err
	}

	return root, nil
}

func buildRegion(r *model.Region, doc *RegionDoc) error {
	if err := buildNodeset(r.Nodeset(api.DomainNodes), doc.Nodes); err != nil {
		return err
	}
	if err := buildNodeset(r.Nodeset(api.DomainDatapoints), doc.Datapoints); err != nil {
		return err
	}

	for dimension, text := range doc.Meshes {
		m := r.Mesh(dimension)
		if m == nil {
			return fmt.Errorf("region %q: no mesh of dimension %d", r.Name(), dimension)
		}

		for _, id := range ranges.Parse(text).IDs() {
			if _, err := m.Create(id, nil); err != nil {
				return err
			}
		}
	}

	for i := range doc.Groups {
		if err := buildGroup(r, &doc.Groups[i]); err != nil {
			return err
		}
	}

	for i := range doc.Children {
		child := &doc.Children[i]

		c, err := r.CreateChild(child.Name)
		if err != nil {
			return err
		}

		if err := buildRegion(c, child); err != nil {
			return err
		}
	}

	return nil
}

func buildNodeset(ns *model.Nodeset, text string) error {
	for _, id := range ranges.Parse(text).IDs() {
		n, err := ns.Create(id)
		if err != nil {
			return err
		}

		n.SetValues("coordinates", []float64{float64(id)})
	}

	return nil
}

func buildGroup(r *model.Region, doc *GroupDoc) error {
	g := r.GetOrCreateGroup(doc.Name)

	if doc.Nodes != "" {
		ng := g.GetOrCreateNodesetGroup(api.DomainNodes)
		if err := group.NodesetGroupAddRanges(ng, ranges.Parse(doc.Nodes)); err != nil {
			return err
		}
	}

	if doc.Datapoints != "" {
		ng := g.GetOrCreateNodesetGroup(api.DomainDatapoints)
		if err := group.NodesetGroupAddRanges(ng, ranges.Parse(doc.Datapoints)); err != nil {
			return err
		}
	}

	for dimension, text := range doc.Meshes {
		mg := g.GetOrCreateMeshGroup(dimension)
		if mg == nil {
			return fmt.Errorf("group %q: no mesh of dimension %d", doc.Name, dimension)
		}

		if err := group.MeshGroupAddRanges(mg, ranges.Parse(text)); err != nil {
			return err
		}
	}

	return nil
}

// Describe converts a region tree back into a document, with every domain
// and group rendered as normalized range strings.
func Describe(r *model.Region) *Document {
	return &Document{Region: describeRegion(r)}
}

func describeRegion(r *model.Region) RegionDoc {
	doc := RegionDoc{Name: r.Name()}

	doc.Nodes = formatDomain(r.Nodeset(api.DomainNodes).Identifiers())
	doc.Datapoints = formatDomain(r.Nodeset(api.DomainDatapoints).Identifiers())

	for dimension := 1; dimension <= 3; dimension++ {
		m := r.Mesh(dimension)
		if m.Size() == 0 {
			continue
		}

		if doc.Meshes == nil {
			doc.Meshes = map[int]string{}
		}
		doc.Meshes[dimension] = formatDomain(m.Identifiers())
	}

	for _, g := range r.Groups() {
		doc.Groups = append(doc.Groups, describeGroup(g))
	}

	for _, c := range r.Children() {
		doc.Children = append(doc.Children, describeRegion(c))
	}

	return doc
}

func describeGroup(g *model.Group) GroupDoc {
	doc := GroupDoc{Name: g.Name()}

	if ng := g.NodesetGroup(api.DomainNodes); ng != nil {
		doc.Nodes = formatDomain(ng.Identifiers())
	}
	if ng := g.NodesetGroup(api.DomainDatapoints); ng != nil {
		doc.Datapoints = formatDomain(ng.Identifiers())
	}

	for dimension := 1; dimension <= 3; dimension++ {
		mg := g.MeshGroup(dimension)
		if mg == nil || mg.Size() == 0 {
			continue
		}

		if doc.Meshes == nil {
			doc.Meshes = map[int]string{}
		}
		doc.Meshes[dimension] = formatDomain(mg.Identifiers())
	}

	return doc
}

func formatDomain(ids []api.ID) string {
	// ids is ascending, straight off the domain, so this cannot fail.
	rl, _ := ranges.FromSorted(ids)
	return ranges.Format(rl)
}
