// Package group contains helpers for working with groups and selections:
// merging group contents across the region hierarchy, and moving
// membership to and from identifier range lists.
package group

import (
	"fmt"

	"github.com/cmlibs/zincutil/pkg/api"
	"github.com/cmlibs/zincutil/pkg/model"
	"github.com/cmlibs/zincutil/pkg/ranges"
)

// AddGroupElements adds to dst the elements and/or nodes present in src,
// which may be in dst's region or any descendant of it. Only objects from
// src's own region are added. With highestDimensionOnly set (the usual
// case), only elements of the highest dimension present in src are added.
func AddGroupElements(dst, src *model.Group, highestDimensionOnly bool) error {
	region := dst.Region()

	if !region.ContainsRegion(src.Region()) {
		return fmt.Errorf("group %q: %w", src.Name(), model.ErrNotDescendant)
	}

	return region.HierarchicalBatch(func() error {
		for dimension := 3; dimension >= 0; dimension-- {
			if dimension > 0 {
				srcMG := src.MeshGroup(dimension)
				if srcMG == nil || srcMG.Size() == 0 {
					continue
				}

				into, err := dst.GetOrCreateSubregionGroup(src.Region())
				if err != nil {
					return err
				}

				mg := into.GetOrCreateMeshGroup(dimension)
				for _, id := range srcMG.Identifiers() {
					if err := mg.AddElement(id); err != nil {
						return err
					}
				}

				if highestDimensionOnly {
					return nil
				}
			} else {
				srcNG := src.NodesetGroup(api.DomainNodes)
				if srcNG == nil || srcNG.Size() == 0 {
					continue
				}

				into, err := dst.GetOrCreateSubregionGroup(src.Region())
				if err != nil {
					return err
				}

				ng := into.GetOrCreateNodesetGroup(api.DomainNodes)
				for _, id := range srcNG.Identifiers() {
					if err := ng.AddNode(id); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}

// AddGroupNodes adds to dst the nodes or datapoints present in src, which
// may be in dst's region or any descendant of it. Only objects from src's
// own region are added.
func AddGroupNodes(dst, src *model.Group, dt api.DomainType) error {
	if !dt.IsNodeset() {
		return fmt.Errorf("domain %s is not a point domain", dt)
	}

	region := dst.Region()

	if !region.ContainsRegion(src.Region()) {
		return fmt.Errorf("group %q: %w", src.Name(), model.ErrNotDescendant)
	}

	srcNG := src.NodesetGroup(dt)
	if srcNG == nil || srcNG.Size() == 0 {
		return nil
	}

	return region.HierarchicalBatch(func() error {
		into, err := dst.GetOrCreateSubregionGroup(src.Region())
		if err != nil {
			return err
		}

		ng := into.GetOrCreateNodesetGroup(dt)
		for _, id := range srcNG.Identifiers() {
			if err := ng.AddNode(id); err != nil {
				return err
			}
		}

		return nil
	})
}

// HighestDimension returns the highest dimension of elements or nodes
// present in the group: 3 to 1 for meshes, 0 for nodes, -1 if the group is
// empty.
func HighestDimension(g *model.Group) int {
	for dimension := 3; dimension >= 1; dimension-- {
		mg := g.MeshGroup(dimension)
		if mg != nil && mg.Size() > 0 {
			return dimension
		}
	}

	ng := g.NodesetGroup(api.DomainNodes)
	if ng != nil && ng.Size() > 0 {
		return 0
	}

	return -1
}

// MeshGroupAddRanges adds the elements covered by the given ranges to the
// mesh group. Identifiers with no element in the master mesh are skipped.
func MeshGroupAddRanges(mg *model.MeshGroup, rl api.RangeList) error {
	mesh := mg.MasterMesh()
	region := mesh.Region()

	return region.Batch(func() error {
		for _, r := range rl {
			for id := r.Start; id <= r.Stop; id++ {
				if mesh.Find(id) == nil {
					continue
				}

				if err := mg.AddElement(id); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// NodesetGroupAddRanges adds the nodes covered by the given ranges to the
// nodeset group. Identifiers with no node in the master nodeset are
// skipped.
func NodesetGroupAddRanges(ng *model.NodesetGroup, rl api.RangeList) error {
	nodeset := ng.MasterNodeset()
	region := nodeset.Region()

	return region.Batch(func() error {
		for _, r := range rl {
			for id := r.Start; id <= r.Stop; id++ {
				if nodeset.Find(id) == nil {
					continue
				}

				if err := ng.AddNode(id); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// MeshGroupRanges returns the normalized range list covering the mesh
// group's element identifiers.
func MeshGroupRanges(mg *model.MeshGroup) api.RangeList {
	// Identifiers is always ascending, so this cannot fail.
	rl, _ := ranges.FromSorted(mg.Identifiers())
	return rl
}

// NodesetGroupRanges returns the normalized range list covering the
// nodeset group's node identifiers.
func NodesetGroupRanges(ng *model.NodesetGroup) api.RangeList {
	rl, _ := ranges.FromSorted(ng.Identifiers())
	return rl
}
