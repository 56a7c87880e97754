// Package selection manages the per-region selection group: a reserved
// group name holding whatever the user currently has selected, optionally
// inherited from an ancestor region's selection.
package selection

import (
	"github.com/cmlibs/zincutil/pkg/model"
)

// GroupName is the reserved name for selection groups. A leading dot keeps
// it out of the way of user-defined group names.
const GroupName = ".selection"

// Get returns the selection group in effect for region: the one set
// directly on it, or, when inheritRoot is non-nil, the subregion group of
// the nearest ancestor's selection up to and including inheritRoot.
// Returns nil when there is none.
func Get(region, inheritRoot *model.Region) *model.Group {
	if g := region.SelectionGroup(); g != nil {
		return g
	}

	if inheritRoot != nil {
		if ancestor := GetAncestor(region, inheritRoot); ancestor != nil {
			return ancestor.SubregionGroup(region)
		}
	}

	return nil
}

// GetAncestor returns the selection group set on the nearest proper
// ancestor of region, walking up to inheritRoot at most (nil means walk to
// the tree root). Returns nil if no ancestor has one.
func GetAncestor(region, inheritRoot *model.Region) *model.Group {
	if region == inheritRoot {
		return nil
	}

	for ancestor := region.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		if g := ancestor.SelectionGroup(); g != nil {
			return g
		}

		if ancestor == inheritRoot {
			break
		}
	}

	return nil
}

// Create makes an empty selection group for region and sets it. With
// inheritRoot set, an existing ancestor selection is reused and the
// subregion group for region returned; otherwise the group is created on
// inheritRoot (or region itself when nil) and set there. An orphaned group
// of the reserved name is discovered, emptied and reused rather than
// recreated.
//
// Callers should have checked Get first; Create does not look for a
// selection already set on region itself.
func Create(region, inheritRoot *model.Region) (*model.Group, error) {
	if inheritRoot != nil {
		if ancestor := GetAncestor(region, inheritRoot); ancestor != nil {
			return ancestor.GetOrCreateSubregionGroup(region)
		}
	}

	top := region
	if inheritRoot != nil {
		top = inheritRoot
	}

	var sel *model.Group
	err := top.HierarchicalBatch(func() error {
		sel = top.Group(GroupName)
		if sel != nil {
			sel.Clear()
		} else {
			sel = top.GetOrCreateGroup(GroupName)
		}

		top.SetSelectionGroup(sel)

		if top != region {
			var err error
			sel, err = sel.GetOrCreateSubregionGroup(region)
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sel, nil
}

// GetOrCreate returns the selection group in effect for region, creating
// one if there is none.
func GetOrCreate(region, inheritRoot *model.Region) (*model.Group, error) {
	if g := Get(region, inheritRoot); g != nil {
		return g, nil
	}

	return Create(region, inheritRoot)
}

// Clear empties the selection group set on region and unsets it. A no-op
// when region has none (an inherited selection is left alone).
func Clear(region *model.Region) {
	g := region.SelectionGroup()
	if g == nil {
		return
	}

	g.Clear()
	region.SetSelectionGroup(nil)
}
