package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlibs/zincutil/pkg/api"
	"github.com/cmlibs/zincutil/pkg/model"
	"github.com/cmlibs/zincutil/pkg/ranges"
)

// buildRegion populates a region with nodes 1-10, datapoints 1-5, 2D
// elements 1-4 and 3D elements 1-2.
func buildRegion(t *testing.T, name string) *model.Region {
	t.Helper()

	r := model.NewRegion(name)

	for id := api.ID(1); id <= 10; id++ {
		_, err := r.Nodeset(api.DomainNodes).Create(id)
		require.NoError(t, err)
	}
	for id := api.ID(1); id <= 5; id++ {
		_, err := r.Nodeset(api.DomainDatapoints).Create(id)
		require.NoError(t, err)
	}
	for id := api.ID(1); id <= 4; id++ {
		_, err := r.Mesh(2).Create(id, nil)
		require.NoError(t, err)
	}
	for id := api.ID(1); id <= 2; id++ {
		_, err := r.Mesh(3).Create(id, nil)
		require.NoError(t, err)
	}

	return r
}

func TestAddGroupElementsHighestOnly(t *testing.T) {
	r := buildRegion(t, "root")

	src := r.GetOrCreateGroup("src")
	require.NoError(t, src.GetOrCreateMeshGroup(3).AddElement(1))
	require.NoError(t, src.GetOrCreateMeshGroup(2).AddElement(2))
	require.NoError(t, src.GetOrCreateNodesetGroup(api.DomainNodes).AddNode(5))

	dst := r.GetOrCreateGroup("dst")
	require.NoError(t, AddGroupElements(dst, src, true))

	// Only the 3D contents were copied.
	require.NotNil(t, dst.MeshGroup(3))
	assert.Equal(t, []api.ID{1}, dst.MeshGroup(3).Identifiers())
	assert.Nil(t, dst.MeshGroup(2))
	assert.Nil(t, dst.NodesetGroup(api.DomainNodes))
}

func TestAddGroupElementsAllDimensions(t *testing.T) {
	r := buildRegion(t, "root")

	src := r.GetOrCreateGroup("src")
	require.NoError(t, src.GetOrCreateMeshGroup(3).AddElement(1))
	require.NoError(t, src.GetOrCreateMeshGroup(2).AddElement(2))
	require.NoError(t, src.GetOrCreateNodesetGroup(api.DomainNodes).AddNode(5))

	dst := r.GetOrCreateGroup("dst")
	require.NoError(t, AddGroupElements(dst, src, false))

	assert.Equal(t, []api.ID{1}, dst.MeshGroup(3).Identifiers())
	assert.Equal(t, []api.ID{2}, dst.MeshGroup(2).Identifiers())
	assert.Equal(t, []api.ID{5}, dst.NodesetGroup(api.DomainNodes).Identifiers())
}

func TestAddGroupElementsFromSubregion(t *testing.T) {
	root := buildRegion(t, "root")
	body, err := root.CreateChild("body")
	require.NoError(t, err)

	_, err = body.Mesh(2).Create(9, nil)
	require.NoError(t, err)

	src := body.GetOrCreateGroup("src")
	require.NoError(t, src.GetOrCreateMeshGroup(2).AddElement(9))

	sel := root.GetOrCreateGroup("sel")
	require.NoError(t, AddGroupElements(sel, src, true))

	// The contents landed in sel's subregion group for body, since the
	// elements live in body's mesh.
	sub := sel.SubregionGroup(body)
	require.NotNil(t, sub)
	assert.Equal(t, []api.ID{9}, sub.MeshGroup(2).Identifiers())
	assert.Nil(t, sel.MeshGroup(2))
}

func TestAddGroupElementsOutsideTree(t *testing.T) {
	a := buildRegion(t, "a")
	b := buildRegion(t, "b")

	src := b.GetOrCreateGroup("src")
	require.NoError(t, src.GetOrCreateMeshGroup(2).AddElement(1))

	dst := a.GetOrCreateGroup("dst")
	err := AddGroupElements(dst, src, true)
	assert.ErrorIs(t, err, model.ErrNotDescendant)
}

func TestAddGroupNodes(t *testing.T) {
	root := buildRegion(t, "root")

	src := root.GetOrCreateGroup("src")
	require.NoError(t, src.GetOrCreateNodesetGroup(api.DomainDatapoints).AddNode(2))
	require.NoError(t, src.GetOrCreateNodesetGroup(api.DomainDatapoints).AddNode(4))

	dst := root.GetOrCreateGroup("dst")
	require.NoError(t, AddGroupNodes(dst, src, api.DomainDatapoints))

	assert.Equal(t, []api.ID{2, 4}, dst.NodesetGroup(api.DomainDatapoints).Identifiers())

	// Merging is additive and idempotent.
	require.NoError(t, AddGroupNodes(dst, src, api.DomainDatapoints))
	assert.Equal(t, []api.ID{2, 4}, dst.NodesetGroup(api.DomainDatapoints).Identifiers())

	err := AddGroupNodes(dst, src, api.DomainMesh2D)
	assert.Error(t, err)
}

func TestAddGroupNodesEmptySource(t *testing.T) {
	root := buildRegion(t, "root")

	src := root.GetOrCreateGroup("src")
	dst := root.GetOrCreateGroup("dst")

	require.NoError(t, AddGroupNodes(dst, src, api.DomainNodes))
	assert.Nil(t, dst.NodesetGroup(api.DomainNodes))
}

func TestHighestDimension(t *testing.T) {
	r := buildRegion(t, "root")
	g := r.GetOrCreateGroup("g")

	assert.Equal(t, -1, HighestDimension(g))

	require.NoError(t, g.GetOrCreateNodesetGroup(api.DomainNodes).AddNode(1))
	assert.Equal(t, 0, HighestDimension(g))

	require.NoError(t, g.GetOrCreateMeshGroup(2).AddElement(1))
	assert.Equal(t, 2, HighestDimension(g))

	require.NoError(t, g.GetOrCreateMeshGroup(3).AddElement(1))
	assert.Equal(t, 3, HighestDimension(g))
}

func TestAddRangesAndBack(t *testing.T) {
	r := buildRegion(t, "root")
	g := r.GetOrCreateGroup("g")

	ng := g.GetOrCreateNodesetGroup(api.DomainNodes)
	require.NoError(t, NodesetGroupAddRanges(ng, ranges.Parse("1-3,7")))
	assert.Equal(t, []api.ID{1, 2, 3, 7}, ng.Identifiers())
	assert.Equal(t, "1-3,7", ranges.Format(NodesetGroupRanges(ng)))

	mg := g.GetOrCreateMeshGroup(2)
	require.NoError(t, MeshGroupAddRanges(mg, ranges.Parse("2-3")))
	assert.Equal(t, "2-3", ranges.Format(MeshGroupRanges(mg)))
}

func TestAddRangesSkipsMissing(t *testing.T) {
	r := buildRegion(t, "root")
	g := r.GetOrCreateGroup("g")

	// Nodes 11-20 don't exist; only 8-10 are added.
	ng := g.GetOrCreateNodesetGroup(api.DomainNodes)
	require.NoError(t, NodesetGroupAddRanges(ng, ranges.Parse("8-20")))
	assert.Equal(t, []api.ID{8, 9, 10}, ng.Identifiers())
}

func TestGroupRangesEmpty(t *testing.T) {
	r := buildRegion(t, "root")
	g := r.GetOrCreateGroup("g")

	ng := g.GetOrCreateNodesetGroup(api.DomainNodes)
	assert.Empty(t, NodesetGroupRanges(ng))
	assert.Equal(t, "", ranges.Format(NodesetGroupRanges(ng)))
}
