package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlibs/zincutil/pkg/api"
)

const example = `
region:
  name: heart
  nodes: 1-30,55,66-70
  datapoints: 1-5
  meshes:
    3: 1-10
  groups:
    - name: apex
      nodes: 1-3
      meshes:
        3: 1-2
  children:
    - name: valves
      nodes: 1-8
`

func TestLoadBuild(t *testing.T) {
	d, err := Load([]byte(example))
	require.NoError(t, err)
	assert.Equal(t, "heart", d.Region.Name)

	r, err := d.Build()
	require.NoError(t, err)

	assert.Equal(t, 36, r.Nodeset(api.DomainNodes).Size())
	assert.Equal(t, 5, r.Nodeset(api.DomainDatapoints).Size())
	assert.Equal(t, 10, r.Mesh(3).Size())

	g := r.Group("apex")
	require.NotNil(t, g)
	assert.Equal(t, []api.ID{1, 2, 3}, g.NodesetGroup(api.DomainNodes).Identifiers())
	assert.Equal(t, []api.ID{1, 2}, g.MeshGroup(3).Identifiers())

	valves := r.FindSubregion("valves")
	require.NotNil(t, valves)
	assert.Equal(t, 8, valves.Nodeset(api.DomainNodes).Size())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load([]byte("region: {}"))
	assert.Error(t, err)

	_, err = Load([]byte("{not yaml"))
	assert.Error(t, err)
}

func TestDescribeRoundTrip(t *testing.T) {
	d, err := Load([]byte(example))
	require.NoError(t, err)

	r, err := d.Build()
	require.NoError(t, err)

	out := Describe(r)

	assert.Equal(t, "1-30,55,66-70", out.Region.Nodes)
	assert.Equal(t, "1-5", out.Region.Datapoints)
	assert.Equal(t, map[int]string{3: "1-10"}, out.Region.Meshes)

	require.Len(t, out.Region.Groups, 1)
	assert.Equal(t, "apex", out.Region.Groups[0].Name)
	assert.Equal(t, "1-3", out.Region.Groups[0].Nodes)
	assert.Equal(t, map[int]string{3: "1-2"}, out.Region.Groups[0].Meshes)

	require.Len(t, out.Region.Children, 1)
	assert.Equal(t, "valves", out.Region.Children[0].Name)
	assert.Equal(t, "1-8", out.Region.Children[0].Nodes)

	// And it survives a YAML round trip.
	data, err := out.Marshal()
	require.NoError(t, err)

	again, err := Load(data)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestBuildBadMeshDimension(t *testing.T) {
	d := &Document{Region: RegionDoc{
		Name:   "r",
		Meshes: map[int]string{4: "1-3"},
	}}

	_, err := d.Build()
	assert.Error(t, err)
}

func TestBuildMessyRangeStrings(t *testing.T) {
	// Range strings go through the tolerant parser.
	d := &Document{Region: RegionDoc{
		Name:  "r",
		Nodes: "30-1, 55,66-70s",
	}}

	r, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, 36, r.Nodeset(api.DomainNodes).Size())
}
