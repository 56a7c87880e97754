package api

import (
	"fmt"
)

// DomainType names one of the object domains a region owns: the two point
// domains (nodes, datapoints) and the meshes of dimension 1 to 3.
type DomainType uint8

const (
	DomainNone DomainType = iota
	DomainNodes
	DomainDatapoints
	DomainMesh1D
	DomainMesh2D
	DomainMesh3D
)

// MeshDomain returns the mesh domain of the given dimension (1 to 3), or
// DomainNone for anything else.
func MeshDomain(dimension int) DomainType {
	switch dimension {
	case 1:
		return DomainMesh1D
	case 2:
		return DomainMesh2D
	case 3:
		return DomainMesh3D
	}

	return DomainNone
}

// IsMesh returns true for the element domains.
func (dt DomainType) IsMesh() bool {
	return dt == DomainMesh1D || dt == DomainMesh2D || dt == DomainMesh3D
}

// IsNodeset returns true for the point domains.
func (dt DomainType) IsNodeset() bool {
	return dt == DomainNodes || dt == DomainDatapoints
}

// Dimension returns 1 to 3 for mesh domains, and 0 for the point domains.
func (dt DomainType) Dimension() int {
	switch dt {
	case DomainMesh1D:
		return 1
	case DomainMesh2D:
		return 2
	case DomainMesh3D:
		return 3
	}

	return 0
}

func (dt DomainType) String() string {
	switch dt {
	case DomainNodes:
		return "nodes"
	case DomainDatapoints:
		return "datapoints"
	case DomainMesh1D:
		return "mesh1d"
	case DomainMesh2D:
		return "mesh2d"
	case DomainMesh3D:
		return "mesh3d"
	}

	return fmt.Sprintf("DomainType(%d)", uint8(dt))
}
