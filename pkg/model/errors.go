package model

import (
	"errors"
)

var (
	// ErrIDInUse is returned when creating or renumbering an object would
	// reuse an identifier already present in the domain.
	ErrIDInUse = errors.New("identifier already in use")

	// ErrNotFound is returned when no object has the given identifier.
	ErrNotFound = errors.New("no object with identifier")

	// ErrBadIdentifier is returned for identifiers below 1.
	ErrBadIdentifier = errors.New("identifiers must be positive")

	// ErrNameInUse is returned when creating a child region with the name
	// of an existing sibling.
	ErrNameInUse = errors.New("name already in use")

	// ErrNotDescendant is returned when an operation expects a region
	// inside another region's tree.
	ErrNotDescendant = errors.New("region is not in this region's tree")

	// ErrDomainNotEmpty is returned when an operation expects an empty
	// destination domain.
	ErrDomainNotEmpty = errors.New("domain is not empty")
)
