package region

import (
	"fmt"

	"github.com/cmlibs/zincutil/pkg/model"
)

// CopyNodeset copies the contents of ns into the matching domain of dst,
// which must be empty. Identifiers and field values are preserved.
func CopyNodeset(dst *model.Region, ns *model.Nodeset) error {
	if dst.Nodeset(ns.DomainType()).Size() > 0 {
		return fmt.Errorf("%s in %q: %w", ns.DomainType(), dst.Name(), model.ErrDomainNotEmpty)
	}

	buf, err := model.ExportDomain(ns.Region(), ns.DomainType())
	if err != nil {
		return fmt.Errorf("exporting %s: %w", ns.DomainType(), err)
	}

	if err := model.ImportDomain(dst, buf); err != nil {
		return fmt.Errorf("loading %s: %w", ns.DomainType(), err)
	}

	return nil
}
