// Package region moves node data between regions: converting nodes to
// datapoints with collision-free renumbering, and copying domains through
// the opaque stream codec.
package region

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cmlibs/zincutil/pkg/api"
	"github.com/cmlibs/zincutil/pkg/model"
	"github.com/cmlibs/zincutil/pkg/remap"
)

// Converter transplants point data between regions. The zero value works
// and logs nowhere.
type Converter struct {
	log *zap.Logger
}

func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}

	return &Converter{log: log}
}

// ConvertNodesToDatapoints moves every node in source into target as a
// datapoint. Nodes keep their identifiers; datapoints already in target
// are renumbered first where they collide with an incoming node
// identifier, preferring holes in the combined identifier space before
// extending past its maximum. On success the source nodes are destroyed.
// Any failure aborts the whole operation.
//
// Both regions are batched for the duration, so observers see one
// consistent update per region rather than a flicker of transient
// duplicate or missing identifiers.
func (c *Converter) ConvertNodesToDatapoints(target, source *model.Region) error {
	if c.log == nil {
		c.log = zap.NewNop()
	}

	return source.Batch(func() error {
		return target.Batch(func() error {
			return c.convert(target, source)
		})
	})
}

func (c *Converter) convert(target, source *model.Region) error {
	nodes := source.Nodeset(api.DomainNodes)
	if nodes.Size() == 0 {
		return nil
	}

	datapoints := target.Nodeset(api.DomainDatapoints)
	if datapoints.Size() > 0 {
		nodeIDs := nodes.Identifiers()
		datapointIDs := datapoints.Identifiers()

		mapping := remap.Compute(nodeIDs, datapointIDs, datapointIDs)

		for _, from := range datapointIDs {
			to := mapping[from]
			if to == from {
				continue
			}

			// Remapped identifiers are drawn from unused space, so this
			// only fails if something else is mutating the region.
			if err := datapoints.SetIdentifier(from, to); err != nil {
				return fmt.Errorf("renumbering datapoint %s: %w", from, err)
			}

			c.log.Debug("renumbered datapoint",
				zap.Int64("from", int64(from)),
				zap.Int64("to", int64(to)))
		}
	}

	buf, err := model.ExportDomain(source, api.DomainNodes)
	if err != nil {
		return fmt.Errorf("exporting nodes: %w", err)
	}

	buf, err = model.RetargetDomain(buf, api.DomainDatapoints)
	if err != nil {
		return fmt.Errorf("retargeting nodes: %w", err)
	}

	if err := model.ImportDomain(target, buf); err != nil {
		return fmt.Errorf("loading nodes as datapoints: %w", err)
	}

	c.log.Info("converted nodes to datapoints",
		zap.String("source", source.Name()),
		zap.String("target", target.Name()),
		zap.Int("count", nodes.Size()))

	nodes.DestroyAll()

	return nil
}
