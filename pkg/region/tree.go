package region

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cmlibs/zincutil/pkg/api"
	"github.com/cmlibs/zincutil/pkg/model"
)

// allDomains is the order domains are copied in, nodes first so that
// imported elements find their nodes already present.
var allDomains = []api.DomainType{
	api.DomainNodes,
	api.DomainDatapoints,
	api.DomainMesh1D,
	api.DomainMesh2D,
	api.DomainMesh3D,
}

// CopyTree copies every non-empty domain of every region under src into a
// mirrored region tree under dst. Exports are read-only and fan out across
// the subtree; imports apply sequentially, one batch per region. dst must
// not already contain a region at any path being copied into with a
// non-empty matching domain.
//
// Nothing may mutate src while CopyTree runs.
func CopyTree(ctx context.Context, dst, src *model.Region) error {
	type export struct {
		path   string
		domain api.DomainType
		data   []byte
	}

	var jobs []export
	src.Walk(func(r *model.Region) {
		for _, dt := range allDomains {
			if domainSize(r, dt) == 0 {
				continue
			}

			jobs = append(jobs, export{path: pathUnder(src, r), domain: dt})
		}
	})

	// gctx is cancelled on the first export error or when the caller
	// cancels, so the remaining goroutines stop early.
	g, gctx := errgroup.WithContext(ctx)

	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r := src.FindSubregion(jobs[i].path)

			data, err := model.ExportDomain(r, jobs[i].domain)
			if err != nil {
				return fmt.Errorf("exporting %s of %q: %w", jobs[i].domain, jobs[i].path, err)
			}

			jobs[i].data = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		target, err := mirrorPath(dst, job.path)
		if err != nil {
			return err
		}

		err = target.Batch(func() error {
			return model.ImportDomain(target, job.data)
		})
		if err != nil {
			return fmt.Errorf("loading %s into %q: %w", job.domain, job.path, err)
		}
	}

	return nil
}

func domainSize(r *model.Region, dt api.DomainType) int {
	if dt.IsMesh() {
		return r.Mesh(dt.Dimension()).Size()
	}

	return r.Nodeset(dt).Size()
}

// pathUnder returns r's path relative to root, "" for root itself.
func pathUnder(root, r *model.Region) string {
	if r == root {
		return ""
	}

	prefix := pathUnder(root, r.Parent())
	if prefix == "" {
		return r.Name()
	}

	return prefix + "/" + r.Name()
}

// mirrorPath finds or creates the region at the given path under root.
func mirrorPath(root *model.Region, path string) (*model.Region, error) {
	if path == "" {
		return root, nil
	}

	r := root
	for _, name := range strings.Split(path, "/") {
		next := r.FindChild(name)
		if next == nil {
			var err error
			next, err = r.CreateChild(name)
			if err != nil {
				return nil, err
			}
		}

		r = next
	}

	return r, nil
}
