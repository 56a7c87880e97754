package model

import (
	"sort"

	"github.com/google/uuid"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Observer receives coalesced change notifications for one region.
type Observer func(ChangeEvent)

// ObserverHandle identifies a registered observer for later removal.
type ObserverHandle string

// ChangeEvent describes one batch of mutations to a region's domains.
// Domains is sorted and never empty.
type ChangeEvent struct {
	Region  *Region
	Domains []api.DomainType
}

// AddObserver registers fn to be called after each mutation, or once per
// outermost EndChange while batching.
func (r *Region) AddObserver(fn Observer) ObserverHandle {
	h := ObserverHandle(uuid.NewString())
	r.observers[h] = fn
	return h
}

// RemoveObserver unregisters the observer. Unknown handles are ignored.
func (r *Region) RemoveObserver(h ObserverHandle) {
	delete(r.observers, h)
}

// BeginChange suspends observer notification for r until the matching
// EndChange. Calls nest. Prefer Batch, which cannot leak an open batch.
func (r *Region) BeginChange() {
	r.batchDepth += 1
}

// EndChange closes the innermost BeginChange. Closing the outermost batch
// delivers a single event covering every domain changed inside it, so
// observers never see a half-applied bulk mutation. An EndChange without a
// matching BeginChange is ignored.
func (r *Region) EndChange() {
	if r.batchDepth == 0 {
		return
	}

	r.batchDepth -= 1

	if r.batchDepth == 0 {
		r.flush()
	}
}

// Batch runs fn between BeginChange and EndChange. The EndChange happens on
// every exit path, including when fn fails or panics.
func (r *Region) Batch(fn func() error) error {
	r.BeginChange()
	defer r.EndChange()

	return fn()
}

// HierarchicalBatch is Batch over r and every region below it, for
// mutations that span the region tree.
func (r *Region) HierarchicalBatch(fn func() error) error {
	var all []*Region
	r.Walk(func(s *Region) {
		all = append(all, s)
	})

	for _, s := range all {
		s.BeginChange()
	}

	defer func() {
		for _, s := range all {
			s.EndChange()
		}
	}()

	return fn()
}

// changed records a mutation to one domain, notifying immediately when no
// batch is open.
func (r *Region) changed(dt api.DomainType) {
	r.pending[dt] = true

	if r.batchDepth == 0 {
		r.flush()
	}
}

func (r *Region) flush() {
	if len(r.pending) == 0 {
		return
	}

	domains := make([]api.DomainType, 0, len(r.pending))
	for dt := range r.pending {
		domains = append(domains, dt)
	}

	sort.Slice(domains, func(i, j int) bool { return domains[i] < domains[j] })

	r.pending = map[api.DomainType]bool{}

	ev := ChangeEvent{Region: r, Domains: domains}
	for _, fn := range r.observers {
		fn(ev)
	}
}
