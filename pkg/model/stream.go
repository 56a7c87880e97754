package model

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/cmlibs/zincutil/pkg/api"
)

// Stream buffers carry one domain's objects between regions. The format is
// a private CBOR envelope; callers treat buffers as opaque bytes and must
// not poke at them.

// ErrBadStream is returned when a buffer does not decode as a domain
// stream, or was written by a different codec revision.
var ErrBadStream = errors.New("malformed domain stream buffer")

const streamVersion = 1

type domainStream struct {
	Version  int             `cbor:"1,keyasint"`
	Domain   api.DomainType  `cbor:"2,keyasint"`
	Nodes    []nodeRecord    `cbor:"3,keyasint,omitempty"`
	Elements []elementRecord `cbor:"4,keyasint,omitempty"`
}

type nodeRecord struct {
	ID     api.ID               `cbor:"1,keyasint"`
	Values map[string][]float64 `cbor:"2,keyasint,omitempty"`
}

type elementRecord struct {
	ID    api.ID   `cbor:"1,keyasint"`
	Nodes []api.ID `cbor:"2,keyasint,omitempty"`
}

// ExportDomain serializes one of region's domains to a stream buffer.
// Exporting an empty domain is fine and yields a buffer that imports as a
// no-op.
func ExportDomain(r *Region, dt api.DomainType) ([]byte, error) {
	st := domainStream{Version: streamVersion, Domain: dt}

	switch {
	case dt.IsNodeset():
		ns := r.Nodeset(dt)
		for _, id := range ns.Identifiers() {
			st.Nodes = append(st.Nodes, nodeRecord{
				ID:     id,
				Values: ns.Find(id).values,
			})
		}

	case dt.IsMesh():
		m := r.Mesh(dt.Dimension())
		for _, id := range m.Identifiers() {
			st.Elements = append(st.Elements, elementRecord{
				ID:    id,
				Nodes: m.Find(id).nodes,
			})
		}

	default:
		return nil, fmt.Errorf("cannot export domain %s", dt)
	}

	return cbor.Marshal(st)
}

// ImportDomain merges the objects in a stream buffer into region's
// matching domain. The whole buffer is checked up front, for identifier
// collisions and for the buffer's own records being valid, so a failed
// import leaves the region untouched. Observers see one event for the
// whole import.
func ImportDomain(r *Region, data []byte) error {
	st, err := decodeStream(data)
	if err != nil {
		return err
	}

	switch {
	case st.Domain.IsNodeset():
		ns := r.Nodeset(st.Domain)

		seen := map[api.ID]bool{}
		for _, rec := range st.Nodes {
			if rec.ID < 1 {
				return fmt.Errorf("importing %s %s: %w", st.Domain, rec.ID, ErrBadIdentifier)
			}
			if seen[rec.ID] || ns.Find(rec.ID) != nil {
				return fmt.Errorf("importing %s %s: %w", st.Domain, rec.ID, ErrIDInUse)
			}
			seen[rec.ID] = true
		}

		return r.Batch(func() error {
			for _, rec := range st.Nodes {
				n, err := ns.Create(rec.ID)
				if err != nil {
					return err
				}

				for field, v := range rec.Values {
					n.SetValues(field, v)
				}
			}

			return nil
		})

	case st.Domain.IsMesh():
		m := r.Mesh(st.Domain.Dimension())

		seen := map[api.ID]bool{}
		for _, rec := range st.Elements {
			if rec.ID < 1 {
				return fmt.Errorf("importing %s %s: %w", st.Domain, rec.ID, ErrBadIdentifier)
			}
			if seen[rec.ID] || m.Find(rec.ID) != nil {
				return fmt.Errorf("importing %s %s: %w", st.Domain, rec.ID, ErrIDInUse)
			}
			seen[rec.ID] = true
		}

		return r.Batch(func() error {
			for _, rec := range st.Elements {
				if _, err := m.Create(rec.ID, rec.Nodes); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return fmt.Errorf("%w: domain %s", ErrBadStream, st.Domain)
}

// RetargetDomain rewrites the domain tag of an exported nodeset buffer, so
// nodes can be imported as datapoints or vice versa. Mesh buffers cannot
// be retargeted.
func RetargetDomain(data []byte, dt api.DomainType) ([]byte, error) {
	st, err := decodeStream(data)
	if err != nil {
		return nil, err
	}

	if !st.Domain.IsNodeset() || !dt.IsNodeset() {
		return nil, fmt.Errorf("cannot retarget %s buffer to %s", st.Domain, dt)
	}

	st.Domain = dt

	return cbor.Marshal(st)
}

func decodeStream(data []byte) (*domainStream, error) {
	var st domainStream

	if err := cbor.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadStream, err)
	}

	if st.Version != streamVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadStream, st.Version)
	}

	return &st, nil
}
