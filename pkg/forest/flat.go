package forest

import (
	"encoding/json"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/grovekit/grove/pkg/errors"
	"github.com/grovekit/grove/pkg/observability"
)

// FlatRecord is the flat serialization shape: one record per node carrying
// the node's value and the ID of its parent. ParentID is nil for roots.
type FlatRecord[V Value] struct {
	Value    V       `json:"value"`
	ParentID *string `json:"parentId"`
}

// Flatten produces one record per node in pre-order traversal order.
// The record order is stable, so Flatten after Unflatten reproduces the
// same sequence.
func (f *Forest[V]) Flatten() []FlatRecord[V] {
	out := make([]FlatRecord[V], 0, len(f.index))
	f.Walk(PreOrder, func(n *Node[V], _ int) bool {
		rec := FlatRecord[V]{Value: n.value}
		if n.parent != nil {
			pid := n.parent.ID()
			rec.ParentID = &pid
		}
		out = append(out, rec)
		return true
	})
	return out
}

// Unflatten replaces the forest's contents with trees rebuilt from flat
// records in two passes: pass one materializes a node per record, pass two
// links each node to its parent resolved by ID (roots go through the
// normal root-add path).
//
// A record whose ParentID resolves to no other record fails with
// CodeMalformedData, as does a record naming itself as parent or a record
// whose parent chain never reaches a root; the forest is unchanged in all
// cases. Duplicate IDs follow the index's last-writer-wins rule: later
// records capture the ID for parent resolution.
func (f *Forest[V]) Unflatten(records []FlatRecord[V]) error {
	nodes := make([]*Node[V], len(records))
	byID := make(map[string]*Node[V], len(records))
	parentID := make(map[string]*string, len(records))
	for i, rec := range records {
		if rec.Value.ID() == "" {
			return errors.New(errors.CodeMalformedData, "record %d has an empty id", i)
		}
		nodes[i] = NewNode(rec.Value)
		byID[rec.Value.ID()] = nodes[i]
		parentID[rec.Value.ID()] = rec.ParentID
	}

	// Resolve every parent before mutating the forest so a bad record
	// leaves it untouched.
	for i, rec := range records {
		if rec.ParentID == nil {
			continue
		}
		parent, ok := byID[*rec.ParentID]
		if !ok {
			return errors.New(errors.CodeMalformedData,
				"record %q references unknown parent %q", rec.Value.ID(), *rec.ParentID)
		}
		if parent == nodes[i] {
			return errors.New(errors.CodeMalformedData,
				"record %q names itself as parent", rec.Value.ID())
		}
	}

	// Every parent chain must terminate at a root record. Records whose
	// parents form a cycle resolve pairwise yet would be unreachable from
	// any root once linked.
	grounded := mapset.NewThreadUnsafeSet[string]()
	for id := range parentID {
		path := mapset.NewThreadUnsafeSet[string]()
		cur := id
		for !grounded.Contains(cur) {
			if path.Contains(cur) {
				return errors.New(errors.CodeMalformedData,
					"records form a parent cycle at %q", cur)
			}
			path.Add(cur)
			p := parentID[cur]
			if p == nil {
				break
			}
			cur = *p
		}
		path.Each(func(s string) bool {
			grounded.Add(s)
			return false
		})
	}

	f.Clear()
	for i, rec := range records {
		n := nodes[i]
		if rec.ParentID == nil {
			_ = f.AddRoot(n)
			continue
		}
		parent := byID[*rec.ParentID]
		n.parent = parent
		parent.children = append(parent.children, n)
		f.index[n.ID()] = n
	}
	return nil
}

// MarshalFlat encodes the flat records as a JSON array.
func (f *Forest[V]) MarshalFlat() ([]byte, error) {
	start := time.Now()
	data, err := json.Marshal(f.Flatten())
	observability.Forest().OnSerialize("flat", len(data), time.Since(start), err)
	return data, err
}

// UnmarshalFlat decodes a JSON array of flat records and replaces the
// forest's contents via Unflatten. Returns CodeMalformedData when the
// payload is not such an array; the forest is unchanged on error.
func (f *Forest[V]) UnmarshalFlat(data []byte) error {
	var records []FlatRecord[V]
	if err := json.Unmarshal(data, &records); err != nil {
		return errors.Wrap(errors.CodeMalformedData, err, "decode flat records")
	}
	return f.Unflatten(records)
}
