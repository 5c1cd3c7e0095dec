package forest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/grovekit/grove/pkg/errors"
	"github.com/grovekit/grove/pkg/observability"
)

// envelope is the versioned nested wire format: a version tag plus the
// plain nested roots. Roots is a pointer so a payload without the field can
// be told apart from one with an empty forest.
type envelope[V Value] struct {
	Version int             `json:"version"`
	Roots   *[]PlainNode[V] `json:"roots"`
}

// Serialize encodes the forest as versioned nested JSON:
// {"version":1,"roots":[...]}. Parent back-links are omitted from the text,
// so the representation is cycle-safe. This is the durable wire format; use
// Deserialize to read it back.
func (f *Forest[V]) Serialize() ([]byte, error) {
	start := time.Now()
	roots := f.ToPlain()
	data, err := json.Marshal(envelope[V]{Version: f.version, Roots: &roots})
	observability.Forest().OnSerialize("nested", len(data), time.Since(start), err)
	return data, err
}

// Deserialize parses versioned nested JSON and replaces the forest's
// contents wholesale: roots are swapped, parent links rebuilt top-down and
// the index rebuilt. On any error the forest is unchanged.
//
// Returns CodeMalformedData when the payload does not parse or has no
// roots sequence, and CodeVersionMismatch (carrying both versions via
// errors.VersionError) when the version tag differs from FormatVersion.
func (f *Forest[V]) Deserialize(data []byte) error {
	start := time.Now()
	err := f.deserialize(data)
	observability.Forest().OnSerialize("nested_decode", len(data), time.Since(start), err)
	return err
}

func (f *Forest[V]) deserialize(data []byte) error {
	var env envelope[V]
	if err := json.Unmarshal(data, &env); err != nil {
		return errors.Wrap(errors.CodeMalformedData, err, "decode payload")
	}
	if env.Version != f.version {
		return errors.NewVersionError(env.Version, f.version)
	}
	if env.Roots == nil {
		return errors.New(errors.CodeMalformedData, "payload has no roots sequence")
	}
	f.FromPlain(*env.Roots)
	return nil
}

// Fetch produces serialized text on demand, typically from an external
// source. DeserializeFrom awaits it before touching the forest.
type Fetch func(context.Context) ([]byte, error)

// DeserializeFrom awaits fetch and applies the result via Deserialize.
// The forest is not mutated until fetch resolves; once it has, the graph
// rebuild is synchronous and uninterruptible. Errors from fetch are
// returned as-is so callers can wrap their own retry policy around it.
func (f *Forest[V]) DeserializeFrom(ctx context.Context, fetch Fetch) error {
	if fetch == nil {
		return errors.New(errors.CodeInvalidArgument, "fetch must not be nil")
	}
	data, err := fetch(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.Deserialize(data)
}
