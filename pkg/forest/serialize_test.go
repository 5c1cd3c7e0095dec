package forest_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/grovekit/grove/pkg/errors"
	"github.com/grovekit/grove/pkg/forest"
)

func TestSerializeRoundTrip(t *testing.T) {
	f, _ := buildSample(t)

	data, err := f.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	restored := forest.New[forest.Item]()
	if err := restored.Deserialize(data); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if restored.Count() != f.Count() {
		t.Errorf("Count = %d, want %d", restored.Count(), f.Count())
	}
	// Identical id-to-parent-id mapping for every node.
	f.Walk(forest.PreOrder, func(n *forest.Node[forest.Item], _ int) bool {
		got, ok := restored.FindByID(n.ID())
		if !ok {
			t.Errorf("node %q missing after round trip", n.ID())
			return true
		}
		wantParent, gotParent := "", ""
		if n.Parent() != nil {
			wantParent = n.Parent().ID()
		}
		if got.Parent() != nil {
			gotParent = got.Parent().ID()
		}
		if gotParent != wantParent {
			t.Errorf("node %q parent = %q, want %q", n.ID(), gotParent, wantParent)
		}
		return true
	})
	checkIndexInvariant(t, restored)
}

func TestSerializeEnvelope(t *testing.T) {
	f, _ := buildSample(t)
	data, err := f.Serialize()
	if err != nil {
		t.Fatal(err)
	}

	var env struct {
		Version int               `json:"version"`
		Roots   []json.RawMessage `json:"roots"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Version != forest.FormatVersion {
		t.Errorf("version = %d, want %d", env.Version, forest.FormatVersion)
	}
	if len(env.Roots) != 1 {
		t.Errorf("roots = %d, want 1", len(env.Roots))
	}
}

func TestSerializeEmptyForest(t *testing.T) {
	f := forest.New[forest.Item]()
	data, err := f.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1,"roots":[]}` {
		t.Errorf("empty forest serialized to %s", data)
	}
}

func TestDeserializeErrors(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantCode errors.Code
	}{
		{"VersionMismatch", `{"version":9999,"roots":[]}`, errors.CodeVersionMismatch},
		{"MissingVersion", `{"roots":[]}`, errors.CodeVersionMismatch},
		{"MissingRoots", `{"version":1}`, errors.CodeMalformedData},
		{"NotJSON", `{`, errors.CodeMalformedData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := buildSample(t)
			err := f.Deserialize([]byte(tt.payload))
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("Deserialize = %v, want %s", err, tt.wantCode)
			}
			// The forest is untouched on error.
			if f.Count() != 4 {
				t.Errorf("Count = %d after failed deserialize, want 4", f.Count())
			}
		})
	}
}

func TestDeserializeVersionDetails(t *testing.T) {
	f := forest.New[forest.Item]()
	err := f.Deserialize([]byte(`{"version":9999,"roots":[]}`))

	var ve *errors.VersionError
	if !stderrors.As(err, &ve) {
		t.Fatalf("no VersionError in chain: %v", err)
	}
	if ve.Found != 9999 || ve.Expected != forest.FormatVersion {
		t.Errorf("VersionError = %+v, want found 9999 expected %d", ve, forest.FormatVersion)
	}
}

func TestDeserializeReplacesWholesale(t *testing.T) {
	f, _ := buildSample(t)
	if err := f.Deserialize([]byte(`{"version":1,"roots":[{"value":{"id":"only"}}]}`)); err != nil {
		t.Fatal(err)
	}
	if f.Count() != 1 {
		t.Errorf("Count = %d, want 1", f.Count())
	}
	if _, ok := f.FindByID("2"); ok {
		t.Error("old node survived wholesale replacement")
	}
	if _, ok := f.FindByID("only"); !ok {
		t.Error("new root missing")
	}
}

func TestDeserializeFrom(t *testing.T) {
	f := forest.New[forest.Item]()
	src, _ := buildSampleSerialized(t)

	err := f.DeserializeFrom(context.Background(), func(context.Context) ([]byte, error) {
		return src, nil
	})
	if err != nil {
		t.Fatalf("DeserializeFrom: %v", err)
	}
	if f.Count() != 4 {
		t.Errorf("Count = %d, want 4", f.Count())
	}
}

func TestDeserializeFromFetchError(t *testing.T) {
	f, _ := buildSample(t)
	fetchErr := fmt.Errorf("upstream unavailable")

	err := f.DeserializeFrom(context.Background(), func(context.Context) ([]byte, error) {
		return nil, fetchErr
	})
	if err != fetchErr {
		t.Fatalf("DeserializeFrom = %v, want the fetch error", err)
	}
	// The forest is not mutated until the input resolves.
	if f.Count() != 4 {
		t.Errorf("Count = %d after failed fetch, want 4", f.Count())
	}
}

func TestDeserializeFromCancelledContext(t *testing.T) {
	f, _ := buildSample(t)
	ctx, cancel := context.WithCancel(context.Background())

	src, _ := buildSampleSerialized(t)
	err := f.DeserializeFrom(ctx, func(context.Context) ([]byte, error) {
		cancel()
		return src, nil
	})
	if err == nil {
		t.Fatal("DeserializeFrom should surface context cancellation")
	}
	if f.Count() != 4 {
		t.Errorf("Count = %d after cancelled fetch, want 4", f.Count())
	}
}

func TestPlainRoundTrip(t *testing.T) {
	f, _ := buildSample(t)

	data, err := f.MarshalPlain()
	if err != nil {
		t.Fatal(err)
	}

	restored := forest.New[forest.Item]()
	if err := restored.UnmarshalPlain(data); err != nil {
		t.Fatal(err)
	}
	if restored.Count() != 4 {
		t.Errorf("Count = %d, want 4", restored.Count())
	}
	n4, ok := restored.FindByID("4")
	if !ok || n4.Parent() == nil || n4.Parent().ID() != "3" {
		t.Error("parent links not rebuilt from plain form")
	}
	checkIndexInvariant(t, restored)

	// Plain form carries no version tag.
	if got := string(data); len(got) > 0 && got[0] != '[' {
		t.Errorf("plain form is not a bare array: %s", got)
	}
}

func TestToPlainShape(t *testing.T) {
	f, _ := buildSample(t)
	plain := f.ToPlain()
	if len(plain) != 1 {
		t.Fatalf("roots = %d, want 1", len(plain))
	}
	kids := plain[0].Children
	if len(kids) != 2 || kids[0].Value.ID() != "2" || kids[1].Value.ID() != "3" {
		t.Errorf("children of root = %+v", kids)
	}
	if !reflect.DeepEqual(kids[1].Children[0].Value.ID(), "4") {
		t.Error("grandchild missing from plain form")
	}
}

func buildSampleSerialized(t *testing.T) ([]byte, *forest.Forest[forest.Item]) {
	t.Helper()
	f, _ := buildSample(t)
	data, err := f.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	return data, f
}
