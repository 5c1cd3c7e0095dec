package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grovekit/grove/pkg/forest"
)

func TestRouterStats(t *testing.T) {
	srv := httptest.NewServer(newRouter(sampleForest(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var stats forest.Stats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatal(err)
	}
	if stats.Nodes != 2 || stats.Roots != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRouterNode(t *testing.T) {
	srv := httptest.NewServer(newRouter(sampleForest(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nodes/b")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var detail nodeDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatal(err)
	}
	if detail.Value.UID != "b" {
		t.Errorf("value id = %q, want b", detail.Value.UID)
	}
	if detail.ParentID == nil || *detail.ParentID != "a" {
		t.Errorf("parentId = %v, want a", detail.ParentID)
	}
	if len(detail.Children) != 0 {
		t.Errorf("children = %v, want empty", detail.Children)
	}
}

func TestRouterNodePath(t *testing.T) {
	srv := httptest.NewServer(newRouter(sampleForest(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nodes/b/path")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var ids []string
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("path = %v, want [a b]", ids)
	}
}

func TestRouterNodeNotFound(t *testing.T) {
	srv := httptest.NewServer(newRouter(sampleForest(t)))
	defer srv.Close()

	for _, path := range []string{"/nodes/zzz", "/nodes/zzz/path"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestRouterTree(t *testing.T) {
	srv := httptest.NewServer(newRouter(sampleForest(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/tree")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Version int               `json:"version"`
		Roots   []json.RawMessage `json:"roots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	if envelope.Version != forest.FormatVersion || len(envelope.Roots) != 1 {
		t.Errorf("tree envelope = %+v", envelope)
	}
}
