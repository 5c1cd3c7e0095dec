package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/pkg/forest"
)

// newServeCmd creates the serve command, which exposes a forest file over a
// read-only HTTP API.
func newServeCmd() *cobra.Command {
	var (
		format string
		addr   string
	)

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a forest file over a read-only HTTP API",
		Long: `Serve a forest file over a read-only HTTP API.

Endpoints:
  GET /stats            structural statistics
  GET /validate         validation report
  GET /tree             the forest in nested format
  GET /nodes/{id}       a node's value, parent and children
  GET /nodes/{id}/path  root-first path of IDs to the node

The default listen address comes from the config file
(~/.config/grove/config.toml) when present.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Serve.Addr
			}

			f, err := readForest(args[0], format)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(f),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				logger.Infof("serving %d nodes on %s", f.Count(), addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve: %w", err)
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatNested, "input format: nested, flat, plain")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// nodeDetail is the JSON shape served for a single node.
type nodeDetail struct {
	Value    forest.Item `json:"value"`
	ParentID *string     `json:"parentId"`
	Children []string    `json:"children"`
}

// newRouter wires the read-only API for a loaded forest.
// The forest is never mutated after startup, so handlers read it without
// locking.
func newRouter(f *forest.Forest[forest.Item]) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, f.Statistics())
	})

	r.Get("/validate", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, f.Validate())
	})

	r.Get("/tree", func(w http.ResponseWriter, _ *http.Request) {
		data, err := f.Serialize()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	r.Get("/nodes/{id}", func(w http.ResponseWriter, req *http.Request) {
		n, ok := f.FindByID(chi.URLParam(req, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "node not found"})
			return
		}
		detail := nodeDetail{Value: n.Value(), Children: []string{}}
		if p := n.Parent(); p != nil {
			id := p.ID()
			detail.ParentID = &id
		}
		for _, c := range n.Children() {
			detail.Children = append(detail.Children, c.ID())
		}
		writeJSON(w, http.StatusOK, detail)
	})

	r.Get("/nodes/{id}/path", func(w http.ResponseWriter, req *http.Request) {
		n, ok := f.FindByID(chi.URLParam(req, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "node not found"})
			return
		}
		ids := []string{}
		for _, p := range f.Path(n) {
			ids = append(ids, p.ID())
		}
		writeJSON(w, http.StatusOK, ids)
	})

	return r
}

// writeJSON encodes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
