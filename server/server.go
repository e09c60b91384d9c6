// Package server exposes the layout engine over HTTP: upload a graph in the
// text interchange format, let the simulation settle, and fetch the result
// as JSON or SVG.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deadfoxygrandpa/phybas-graviz/ingest"
	"github.com/deadfoxygrandpa/phybas-graviz/interact"
	"github.com/deadfoxygrandpa/phybas-graviz/models"
	"github.com/deadfoxygrandpa/phybas-graviz/physics"
	"github.com/deadfoxygrandpa/phybas-graviz/render"
)

// Config holds the server settings.
type Config struct {
	Port   int
	Logger *log.Logger
	// SettleSteps bounds the number of simulation steps run on an uploaded
	// graph before it is stored.
	SettleSteps int
}

// store keeps uploaded graphs in memory. This is a demo server, not a
// persistence layer.
type store struct {
	mu     sync.RWMutex
	graphs map[string]*models.Graph
}

func newStore() *store {
	return &store{graphs: make(map[string]*models.Graph)}
}

func (s *store) put(g *models.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graphs[g.UID] = g
}

func (s *store) get(id string) (*models.Graph, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.graphs[id]
	return g, ok
}

// Start runs the server until ctx is canceled.
func Start(ctx context.Context, cfg Config) error {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.SettleSteps <= 0 {
		cfg.SettleSteps = 900 // 30 seconds of simulated time at 30 FPS
	}

	st := newStore()

	// Pre-settle the sample so the index links work immediately.
	sample := ingest.Sample()
	sample.UID = "sample"
	settle(sample, cfg.SettleSteps)
	st.put(sample)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router(st, cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.Logger.Info("starting server", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// router wires the HTTP routes.
func router(st *store, cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", handleIndex)
	r.Post("/api/graph", handleUpload(st, cfg))
	r.Get("/api/graph/{id}", handleGraph(st))
	r.Get("/api/graph/{id}/svg", handleSVG(st))
	return r
}

// settle runs the simulation from a fresh scatter for a bounded number of
// fixed 30 FPS steps.
func settle(g *models.Graph, steps int) {
	physics.Scatter(g, interact.BoundSize, 1)
	for i := 0; i < steps; i++ {
		physics.Step(g, 1.0/interact.TargetFPS)
	}
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>phybas-graviz</title></head>
<body>
  <h1>phybas-graviz</h1>
  <p>Force-directed graph layout over HTTP.</p>
  <ul>
    <li><a href="/api/graph/sample">Sample graph (JSON)</a></li>
    <li><a href="/api/graph/sample/svg">Sample graph (SVG)</a></li>
  </ul>
  <p>POST a graph in the text interchange format to /api/graph:</p>
  <pre>1 Dreams
2 Reality
--
1 2 anchors</pre>
</body>
</html>
`)
}

// handleUpload parses the text interchange format from the request body,
// settles the layout, and stores the result.
func handleUpload(st *store, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := ingest.ParseText("upload", http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			http.Error(w, "parsing graph: "+err.Error(), http.StatusBadRequest)
			return
		}

		settle(g, cfg.SettleSteps)
		st.put(g)
		cfg.Logger.Info("graph uploaded", "id", g.UID, "nodes", len(g.Nodes), "edges", len(g.Edges))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, "{\n  \"id\": %q\n}\n", g.UID)
	}
}

func handleGraph(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := st.get(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "graph not found", http.StatusNotFound)
			return
		}

		out, err := (&render.JSONRenderer{}).Render(g, render.NewDefaultOptions())
		if err != nil {
			http.Error(w, "encoding graph: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(out)
	}
}

func handleSVG(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := st.get(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "graph not found", http.StatusNotFound)
			return
		}

		out, err := (&render.SVGRenderer{}).Render(g, render.NewDefaultOptions())
		if err != nil {
			http.Error(w, "rendering graph: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(out)
	}
}
