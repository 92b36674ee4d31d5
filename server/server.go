// Package server exposes the city graph over HTTP.
//
// All graph access goes through a single read-write mutex: queries take the
// read lock, mutations the write lock. The JSON surface uses a flat error
// envelope and versioned /v1 routes.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/citynav/astar"
	"github.com/katalvlaran/citynav/bfs"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dfs"
	"github.com/katalvlaran/citynav/dijkstra"
	"github.com/katalvlaran/citynav/metrics"
	"github.com/katalvlaran/citynav/oplog"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	mu     sync.RWMutex
	graph  *core.Graph
	ops    *oplog.Logger
	router *mux.Router
	chain  http.Handler
}

// New creates an HTTP handler over the given graph and registers all routes.
// ops may be nil to disable operation logging.
func New(g *core.Graph, ops *oplog.Logger) *Handler {
	h := &Handler{graph: g, ops: ops, router: mux.NewRouter()}

	h.router.HandleFunc("/v1/cities", h.listCities).Methods(http.MethodGet)
	h.router.HandleFunc("/v1/cities", h.addCity).Methods(http.MethodPost)
	h.router.HandleFunc("/v1/cities/{id}", h.getCity).Methods(http.MethodGet)
	h.router.HandleFunc("/v1/cities/{id}", h.removeCity).Methods(http.MethodDelete)
	h.router.HandleFunc("/v1/roads", h.addRoad).Methods(http.MethodPost)
	h.router.HandleFunc("/v1/roads/{from}/{to}", h.removeRoad).Methods(http.MethodDelete)
	h.router.HandleFunc("/v1/graph", h.dumpGraph).Methods(http.MethodGet)
	h.router.HandleFunc("/v1/traversals/{algo}", h.traverse).Methods(http.MethodGet)
	h.router.HandleFunc("/v1/routes", h.route).Methods(http.MethodPost)
	h.router.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	h.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	h.chain = loggingMiddleware(h.router)
	h.updateGauges()
	return h
}

// ServeHTTP dispatches through the logging middleware and router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.chain.ServeHTTP(w, r)
}

// Swap replaces the underlying graph, e.g. after a data file reload.
func (h *Handler) Swap(g *core.Graph) {
	h.mu.Lock()
	h.graph = g
	h.mu.Unlock()
	h.updateGauges()
}

func (h *Handler) updateGauges() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	metrics.Cities.Set(float64(h.graph.CityCount()))
	metrics.Roads.Set(float64(h.graph.RoadCount()))
}

func (h *Handler) logOp(format string, args ...interface{}) {
	if h.ops != nil {
		h.ops.Operation(fmt.Sprintf(format, args...))
	}
}

// cityJSON is the wire shape of a city.
type cityJSON struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Roads []roadJSON `json:"roads"`
}

type roadJSON struct {
	To       int   `json:"to"`
	Distance int64 `json:"distance_km"`
}

func toCityJSON(c core.City) cityJSON {
	out := cityJSON{ID: c.ID, Name: c.Name, X: c.X, Y: c.Y, Roads: []roadJSON{}}
	for _, r := range c.Roads() {
		out.Roads = append(out.Roads, roadJSON{To: r.To, Distance: r.Distance})
	}
	return out
}

// GET /v1/cities — all cities in insertion order.
func (h *Handler) listCities(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	cities := h.graph.Cities()
	h.mu.RUnlock()

	out := make([]cityJSON, 0, len(cities))
	for _, c := range cities {
		out = append(out, toCityJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// POST /v1/cities — add one city.
func (h *Handler) addCity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		X    int    `json:"x"`
		Y    int    `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	h.mu.Lock()
	err := h.graph.AddCity(req.ID, req.Name, req.X, req.Y)
	h.mu.Unlock()
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, core.ErrDuplicateCity) {
			status = http.StatusConflict
		}
		writeError(w, status, err.Error())
		return
	}
	metrics.GraphMutations.WithLabelValues("add_city").Inc()
	h.updateGauges()
	h.logOp("City added: %s (ID %d)", req.Name, req.ID)
	writeJSON(w, http.StatusCreated, map[string]int{"id": req.ID})
}

// GET /v1/cities/{id} — one city.
func (h *Handler) getCity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "city id must be an integer")
		return
	}

	h.mu.RLock()
	c, ok := h.graph.City(id)
	h.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, core.ErrCityNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, toCityJSON(c))
}

// DELETE /v1/cities/{id} — remove a city and every road touching it.
func (h *Handler) removeCity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "city id must be an integer")
		return
	}

	h.mu.Lock()
	err = h.graph.RemoveCity(id)
	h.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	metrics.GraphMutations.WithLabelValues("remove_city").Inc()
	h.updateGauges()
	h.logOp("City removed: ID %d", id)
	w.WriteHeader(http.StatusNoContent)
}

// POST /v1/roads — add or update a directed road.
func (h *Handler) addRoad(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From     int   `json:"from"`
		To       int   `json:"to"`
		Distance int64 `json:"distance_km"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	h.mu.Lock()
	err := h.graph.AddRoad(req.From, req.To, req.Distance)
	h.mu.Unlock()
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, core.ErrCityNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}
	metrics.GraphMutations.WithLabelValues("add_road").Inc()
	h.updateGauges()
	h.logOp("Road added: %d -> %d (%d km)", req.From, req.To, req.Distance)
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /v1/roads/{from}/{to} — remove one directed road.
func (h *Handler) removeRoad(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	from, err1 := strconv.Atoi(vars["from"])
	to, err2 := strconv.Atoi(vars["to"])
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "city ids must be integers")
		return
	}

	h.mu.Lock()
	err := h.graph.RemoveRoad(from, to)
	h.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	metrics.GraphMutations.WithLabelValues("remove_road").Inc()
	h.updateGauges()
	h.logOp("Road removed: %d -> %d", from, to)
	w.WriteHeader(http.StatusNoContent)
}

// GET /v1/graph — whole-network dump plus counters.
func (h *Handler) dumpGraph(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	cities := h.graph.Cities()
	roadCount := h.graph.RoadCount()
	h.mu.RUnlock()

	out := make([]cityJSON, 0, len(cities))
	for _, c := range cities {
		out = append(out, toCityJSON(c))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities":     out,
		"city_count": len(cities),
		"road_count": roadCount,
	})
}

// GET /v1/traversals/{algo}?start=ID — bfs or dfs visit order.
func (h *Handler) traverse(w http.ResponseWriter, r *http.Request) {
	algo := mux.Vars(r)["algo"]
	start, err := strconv.Atoi(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "start must be an integer city id")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	var order []int
	switch algo {
	case "bfs":
		res, err := bfs.BFS(h.graph, start, bfs.WithContext(r.Context()))
		if err != nil {
			writeTraversalError(w, err)
			return
		}
		order = res.Order
	case "dfs":
		res, err := dfs.DFS(h.graph, start, dfs.WithContext(r.Context()))
		if err != nil {
			writeTraversalError(w, err)
			return
		}
		order = res.Order
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown traversal %q (want bfs or dfs)", algo))
		return
	}
	metrics.Traversals.WithLabelValues(algo).Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"algorithm": algo,
		"start":     start,
		"order":     order,
	})
}

func writeTraversalError(w http.ResponseWriter, err error) {
	if errors.Is(err, bfs.ErrStartCityNotFound) || errors.Is(err, dfs.ErrStartCityNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// POST /v1/routes — shortest path by dijkstra or astar.
func (h *Handler) route(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From      int    `json:"from"`
		To        int    `json:"to"`
		Algorithm string `json:"algorithm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = "dijkstra"
	}

	queryID := uuid.New().String()
	start := time.Now()

	h.mu.RLock()
	var (
		pr  *core.PathResult
		err error
	)
	switch req.Algorithm {
	case "dijkstra":
		pr, err = dijkstra.Dijkstra(h.graph, req.From, req.To)
	case "astar":
		pr, err = astar.Astar(h.graph, req.From, req.To)
	default:
		h.mu.RUnlock()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown algorithm %q (want dijkstra or astar)", req.Algorithm))
		return
	}
	srcName := h.graph.CityName(req.From)
	destName := h.graph.CityName(req.To)
	h.mu.RUnlock()

	if err != nil {
		metrics.PathQueries.WithLabelValues(req.Algorithm, "error").Inc()
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	metrics.QueryDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)

	if pr.Empty() {
		metrics.PathQueries.WithLabelValues(req.Algorithm, "no_path").Inc()
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"query_id":  queryID,
			"algorithm": req.Algorithm,
			"found":     false,
		})
		return
	}

	metrics.PathQueries.WithLabelValues(req.Algorithm, "found").Inc()
	if h.ops != nil {
		h.ops.PathQuery(srcName, destName, pr.TotalDistance)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query_id":    queryID,
		"algorithm":   req.Algorithm,
		"found":       true,
		"city_ids":    pr.CityIDs,
		"distance_km": pr.TotalDistance,
	})
}

// GET /healthz — liveness probe.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
