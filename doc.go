// Package citynav is an in-memory city navigation toolkit: a directed,
// weighted city graph with traversals, shortest-path search, and CSV
// persistence.
//
// 🚀 What is citynav?
//
//	A small, focused library plus two front ends that bring together:
//		• Core primitives: cities with coordinates, directed weighted roads
//		• Traversals: BFS, DFS with visit hooks
//		• Shortest paths: Dijkstra and A* over an indexed min-heap
//		• Persistence: CSV load/save, append-only operation log
//		• Serving: an interactive CLI and an HTTP API with metrics
//
// Everything is organized under flat subpackages:
//
//	core/     — Graph, City, Road, PathResult and mutation primitives
//	minheap/  — indexed binary min-heap keyed on priority score
//	bfs/      — breadth-first traversal
//	dfs/      — depth-first traversal
//	dijkstra/ — uniform-cost shortest path
//	astar/    — heuristic shortest path (Euclidean, admissible by contract)
//	fileio/   — CSV persistence + data file watcher
//	oplog/    — timestamped operation log
//	render/   — plain-text presentation
//	config/   — YAML server configuration
//	metrics/  — Prometheus instrumentation
//	server/   — HTTP API over the graph
//	cmd/      — citynav (menu CLI) and citynav-server (HTTP daemon)
//
// Quick ASCII example:
//
//	    Amsterdam ──57km──▶ Rotterdam
//	        │                   │
//	      46km                53km
//	        ▼                   ▼
//	     Utrecht ◀────61km── Breda
//
//	four cities, four directed roads; Dijkstra and A* agree on every pair.
//
//	go get github.com/katalvlaran/citynav
package citynav
