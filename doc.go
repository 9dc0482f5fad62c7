// Package genregraph analyzes artists linked by the genres they share.
//
// Artists are read from CSV, turned into a weighted undirected graph, and
// ranked by centrality, community structure and coverage.
//
// What is inside?
//
//	core/       — Graph, Record, weight policies and the Build step
//	bfs/        — breadth-first walks with depth limits and edge hooks
//	dfs/        — iterative depth-first forests
//	dijkstra/   — single-source shortest distances
//	centrality/ — closeness and five depth-aware traversal modes
//	community/  — genre groups, components, group stats, influence scores
//	influence/  — greedy maximum-coverage seed selection
//	builder/    — synthetic artist records with known topologies
//	dataset/    — CSV reader and writer
//	report/     — table, JSON and YAML rendering
//	config/     — TOML/env/flag configuration with validation
//	logger/     — process-wide zap logger
//	cmd/        — the genregraph command
//
// Quick start:
//
//	records, _, _ := dataset.ReadFile("artists.csv")
//	g, _ := core.Build(records)
//	scores, _ := centrality.Compute(g, centrality.Blended, centrality.WithMaxDepth(2))
//	seeds, _ := influence.SelectTopK(g, 3)
//
// Every analysis is deterministic: ties break by ascending ID.
package genregraph
