// Package community groups the entities of a core.Graph and derives
// group-level and entity-level analytics from those groupings.
//
// Clustering:
//   - ByCategory: attribute clustering, a cover (k labels → k groups)
//   - Components: connectivity clustering over entity nodes only, a partition
//
// Analytics:
//   - Stats / Rank: per-group sum and mean of Length, ranked by total or mean
//   - ClusterInfluence: ln(length) × ln(component size)
//   - CategoryConnectivity: label ↔ label when the labels share a member
//   - PrioritizedTargets: Σ|connectivity(c)| × log10(length) × 10
//   - TopInfluential: log10(length) × 10
//
// Every ranked result is ordered by descending score with ties broken by
// ascending ID or label, so output is reproducible for a fixed input.
// Entities with a non-positive Length never reach a logarithm.
package community
