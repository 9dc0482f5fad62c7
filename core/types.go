// Package core defines the immutable artist/genre Graph, the Record and
// Neighbor types it is built from, and the construction options.
//
// A Graph is produced once by Build and never mutated afterwards. Every
// accessor returns copies, so one *Graph may be shared by any number of
// concurrent readers without locking.
//
// Errors:
//
//	ErrBadWeight      - explicit category weight is negative, NaN or infinite.
//	ErrUnknownPolicy  - edge-weight policy value is not recognised.
//	ErrBadPrefix      - category-node mode requested with an empty prefix.
//	ErrNodeCollision  - a category node ID coincides with an entity ID.
package core

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Sentinel errors for graph construction. Data problems never surface as
// errors (bad records are excluded); only configuration mistakes do.
var (
	// ErrBadWeight indicates an explicit category weight that is not a finite, non-negative number.
	ErrBadWeight = errors.New("core: category weight must be finite and non-negative")

	// ErrUnknownPolicy indicates an unsupported WeightPolicy value.
	ErrUnknownPolicy = errors.New("core: unknown edge weight policy")

	// ErrBadPrefix indicates WithCategoryNodes was given an empty prefix.
	ErrBadPrefix = errors.New("core: category node prefix is empty")

	// ErrNodeCollision indicates a category node ID equals an entity ID.
	ErrNodeCollision = errors.New("core: category node collides with entity")
)

// Record is one validated input row: an entity, its categories and its
// numeric attribute (track length).
type Record struct {
	// ID is the entity identifier (artist name). Empty IDs are rejected by Build.
	ID string

	// Categories lists the categorical labels (genres). Duplicates and blanks are dropped.
	Categories []string

	// Length is the numeric attribute. Records with Length <= 0 are rejected by Build.
	Length float64
}

// Neighbor is one adjacency entry: the node on the other end and the edge weight.
// Several entries for the same neighbor may exist under CategoryWeight policy.
type Neighbor struct {
	ID     string
	Weight float64
}

// WeightPolicy selects how entity–entity edge weights are derived.
type WeightPolicy int

const (
	// SharedCount inserts one edge per entity pair, weighted by the number of shared categories.
	SharedCount WeightPolicy = iota

	// CategoryWeight inserts one edge per shared category, weighted by that category's weight.
	CategoryWeight
)

// String returns the configuration name of the policy.
func (p WeightPolicy) String() string {
	switch p {
	case SharedCount:
		return "shared_count"
	case CategoryWeight:
		return "category_weight"
	default:
		return "unknown"
	}
}

// MarshalText encodes the policy by its configuration name.
func (p WeightPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParseWeightPolicy maps a configuration name to a WeightPolicy.
func ParseWeightPolicy(s string) (WeightPolicy, error) {
	switch s {
	case "shared_count", "":
		return SharedCount, nil
	case "category_weight":
		return CategoryWeight, nil
	default:
		return SharedCount, errors.Wrapf(ErrUnknownPolicy, "%q", s)
	}
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	policy          WeightPolicy
	categoryWeights map[string]float64
	categoryNodes   bool
	categoryPrefix  string
	logger          *zap.Logger
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		policy: SharedCount,
		logger: zap.NewNop(),
	}
}

// WithWeightPolicy selects the entity–entity edge weight policy. Default SharedCount.
func WithWeightPolicy(p WeightPolicy) Option {
	return func(o *buildOptions) { o.policy = p }
}

// WithCategoryWeights supplies explicit per-category weights for the
// CategoryWeight policy. Categories missing from w fall back to the mean
// Length of their members. The map is copied.
func WithCategoryWeights(w map[string]float64) Option {
	return func(o *buildOptions) {
		o.categoryWeights = make(map[string]float64, len(w))
		for k, v := range w {
			o.categoryWeights[k] = v
		}
	}
}

// WithCategoryNodes adds a category node prefix+label for every category and
// links each entity to its categories with weight 1, producing the mixed
// bipartite graph. Category nodes carry no Length, so IsMember reports false.
func WithCategoryNodes(prefix string) Option {
	return func(o *buildOptions) {
		o.categoryNodes = true
		o.categoryPrefix = prefix
	}
}

// WithLogger attaches a logger for the build summary. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Graph is the immutable weighted undirected artist graph.
//
// adjacency holds mirrored entries for every edge; lengths and categories
// are keyed by entity ID only; members is the inverted index label → sorted
// entity IDs; nodes is the sorted list of every node (entities first merged
// with category nodes, lexicographic).
type Graph struct {
	adjacency  map[string][]Neighbor
	lengths    map[string]float64
	categories map[string][]string
	members    map[string][]string
	nodes      []string
	entities   []string
	stats      Stats
}

// Stats summarises a built graph.
type Stats struct {
	Entities      int          `json:"entities" yaml:"entities"`             // accepted entity records
	Rejected      int          `json:"rejected" yaml:"rejected"`             // records excluded for empty ID or non-positive length
	Categories    int          `json:"categories" yaml:"categories"`         // distinct category labels
	CategoryNodes int          `json:"category_nodes" yaml:"category_nodes"` // category nodes added in bipartite mode
	EntityLinks   int          `json:"entity_links" yaml:"entity_links"`     // undirected entity–entity adjacency pairs inserted
	Policy        WeightPolicy `json:"policy" yaml:"policy"`
}
