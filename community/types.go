package community

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("community: graph is nil")

	// ErrBadLimit is returned for a negative result limit.
	ErrBadLimit = errors.New("community: limit must be non-negative")

	// ErrUnknownRank is returned by ParseRankBy for an unknown ranking key.
	ErrUnknownRank = errors.New("community: unknown rank key")
)

// Partition assigns every entity to exactly one connectivity component.
type Partition struct {
	// ComponentOf maps entity ID to component id (0..len(Members)-1).
	ComponentOf map[string]int `json:"component_of" yaml:"component_of"`

	// Members lists each component's entity IDs, sorted; index is the component id.
	Members [][]string `json:"members" yaml:"members"`
}

// Size returns the number of entities in the component holding id, or 0.
func (p *Partition) Size(id string) int {
	c, ok := p.ComponentOf[id]
	if !ok {
		return 0
	}
	return len(p.Members[c])
}

// GroupStat aggregates entity lengths across one group.
type GroupStat struct {
	Label   string  `json:"label" yaml:"label"`
	Members int     `json:"members" yaml:"members"`
	Sum     float64 `json:"sum" yaml:"sum"`
	Mean    float64 `json:"mean" yaml:"mean"`
}

// RankBy selects the aggregate used by Rank.
type RankBy int

const (
	// ByTotal ranks groups by Sum.
	ByTotal RankBy = iota
	// ByMean ranks groups by Mean.
	ByMean
)

// String returns the configuration name of r.
func (r RankBy) String() string {
	if r == ByMean {
		return "mean"
	}
	return "total"
}

// ParseRankBy maps "total" or "mean" (case-insensitive) to a RankBy.
// The empty string selects ByTotal.
func ParseRankBy(s string) (RankBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "total", "sum":
		return ByTotal, nil
	case "mean", "avg", "average":
		return ByMean, nil
	default:
		return ByTotal, errors.Wrapf(ErrUnknownRank, "%q", s)
	}
}

// Ranked pairs an entity with a derived score.
type Ranked struct {
	ID    string  `json:"id" yaml:"id"`
	Score float64 `json:"score" yaml:"score"`
}

// Influential is an entity ranked by its own length alone.
type Influential struct {
	ID     string  `json:"id" yaml:"id"`
	Length float64 `json:"length" yaml:"length"`
	Score  float64 `json:"score" yaml:"score"`
}
