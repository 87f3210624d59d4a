package tips

import (
	"math/rand"
	"sort"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/metrics"
)

// Selector picks tips from a rule catalog. Randomness is injected so tests
// can drive the cumulative-weight walk deterministically.
type Selector struct {
	catalog []Rule
	rng     *rand.Rand
}

// NewSelector builds a selector over the given catalog. src must not be nil.
func NewSelector(catalog []Rule, src rand.Source) *Selector {
	return &Selector{catalog: catalog, rng: rand.New(src)}
}

// applies evaluates a rule predicate, treating a panic as "not applicable".
// A broken predicate must never take down tip selection.
func applies(r Rule, ctx Context) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if r.Applies == nil {
		return false
	}
	return r.Applies(ctx)
}

// Select returns one tip for the context, or nil when no rule applies at all.
//
// Rules already in seen are excluded and the pick is priority-weighted: a
// priority-9 rule is nine times as likely as a priority-1 rule among the
// currently eligible set. When every applicable rule has been seen, the
// selector cycles back and picks uniformly from all applicable rules.
func (s *Selector) Select(ctx Context, seen map[string]bool) *Rule {
	var fresh []Rule
	for _, r := range s.catalog {
		if !seen[r.ID] && applies(r, ctx) {
			fresh = append(fresh, r)
		}
	}

	if len(fresh) == 0 {
		var all []Rule
		for _, r := range s.catalog {
			if applies(r, ctx) {
				all = append(all, r)
			}
		}
		if len(all) == 0 {
			return nil
		}
		pick := all[s.rng.Intn(len(all))]
		metrics.TipsSelected.WithLabelValues(string(pick.Category), "cycled").Inc()
		return &pick
	}

	total := 0
	for _, r := range fresh {
		total += r.Priority
	}

	// Cumulative walk in catalog order; catalog position partitions the
	// weight line deterministically, only the draw is random.
	r := s.rng.Float64() * float64(total)
	for _, rule := range fresh {
		r -= float64(rule.Priority)
		if r <= 0 {
			metrics.TipsSelected.WithLabelValues(string(rule.Category), "fresh").Inc()
			return &rule
		}
	}
	last := fresh[len(fresh)-1]
	metrics.TipsSelected.WithLabelValues(string(last.Category), "fresh").Inc()
	return &last
}

// TopTips returns up to max applicable rules ordered by priority, highest
// first. No seen-exclusion: this feeds non-rotating alert surfaces. Rules of
// equal priority keep their catalog order.
func (s *Selector) TopTips(ctx Context, max int) []Rule {
	var applicable []Rule
	for _, r := range s.catalog {
		if applies(r, ctx) {
			applicable = append(applicable, r)
		}
	}
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Priority > applicable[j].Priority
	})
	if max >= 0 && len(applicable) > max {
		applicable = applicable[:max]
	}
	return applicable
}
