// Package catalogue holds the immutable set of sport profiles the
// recommendation engine scores against.
package catalogue

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/sportfit/internal/domain/model"
)

// Bounds for a profile's highly-recommended threshold. A threshold below the
// inclusion floor would make the recommended tier unreachable, and one above
// the match ceiling would make the highly recommended tier unreachable.
const (
	minHighThreshold = 50
	maxHighThreshold = 95
)

// Catalogue is a frozen, sorted set of sport profiles. It is safe for
// concurrent readers; nothing mutates it after New returns.
type Catalogue struct {
	profiles []model.SportProfile
	index    map[string]int
	metrics  []string
}

// New validates profiles and freezes them into a Catalogue. Profiles are
// deep-copied, so the caller may reuse its slice.
func New(profiles ...model.SportProfile) (*Catalogue, error) {
	if len(profiles) == 0 {
		return nil, ErrEmptyCatalogue
	}

	c := &Catalogue{
		profiles: make([]model.SportProfile, 0, len(profiles)),
		index:    make(map[string]int, len(profiles)),
	}
	seenMetrics := make(map[string]struct{})

	for i, p := range profiles {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("profile %d (%q): %w", i, p.ID, err)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSport, p.ID)
		}
		p = p.Clone()
		if p.Name == "" {
			p.Name = p.ID
		}
		c.index[p.ID] = -1
		c.profiles = append(c.profiles, p)
		for metric := range p.Weights {
			seenMetrics[metric] = struct{}{}
		}
	}

	sort.Slice(c.profiles, func(i, j int) bool { return c.profiles[i].ID < c.profiles[j].ID })
	for i, p := range c.profiles {
		c.index[p.ID] = i
	}

	c.metrics = make([]string, 0, len(seenMetrics))
	for m := range seenMetrics {
		c.metrics = append(c.metrics, m)
	}
	sort.Strings(c.metrics)
	return c, nil
}

func validate(p model.SportProfile) error {
	if strings.TrimSpace(p.ID) == "" || p.ID != strings.TrimSpace(p.ID) {
		return fmt.Errorf("%w: id must be non-empty without surrounding spaces", ErrInvalidProfile)
	}
	if len(p.Weights) == 0 {
		return fmt.Errorf("%w: no weights", ErrInvalidProfile)
	}
	for metric, w := range p.Weights {
		if strings.TrimSpace(metric) == "" {
			return fmt.Errorf("%w: empty metric name", ErrInvalidProfile)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: weight for %q must be a finite non-negative number", ErrInvalidProfile, metric)
		}
	}
	t := p.HighThreshold
	if math.IsNaN(t) || t < minHighThreshold || t > maxHighThreshold {
		return fmt.Errorf("%w: high_threshold %v outside [%d,%d]", ErrInvalidProfile, t, minHighThreshold, maxHighThreshold)
	}
	return nil
}

// Len returns the number of sports.
func (c *Catalogue) Len() int { return len(c.profiles) }

// Profiles returns copies of every profile ordered by sport id.
func (c *Catalogue) Profiles() []model.SportProfile {
	out := make([]model.SportProfile, len(c.profiles))
	for i, p := range c.profiles {
		out[i] = p.Clone()
	}
	return out
}

// Get returns a copy of the profile with the given id.
func (c *Catalogue) Get(id string) (model.SportProfile, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.SportProfile{}, false
	}
	return c.profiles[i].Clone(), true
}

// Range calls fn for each profile in id order until fn returns false. The
// profile shares its weights and tags with the catalogue and must not be
// modified; use Get or Profiles for an owned copy.
func (c *Catalogue) Range(fn func(p model.SportProfile) bool) {
	for _, p := range c.profiles {
		if !fn(p) {
			return
		}
	}
}

// Metrics returns the sorted names of every metric any sport weighs.
func (c *Catalogue) Metrics() []string {
	out := make([]string, len(c.metrics))
	copy(out, c.metrics)
	return out
}
