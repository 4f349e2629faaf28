package source

import (
	"context"
	"sort"

	"slidereel/internal/domain"
)

// Loader resolves a slide set from a Source, falling back to a single
// built-in slide when the source fails or yields nothing usable. Failures
// are absorbed silently.
type Loader struct {
	Source      Source
	FallbackURL string
	SortByOrder bool // stable sort by the order field; array order otherwise
}

// Result is the outcome of a load
type Result struct {
	Slides   domain.SlideSet
	Fallback bool
}

// Load fetches once and returns a non-empty slide set
func (l *Loader) Load(ctx context.Context) Result {
	fallback := Result{Slides: domain.FallbackSlideSet(l.FallbackURL), Fallback: true}
	if l.Source == nil {
		return fallback
	}

	items, err := l.Source.Fetch(ctx)
	if err != nil {
		return fallback
	}

	set := make(domain.SlideSet, 0, len(items))
	for _, it := range items {
		if it.ImageURL == "" {
			continue
		}
		set = append(set, it)
	}
	if len(set) == 0 {
		return fallback
	}

	if l.SortByOrder {
		sort.SliceStable(set, func(i, j int) bool {
			return orderOf(set[i]) < orderOf(set[j])
		})
	}
	return Result{Slides: set}
}

// orderOf sorts slides without an order after those that have one
func orderOf(s domain.Slide) int {
	if s.Order == nil {
		return int(^uint(0) >> 1)
	}
	return *s.Order
}
