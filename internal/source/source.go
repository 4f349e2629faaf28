package source

import (
	"context"

	"slidereel/internal/domain"
)

// Source supplies the ordered slide list. Fetch is called once per mount.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Slide, error)
	Name() string
}

// Static is a Source backed by a fixed list
type Static struct {
	Slides []domain.Slide
	Err    error
}

// NewStatic builds a Static source from image URLs
func NewStatic(urls ...string) *Static {
	s := &Static{Slides: make([]domain.Slide, len(urls))}
	for i, u := range urls {
		s.Slides[i] = domain.Slide{ID: u, ImageURL: u}
	}
	return s
}

func (s *Static) Fetch(ctx context.Context) ([]domain.Slide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]domain.Slide, len(s.Slides))
	copy(out, s.Slides)
	return out, nil
}

func (s *Static) Name() string { return "static" }
