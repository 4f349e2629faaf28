package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"slidereel/internal/domain"
)

// manifestFile is the on-disk layout of a slide manifest:
//
//	slides:
//	  - id: spring
//	    imageUrl: https://cdn.example.com/hero/spring.jpg
//	    order: 2
type manifestFile struct {
	Slides []domain.Slide `yaml:"slides"`
}

// Manifest reads slides from a local YAML file
type Manifest struct {
	Path string
}

// NewManifest creates a manifest source for path
func NewManifest(path string) *Manifest {
	return &Manifest{Path: path}
}

var _ Source = (*Manifest)(nil)

func (m *Manifest) Name() string { return m.Path }

func (m *Manifest) Fetch(ctx context.Context) ([]domain.Slide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(m.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var mf manifestFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return mf.Slides, nil
}
