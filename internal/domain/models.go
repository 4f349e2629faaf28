package domain

// Slide is a single slide reference as delivered by a slide source
type Slide struct {
	ID       string `json:"id" yaml:"id"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
	Order    *int   `json:"order,omitempty" yaml:"order,omitempty"`       // unused unless sort_by_order is set
	IsActive *bool  `json:"isActive,omitempty" yaml:"isActive,omitempty"` // carried through, never filtered on
}

// SlideSet is the ordered list of slides shown by the carousel.
// It is replaced wholesale and never mutated element-wise.
type SlideSet []Slide

// Len returns the number of slides
func (s SlideSet) Len() int {
	return len(s)
}

// URLs returns the image URLs in display order
func (s SlideSet) URLs() []string {
	urls := make([]string, len(s))
	for i, slide := range s {
		urls[i] = slide.ImageURL
	}
	return urls
}

// Clone returns a copy that does not share backing storage
func (s SlideSet) Clone() SlideSet {
	out := make(SlideSet, len(s))
	copy(out, s)
	return out
}

// DefaultFallbackURL is the built-in slide shown when the source yields nothing
const DefaultFallbackURL = "/images/hero-default.jpg"

// FallbackSlideSet returns the single-slide set used when the source fails.
// An empty url selects DefaultFallbackURL.
func FallbackSlideSet(url string) SlideSet {
	if url == "" {
		url = DefaultFallbackURL
	}
	return SlideSet{{ID: "fallback", ImageURL: url}}
}
