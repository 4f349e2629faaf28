package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slidereel/internal/carousel"
	"slidereel/internal/domain"
)

// maxShift is how far, in columns, a slide travels during a transition
const maxShift = 8

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Slides      domain.SlideSet
	Carousel    carousel.State
	Progress    float64 // transition progress in [0, 1]
	Controls    bool    // false hides arrows and dots
	Loading     bool    // the one-shot fetch has not resolved yet
	Autoplay    bool
	Fallback    bool
	ShowCounter bool
	ShowURL     bool
	QR          string // rendered QR block, empty when hidden
	Status      string
	HelpView    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.RenderSlide(state))
	content.WriteString("\n")

	if state.Controls {
		content.WriteString(r.RenderControls(state))
		content.WriteString("\n")
	}

	content.WriteString(r.renderStatus(state))

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	main := content.String()
	if state.QR != "" {
		return r.popupRender.RenderPopup(main, state.QR, state.Width, state.Height, r.styles.QR)
	}
	return main
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("slidereel")
	if !state.ShowCounter || state.Slides.Len() == 0 {
		return logo
	}
	counter := r.styles.Counter.Render(fmt.Sprintf("%d/%d", state.Carousel.CurrentIndex+1, state.Slides.Len()))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(counter)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + counter
}

// RenderSlide renders the slide at CurrentIndex. While a transition is in
// flight that slide is the outgoing one: it is shifted toward the side the
// carousel travels and greyed out as progress advances.
func (r *Renderer) RenderSlide(state ViewState) string {
	if state.Slides.Len() == 0 {
		return ""
	}
	slide := state.Slides[state.Carousel.CurrentIndex]

	body := r.styles.SlideID.Render(slide.ID)
	if state.ShowURL {
		body += "\n" + r.styles.SlideURL.Render(slide.ImageURL)
	}
	if state.Fallback {
		body += "\n" + r.styles.Fallback.Render("(default slide)")
	}
	frame := r.styles.Frame.Render(body)

	margin := maxShift
	if state.Carousel.Transitioning {
		shift := TransitionOffset(state.Carousel.Direction, state.Progress)
		margin += shift
		if state.Progress >= 0.5 {
			frame = desaturateANSI(frame)
		} else {
			frame = r.styles.Outgoing.Render(frame)
		}
	}
	return lipgloss.NewStyle().MarginLeft(margin).Render(frame)
}

// TransitionOffset returns the horizontal shift of the outgoing slide.
// Forward travel moves it left, backward travel moves it right.
func TransitionOffset(dir carousel.Direction, progress float64) int {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	shift := int(progress * maxShift)
	if dir == carousel.Forward {
		return -shift
	}
	return shift
}

// RenderControls renders the previous/next arrows around the dot indicators
func (r *Renderer) RenderControls(state ViewState) string {
	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", maxShift),
		r.styles.Arrow.Render("‹"),
		r.RenderDots(state),
		r.styles.Arrow.Render("›"))
}

// RenderDots renders one indicator per slide
func (r *Renderer) RenderDots(state ViewState) string {
	dots := make([]string, state.Slides.Len())
	for i := range dots {
		switch {
		case i == state.Carousel.CurrentIndex:
			dots[i] = r.styles.DotActive.Render("●")
		case state.Carousel.Transitioning && i == state.Carousel.PendingIndex:
			dots[i] = r.styles.DotPending.Render("◉")
		default:
			dots[i] = r.styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (r *Renderer) renderStatus(state ViewState) string {
	parts := []string{}
	switch {
	case state.Loading:
		parts = append(parts, "loading slides…")
	case state.Carousel.Paused:
		parts = append(parts, "⏸ paused")
	case state.Controls && state.Autoplay:
		parts = append(parts, "▶ playing")
	}
	if state.Status != "" {
		parts = append(parts, state.Status)
	}
	if len(parts) == 0 {
		return ""
	}
	style := r.styles.Status
	if state.Carousel.Paused {
		style = r.styles.StatusPause
	}
	return style.Render(strings.Join(parts, "  "))
}
