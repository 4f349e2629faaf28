package input

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"slidereel/internal/ui/input/types"
)

// Handler maps key presses to slideshow actions
type Handler struct {
	Keys KeyMap
}

var _ types.KeyHandler = (*Handler)(nil)

func New() *Handler {
	return &Handler{Keys: DefaultKeyMap()}
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	h.Keys.SetNavigationEnabled(ctx.HasControls())

	switch {
	case key.Matches(msg, h.Keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, h.Keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, h.Keys.QR):
		return []types.Action{types.ToggleQRAction{}}, true

	case key.Matches(msg, h.Keys.Next):
		return []types.Action{types.NextAction{}}, true

	case key.Matches(msg, h.Keys.Previous):
		return []types.Action{types.PreviousAction{}}, true

	case key.Matches(msg, h.Keys.Pause):
		return []types.Action{types.TogglePauseAction{}}, true

	case key.Matches(msg, h.Keys.Jump):
		// Digits are 1-based on screen
		index := int(msg.String()[0]-'0') - 1
		if index >= ctx.SlideCount() {
			return nil, false
		}
		return []types.Action{types.SelectSlideAction{Index: index}}, true
	}

	return nil, false
}
