package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"slidereel/internal/domain"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates the key reference followed by the slide list
func (r *HelpRenderer) RenderHelpContent(slides domain.SlideSet, current int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("slidereel Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("→/l/n"), descStyle.Render("Next slide")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/h/p"), descStyle.Render("Previous slide")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("1-9"), descStyle.Render("Jump to slide")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Playback"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Space"), descStyle.Render("Pause/resume autoplay")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("c"), descStyle.Render("Show QR code for the current slide")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("q"), descStyle.Render("Quit")))

	help.WriteString(sectionStyle.Render(fmt.Sprintf("Slides (%d)", slides.Len())))
	help.WriteString("\n")
	for i, s := range slides {
		marker := " "
		if i == current {
			marker = "▸"
		}
		help.WriteString(fmt.Sprintf("%s %2d  %s  %s\n", marker, i+1, keyStyle.Render(s.ID), descStyle.Render(s.ImageURL)))
	}

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to exit before Bubble Tea takes the screen back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)
	return root.Run()
}

// configureVimKeyBindings adds j/k/q on top of ov's defaults
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	config.Keybind["down"] = append(config.Keybind["down"], "j")
	config.Keybind["up"] = append(config.Keybind["up"], "k")
	config.Keybind["exit"] = append(config.Keybind["exit"], "q", "Escape")
}

// showHelpCmd runs the pager off the event loop and reports back
func (h *HelpOps) showHelpCmd(content string) tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: h.ShowHelpInPager(content)}
	}
}
