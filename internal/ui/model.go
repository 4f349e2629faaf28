package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"slidereel/internal/carousel"
	"slidereel/internal/config"
	"slidereel/internal/domain"
	"slidereel/internal/eventbus"
	"slidereel/internal/ui/input"
	inputtypes "slidereel/internal/ui/input/types"
	"slidereel/internal/ui/views"
)

// frameInterval paces the transition animation
const frameInterval = 80 * time.Millisecond

// Model hosts the carousel controller. It is the display surface: it reads
// controller state to render and forwards user intents back to it.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	ctrl   *carousel.Controller
	sched  *teaScheduler

	width  int
	height int
	help   help.Model

	loading   bool // slides not resolved yet; the fallback is on screen
	fallback  bool
	animating bool // a frame tick is in flight
	status    string
	qr        string
	inPager   bool
	resumeOn  bool // autoplay was paused for the pager and must resume

	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

var (
	_ tea.Model          = (*Model)(nil)
	_ carousel.Observer  = (*Model)(nil)
	_ inputtypes.Context = (*Model)(nil)
)

// NewModel creates a new UI model showing the fallback slide until a
// SlidesLoadedEvent arrives
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		sched:        newTeaScheduler(),
		help:         help.New(),
		loading:      true,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}
	m.ctrl = carousel.New(domain.FallbackSlideSet(cfg.FallbackSlide), cfg.CarouselOptions(), m.sched, m)
	m.inputHandler.Keys.SetNavigationEnabled(m.ctrl.HasControls())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Controller exposes the hosted controller
func (m *Model) Controller() *carousel.Controller {
	return m.ctrl
}

// Init mounts the carousel
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start()
	return m.sched.drain()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		actions, _ := m.inputHandler.HandleKey(msg, m)
		cmd = m.applyAll(actions)

	case timerFiredMsg:
		m.sched.fire(msg.id)

	case frameMsg:
		m.animating = false
		if m.ctrl.Snapshot().Transitioning {
			cmd = m.frameTick()
		}

	case EventMsg:
		m.handleEvent(msg.Event)

	case helpPagerMsg:
		m.inPager = false
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			cmd = m.setStatus(fmt.Sprintf("help unavailable: %v", msg.err))
		}
		if m.resumeOn {
			m.resumeOn = false
			m.ctrl.Resume()
		}

	case clearStatusMsg:
		m.status = ""
	}

	return m, tea.Batch(cmd, m.sched.drain())
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.SlidesLoadedEvent:
		m.loading = false
		m.fallback = e.Fallback
		m.qr = ""
		m.ctrl.SetSlides(e.Slides)
		m.inputHandler.Keys.SetNavigationEnabled(m.ctrl.HasControls())
		log.Printf("Slides loaded: %d (fallback=%v)", e.Slides.Len(), e.Fallback)
	}
}

// applyAll executes actions in order and batches their commands
func (m *Model) applyAll(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		cmds = append(cmds, m.apply(action))
	}
	return tea.Batch(cmds...)
}

// apply executes an input action against the controller
func (m *Model) apply(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NextAction:
		m.ctrl.Next()
	case inputtypes.PreviousAction:
		m.ctrl.Previous()
	case inputtypes.SelectSlideAction:
		m.ctrl.SelectSlide(a.Index)
	case inputtypes.TogglePauseAction:
		paused := m.ctrl.TogglePause()
		if m.bus != nil {
			m.bus.Publish(eventbus.PlaybackToggledEvent{Paused: paused})
		}
	case inputtypes.ToggleQRAction:
		return m.toggleQR()
	case inputtypes.ShowHelpAction:
		return m.showHelp()
	case inputtypes.QuitAction:
		m.ctrl.Stop()
		return tea.Quit
	}
	return nil
}

func (m *Model) toggleQR() tea.Cmd {
	if m.qr != "" {
		m.qr = ""
		return nil
	}
	qr, err := renderQR(m.ctrl.Current().ImageURL)
	if err != nil {
		return m.setStatus(fmt.Sprintf("qr: %v", err))
	}
	m.qr = qr
	return nil
}

func (m *Model) showHelp() tea.Cmd {
	if m.inPager {
		return nil
	}
	m.inPager = true
	if !m.ctrl.Snapshot().Paused {
		m.ctrl.Pause()
		m.resumeOn = true
	}
	content := m.helpRenderer.RenderHelpContent(m.ctrl.Slides(), m.ctrl.Snapshot().CurrentIndex)
	return m.helpOps.showHelpCmd(content)
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) frameTick() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// TransitionStarted starts the outgoing-slide animation
func (m *Model) TransitionStarted(from, to int, dir carousel.Direction) {
	// The QR code belongs to the outgoing slide
	m.qr = ""
	if c := m.frameTick(); c != nil {
		m.sched.queued = append(m.sched.queued, c)
	}
}

// TransitionCompleted announces the committed slide
func (m *Model) TransitionCompleted(index int, dir carousel.Direction) {
	if m.bus != nil {
		m.bus.Publish(eventbus.SlideChangedEvent{Index: index, Forward: dir == carousel.Forward})
	}
}

// SlideCount implements input.Context
func (m *Model) SlideCount() int {
	return m.ctrl.Snapshot().Length
}

// HasControls implements input.Context
func (m *Model) HasControls() bool {
	return m.ctrl.HasControls()
}

// CurrentIndex implements input.Context
func (m *Model) CurrentIndex() int {
	return m.ctrl.Snapshot().CurrentIndex
}

// View renders the model
func (m *Model) View() string {
	state := m.ctrl.Snapshot()

	return m.renderer.Render(views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Slides:      m.ctrl.Slides(),
		Carousel:    state,
		Progress:    state.Progress(m.sched.Now(), m.ctrl.Options().TransitionDuration),
		Controls:    m.ctrl.HasControls(),
		Loading:     m.loading,
		Autoplay:    m.ctrl.Options().Autoplay,
		Fallback:    m.fallback,
		ShowCounter: m.config.UISettings.ShowCounter,
		ShowURL:     m.config.UISettings.ShowURL,
		QR:          m.qr,
		Status:      m.status,
		HelpView:    m.help.View(m.inputHandler.Keys),
	})
}
