package commands

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"slidereel/internal/eventbus"
	"slidereel/internal/source"
	"slidereel/internal/ui"
)

const logFileName = "slidereel.log"

func playCmd(opts *options) *cobra.Command {
	var (
		interval   time.Duration
		transition time.Duration
		noAutoplay bool
		headless   bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the slideshow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Set up logging
			logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Printf("Could not open log file: %v", err)
			} else {
				defer logFile.Close()
				log.SetOutput(logFile)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			bus := eventbus.New()
			defer bus.Close()

			cfg, err := opts.loadConfig(cmd, bus)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("interval") && interval > 0 {
				cfg.Interval.Duration = interval
			}
			if flags.Changed("transition") && transition > 0 {
				cfg.Transition.Duration = transition
			}
			if noAutoplay {
				cfg.Autoplay = false
			}

			loader := newLoader(cfg)
			if headless {
				log.Printf("Starting headless slideshow (source=%s)", sourceName(loader))
				return runHeadless(ctx, cmd.OutOrStdout(), bus, cfg, loader)
			}

			model := ui.NewModel(bus, cfg)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			model.SetProgram(p)

			bus.Subscribe(eventbus.EventSlidesLoaded, func(e eventbus.DomainEvent) {
				p.Send(ui.EventMsg{Event: e})
			})
			bus.Subscribe(eventbus.EventPlaybackToggled, func(e eventbus.DomainEvent) {
				if event, ok := e.(eventbus.PlaybackToggledEvent); ok {
					log.Printf("Playback paused=%v", event.Paused)
				}
			})

			log.Printf("Starting slideshow (source=%s)", sourceName(loader))
			err = runSession(ctx, bus, loader, func() error {
				if _, err := p.Run(); err != nil && ctx.Err() == nil {
					log.Printf("Error running program: %v", err)
					return err
				}
				return nil
			})
			log.Printf("Slideshow exited")
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "time between autoplay advances (default 5s)")
	cmd.Flags().DurationVar(&transition, "transition", 0, "transition animation length (default 450ms)")
	cmd.Flags().BoolVar(&noAutoplay, "no-autoplay", false, "start without autoplay")
	cmd.Flags().BoolVar(&headless, "headless", false, "print slide changes instead of drawing the UI")
	return cmd
}

// runSession runs the one-shot fetch alongside the UI. The fetch context is
// cancelled as soon as run returns, so quitting never waits on the source.
func runSession(ctx context.Context, bus eventbus.EventBus, loader *source.Loader, run func() error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetchSlides(gctx, bus, loader)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return run()
	})
	return g.Wait()
}

// fetchSlides runs the one-shot load and announces the result. The loader
// never fails; a broken source surfaces as the fallback set.
func fetchSlides(ctx context.Context, bus eventbus.EventBus, loader *source.Loader) {
	bus.Publish(eventbus.SlidesRequestedEvent{Source: sourceName(loader)})
	res := loader.Load(ctx)
	bus.Publish(eventbus.SlidesLoadedEvent{Slides: res.Slides, Fallback: res.Fallback})
}
