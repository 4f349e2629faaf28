package commands

import (
	"context"
	"fmt"
	"io"

	"slidereel/internal/carousel"
	"slidereel/internal/config"
	"slidereel/internal/domain"
	"slidereel/internal/eventbus"
	"slidereel/internal/schedule"
	"slidereel/internal/source"
)

// linePrinter reports every slide that comes to rest, one line each
type linePrinter struct {
	out  io.Writer
	bus  eventbus.EventBus
	ctrl *carousel.Controller
}

func (p *linePrinter) TransitionStarted(from, to int, dir carousel.Direction) {}

func (p *linePrinter) TransitionCompleted(index int, dir carousel.Direction) {
	p.print(index)
	if p.bus != nil {
		p.bus.Publish(eventbus.SlideChangedEvent{Index: index, Forward: dir == carousel.Forward})
	}
}

func (p *linePrinter) print(index int) {
	slides := p.ctrl.Slides()
	s := slides[index]
	fmt.Fprintf(p.out, "[%d/%d] %s %s\n", index+1, slides.Len(), s.ID, s.ImageURL)
}

// runHeadless plays the slideshow without a terminal UI. The controller
// lives on a schedule.Loop and the fallback slide is printed before the
// fetch starts; output stops when ctx is done.
func runHeadless(ctx context.Context, out io.Writer, bus eventbus.EventBus, cfg *config.Config, loader *source.Loader) error {
	loop := schedule.NewLoop()
	defer loop.Close()

	printer := &linePrinter{out: out, bus: bus}
	err := loop.DoWait(func() {
		printer.ctrl = carousel.New(domain.FallbackSlideSet(cfg.FallbackSlide), cfg.CarouselOptions(), loop, printer)
		printer.ctrl.Start()
		printer.print(0)
	})
	if err != nil {
		return err
	}

	go func() {
		bus.Publish(eventbus.SlidesRequestedEvent{Source: sourceName(loader)})
		res := loader.Load(ctx)
		bus.Publish(eventbus.SlidesLoadedEvent{Slides: res.Slides, Fallback: res.Fallback})
		if res.Fallback {
			// Already on screen
			return
		}
		_ = loop.Do(func() {
			printer.ctrl.SetSlides(res.Slides)
			printer.print(0)
		})
	}()

	<-ctx.Done()
	return loop.DoWait(printer.ctrl.Stop)
}
