package commands

import (
	"github.com/spf13/cobra"

	"slidereel/internal/config"
	"slidereel/internal/eventbus"
	"slidereel/internal/source"
)

// options holds the flags shared by every subcommand
type options struct {
	configPath string
	sourceURL  string
	manifest   string
	sortOrder  bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "slidereel",
		Short:        "Autoplaying image slideshow for the terminal",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "config file")
	root.PersistentFlags().StringVar(&opts.sourceURL, "source", "", "slide endpoint URL (overrides source_url)")
	root.PersistentFlags().StringVar(&opts.manifest, "manifest", "", "YAML slide manifest (overrides manifest)")
	root.PersistentFlags().BoolVar(&opts.sortOrder, "sort-by-order", false, "order slides by their order field")

	root.AddCommand(playCmd(opts), listCmd(opts), initCmd(opts))
	return root
}

// loadConfig reads the config file and applies the shared flag overrides
func (o *options) loadConfig(cmd *cobra.Command, bus eventbus.EventBus) (*config.Config, error) {
	cfg, err := config.NewConfigServiceWithBus(o.configPath, bus).Load()
	if err != nil {
		return nil, err
	}
	o.applyFlags(cmd, cfg)
	return cfg, nil
}

func (o *options) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Manifest = o.manifest
		if !flags.Changed("source") {
			cfg.SourceURL = ""
		}
	}
	if flags.Changed("source") {
		cfg.SourceURL = o.sourceURL
	}
	if flags.Changed("sort-by-order") {
		cfg.SortByOrder = o.sortOrder
	}
}

// newLoader picks the slide source: the endpoint wins over the manifest,
// and with neither configured only the fallback slide is shown
func newLoader(cfg *config.Config) *source.Loader {
	var src source.Source
	switch {
	case cfg.SourceURL != "":
		src = source.NewHTTP(cfg.SourceURL)
	case cfg.Manifest != "":
		src = source.NewManifest(cfg.Manifest)
	}
	return &source.Loader{
		Source:      src,
		FallbackURL: cfg.FallbackSlide,
		SortByOrder: cfg.SortByOrder,
	}
}

func sourceName(l *source.Loader) string {
	if l.Source == nil {
		return "none"
	}
	return l.Source.Name()
}
