package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch the slide set once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			loader := newLoader(cfg)
			res := loader.Load(cmd.Context())

			out := cmd.OutOrStdout()
			header := fmt.Sprintf("%d slide(s) from %s", res.Slides.Len(), sourceName(loader))
			if res.Fallback {
				header += " (fallback)"
			}
			fmt.Fprintln(out, header)
			for i, s := range res.Slides {
				fmt.Fprintf(out, "%3d  %-16s %s\n", i+1, s.ID, s.ImageURL)
			}
			return nil
		},
	}
}
