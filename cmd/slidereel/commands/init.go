package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slidereel/internal/config"
)

func initCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", opts.configPath)
			}

			// Source flags given here are recorded in the new file
			cfg := config.DefaultConfig()
			opts.applyFlags(cmd, cfg)
			if err := config.NewConfigService(opts.configPath).Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", opts.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
