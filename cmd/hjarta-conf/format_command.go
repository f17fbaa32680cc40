package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "format <template>",
		Short: "Resolve the tokens of a template against the configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd.InOrStdin())
			if err != nil {
				return err
			}

			properties, err := ctx.properties()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cfg.Format(args[0], properties))

			return nil
		},
	}
}
