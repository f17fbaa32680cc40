package main

import (
	"fmt"

	conf "github.com/0xalexb/hjarta-conf"

	"github.com/spf13/cobra"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the whole document with every token resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var encoded []byte

			if output == "" {
				encoded, err = cfg.ResolveBytes()
			} else {
				encoded, err = conf.ParserFor(output).Encode(cfg.Resolve())
			}

			if err != nil {
				return fmt.Errorf("encode resolved document: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(encoded)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: yaml, toml or json (default: input format)")

	return cmd
}
