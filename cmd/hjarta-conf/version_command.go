package main

import (
	"fmt"

	conf "github.com/0xalexb/hjarta-conf"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "hjarta-conf %s (compiled %s)\n", conf.Version, conf.CompiledAt)

			return nil
		},
	}
}
