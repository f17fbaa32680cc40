package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

const skipConfigLoad = "skipConfigLoad"

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "hjarta-conf",
		Short:         "Resolve placeholder tokens in configuration documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			slog.SetDefault(ctx.logger(cmd.ErrOrStderr()))

			if cmd.Annotations[skipConfigLoad] == "true" || cmd.Name() == "help" || !cmd.Runnable() {
				return nil
			}

			_, err := ctx.ensureConfig(cmd.InOrStdin())

			return err
		},
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (default: read YAML from stdin)")
	flags.StringArrayVarP(&ctx.sets, "set", "D", nil, "Explicit property key=value, overrides environment, system and custom sources (repeatable)")
	flags.BoolVar(&ctx.noEnv, "no-env", false, "Do not resolve against environment variables")
	flags.BoolVar(&ctx.noSystem, "no-system", false, "Do not resolve against system properties")
	flags.StringVar(&ctx.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&ctx.logFormat, "log-format", "text", "Log format: json or text")

	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newFormatCommand(ctx))
	rootCmd.AddCommand(newResolveCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
