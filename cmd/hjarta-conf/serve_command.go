package main

import (
	"fmt"

	"github.com/0xalexb/hjarta-conf/app"
	"github.com/0xalexb/hjarta-conf/server"

	"github.com/spf13/cobra"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configuration over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var serverOpts []server.Option
			if address != "" {
				serverOpts = append(serverOpts, server.WithAddress(address))
			}

			application := app.NewApp(
				app.WithLogLevel(ctx.logLevel),
				app.WithLogFormat(ctx.logFormat),
				app.WithLogOutput(cmd.ErrOrStderr()),
				app.WithConfiguration(cfg),
				app.WithHTTPServer("http", serverOpts...),
			)

			err = application.Err()
			if err != nil {
				return fmt.Errorf("build application: %w", err)
			}

			application.Run()

			return nil
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address (default: server.address from the document, then :8080)")

	return cmd
}
