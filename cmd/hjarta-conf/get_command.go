package main

import (
	"errors"
	"fmt"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/spf13/cobra"
)

var errPathNotFound = errors.New("path not found")

func newGetCommand(ctx *commandContext) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the resolved value at a property path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd.InOrStdin())
			if err != nil {
				return err
			}

			path := args[0]

			value, ok := cfg.Get(path)
			if raw {
				value, ok = rawValue(cfg, path)
			}

			if !ok {
				return fmt.Errorf("%w: %s", errPathNotFound, path)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)

			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the value without resolving tokens")

	return cmd
}

// rawValue renders the stored value at path with its tokens intact.
func rawValue(cfg *conf.Configuration, path string) (string, bool) {
	node, ok := cfg.Node(path)
	if !ok {
		return "", false
	}

	return tree.Render(node)
}
