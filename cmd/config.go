package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/uren/internal/config"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print an annotated config file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.Template)
			return err
		},
	}
}
