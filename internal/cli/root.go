package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kitchen",
		Short:         "Kitchen back-office order service",
		Long:          "kitchen serves the order HTTP API and manages the back-office database schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("env-file", defaultEnvFile, "file with KEY=value pairs loaded into the environment")
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}
