package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skillbot/internal/di"
	"skillbot/internal/structures"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	root := &cobra.Command{
		Use:           "skillbot",
		Short:         "Skill and habit progress tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "path to the yaml config file")
	root.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to stderr")

	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newExportCmd(flags))
	return root
}

func newServeCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cleanup, err := di.InitApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Run()
		},
	}
}

func newExportCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write a timestamped snapshot of all users and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := di.InitApp(flags)
			if err != nil {
				return err
			}
			defer cleanup()
			path, err := app.Export()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
