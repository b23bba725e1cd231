// Package cli implements the dtm command line: one-shot task commands and
// the interactive board.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"daily-task-manager/config"
	"daily-task-manager/internal/app"
	"daily-task-manager/pkg/log"
)

var (
	debug   bool
	version = "v0.1.0"

	rootCmd = &cobra.Command{
		Use:          "dtm",
		Short:        "Manage today's tasks from the terminal",
		Long:         `dtm manages daily tasks: recurring routines, automatic carry-over of unfinished work and a chat assistant.`,
		SilenceUsage: true,
	}
)

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd, addCmd, showCmd, renameCmd, toggleCmd, deleteCmd)
	rootCmd.AddCommand(generateCmd, carryOverCmd, chatCmd, boardCmd)
}

// newLogger stays silent unless --debug is set so logs do not interleave
// with command output.
func newLogger(cfg *config.Config) log.Logger {
	if !debug {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        "debug",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}

// withApp loads config, wires the domain layer and runs fn against it.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	a, err := app.New(ctx, cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer a.Close(context.Background())
	return fn(ctx, a)
}
