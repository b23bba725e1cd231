package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"daily-task-manager/config"
	"daily-task-manager/internal/app"
	"daily-task-manager/internal/tasklist"
	"daily-task-manager/internal/tui"
	"daily-task-manager/pkg/log"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive task board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		// Any log line would corrupt the alternate screen.
		a, err := app.New(ctx, cfg, log.NewNop())
		if err != nil {
			return err
		}
		defer a.Close(context.Background())

		ctrl := tasklist.NewController(log.NewNop(), tasklist.NewBoard(a.Clock.Today()), a.Tasks, a.Routines)
		_, err = tea.NewProgram(tui.New(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return err
	},
}
