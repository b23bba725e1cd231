package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daily-task-manager/internal/app"
	"daily-task-manager/internal/routine"
)

var generateToday string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create today's tasks from active routines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Routines.Generate(ctx, routine.GenerateInput{Today: generateToday})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d task(s) for %s\n", len(out.Tasks), out.Date)
			printTasks(cmd.OutOrStdout(), out.Tasks, out.Date)
			return nil
		})
	},
}

var carryOverCmd = &cobra.Command{
	Use:   "carry-over",
	Short: "Move yesterday's unfinished tasks to today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Tasks.CarryOver(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %d task(s) from %s to %s\n", out.MovedCount, out.From, out.To)
			return nil
		})
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateToday, "today", "", "Date to generate for (YYYY-MM-DD); defaults to today")
}
