package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daily-task-manager/internal/app"
	"daily-task-manager/internal/model"
	"daily-task-manager/internal/task"
)

var (
	listStatus string

	addDescription string
	addDue         string
	addPriority    int
	addNoCarry     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status := model.TaskStatus(listStatus)
		if status != "" && status != model.TaskStatusTodo && status != model.TaskStatusDone {
			return fmt.Errorf("invalid --status %q (want todo or done)", listStatus)
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Tasks.List(ctx, task.ListInput{Status: status})
			if err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), out.Tasks, a.Clock.Today())
			return nil
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Long: `Create a task. --due accepts YYYY-MM-DD, today, tomorrow, yesterday,
"in N days|weeks|months" or "next <weekday>".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := task.CreateInput{
			Title:       strings.Join(args, " "),
			Description: addDescription,
			DueDate:     addDue,
		}
		if cmd.Flags().Changed("priority") {
			input.Priority = &addPriority
		}
		if addNoCarry {
			carry := false
			input.AutoCarryOver = &carry
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Tasks.Create(ctx, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Task.ID)
			printTask(cmd.OutOrStdout(), out.Task)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Tasks.Detail(ctx, args[0])
			if err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), out.Task)
			return nil
		})
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <id> <title>",
	Short: "Change a task's title",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Tasks.Rename(ctx, task.RenameInput{ID: args[0], Title: strings.Join(args[1:], " ")})
			if err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), out.Task)
			return nil
		})
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a task between todo and done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Tasks.ToggleStatus(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", out.Task.ID, out.Task.Status)
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.Tasks.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (todo or done)")

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date")
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", model.PriorityNormal, "Priority 1 (low) to 4 (urgent)")
	addCmd.Flags().BoolVar(&addNoCarry, "no-carry-over", false, "Do not carry the task over when it is left unfinished")
}
