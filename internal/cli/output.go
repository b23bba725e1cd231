package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"daily-task-manager/internal/model"
)

// printTasks writes one row per task. Unfinished tasks due before today are
// flagged as overdue.
func printTasks(w io.Writer, tasks []model.Task, today string) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE")
	for _, t := range tasks {
		due := t.Due()
		if due == "" {
			due = "-"
		} else if !t.IsDone() && due < today {
			due += " (overdue)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Status, model.PriorityLabel(t.Priority), due, t.Title)
	}
	tw.Flush()
}

func printTask(w io.Writer, t model.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", t.Title)
	if t.Description != nil && *t.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", *t.Description)
	}
	fmt.Fprintf(tw, "Status:\t%s\n", t.Status)
	fmt.Fprintf(tw, "Priority:\t%s\n", model.PriorityLabel(t.Priority))
	if due := t.Due(); due != "" {
		fmt.Fprintf(tw, "Due:\t%s\n", due)
	}
	fmt.Fprintf(tw, "Carry over:\t%t\n", t.AutoCarryOver)
	if t.RoutineID != nil {
		fmt.Fprintf(tw, "Routine:\t%s\n", *t.RoutineID)
	}
	if !t.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "Created:\t%s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
