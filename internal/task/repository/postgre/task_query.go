package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	repo "daily-task-manager/internal/task/repository"
)

// buildInsert returns the column list, placeholders and args for one row,
// numbering placeholders from start. Nil options are omitted so the column
// defaults apply.
func (r *implRepository) buildInsert(opt repo.CreateTaskOptions, start int) ([]string, []string, []any) {
	var (
		cols         []string
		placeholders []string
		args         []any
	)
	idx := start
	add := func(col, cast string, v any) {
		cols = append(cols, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d%s", idx, cast))
		args = append(args, v)
		idx++
	}

	add("title", "", opt.Title)
	if opt.Status != "" {
		add("status", "", string(opt.Status))
	}
	if opt.Description != nil {
		add("description", "", *opt.Description)
	}
	if opt.DueDate != nil {
		add("due_date", "::date", *opt.DueDate)
	}
	if opt.Priority != nil {
		add("priority", "", *opt.Priority)
	}
	if opt.RoutineID != nil {
		add("routine_id", "::uuid", *opt.RoutineID)
	}
	if opt.AutoCarryOver != nil {
		add("auto_carry_over", "", *opt.AutoCarryOver)
	}
	return cols, placeholders, args
}

// buildBulkInsert builds a multi-row INSERT. Every row must share a column
// set, so the bulk form always writes all columns explicitly.
func (r *implRepository) buildBulkInsert(opts []repo.CreateTaskOptions) (string, []any) {
	const perRow = 7
	values := make([]string, 0, len(opts))
	args := make([]any, 0, len(opts)*perRow)

	for i, opt := range opts {
		base := i*perRow + 1
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d::date, $%d, $%d::uuid, COALESCE($%d, true))",
			base, base+1, base+2, base+3, base+4, base+5, base+6,
		))
		status := opt.Status
		if status == "" {
			status = "todo"
		}
		args = append(args, opt.Title, string(status), opt.Description, opt.DueDate, opt.Priority, opt.RoutineID, opt.AutoCarryOver)
	}

	query := fmt.Sprintf(`
		INSERT INTO tasks (title, status, description, due_date, priority, routine_id, auto_carry_over)
		VALUES %s
		ON CONFLICT (routine_id, due_date) DO NOTHING
		RETURNING %s`, strings.Join(values, ", "), taskColumns)
	return query, args
}

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var (
		parts      []string
		conditions []string
		args       []any
	)
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(opt.Status))
		idx++
	}
	if opt.DueDate != "" {
		conditions = append(conditions, fmt.Sprintf("due_date = $%d::date", idx))
		args = append(args, opt.DueDate)
		idx++
	}
	if len(opt.RoutineIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("routine_id = ANY($%d::uuid[])", idx))
		args = append(args, pq.Array(opt.RoutineIDs))
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY created_at DESC")

	return strings.Join(parts, " "), args
}
