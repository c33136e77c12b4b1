package sqlite

import (
	"fmt"
	"strings"

	repo "missionmind/internal/task/repository"
)

// buildTaskCountQuery builds the WHERE clause + args for counting Tasks.
func (r *implRepository) buildTaskCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.taskConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildTaskListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause.
func (r *implRepository) buildTaskListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	conditions, args := r.taskConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sequential ids keep insertion order stable.
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "id ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

func (r *implRepository) taskConditions(opt repo.ListTasksOptions) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}
	if opt.OrgUnitID != "" {
		conditions = append(conditions, "org_unit_id = ?")
		args = append(args, opt.OrgUnitID)
	}
	if !opt.DueBefore.IsZero() {
		conditions = append(conditions, "suspense_date <= ?")
		args = append(args, opt.DueBefore.UTC().Format(dateFormat))
	}

	return conditions, args
}
