package sqlite

import (
	"fmt"
	"strings"

	repo "missionmind/internal/org/repository"
)

// buildUnitCountQuery builds the WHERE clause + args for counting OrgUnits.
func (r *implRepository) buildUnitCountQuery(opt repo.ListUnitsOptions) (string, []any) {
	conditions, args := r.unitConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildUnitListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause.
func (r *implRepository) buildUnitListQuery(opt repo.ListUnitsOptions) (string, []any) {
	var parts []string
	conditions, args := r.unitConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

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

func (r *implRepository) unitConditions(opt repo.ListUnitsOptions) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.Echelon != "" {
		conditions = append(conditions, "echelon = ?")
		args = append(args, opt.Echelon)
	}
	if opt.ParentID != "" {
		conditions = append(conditions, "parent_id = ?")
		args = append(args, opt.ParentID)
	}
	if opt.ActiveOnly {
		conditions = append(conditions, "active = 1")
	}

	return conditions, args
}
