package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"missionmind/internal/model"
	repo "missionmind/internal/task/repository"
)

// CreateAssignment inserts a new Assignment row and returns the created
// entity with a fresh UUID.
func (r *implRepository) CreateAssignment(ctx context.Context, opt repo.CreateAssignmentOptions) (model.Assignment, error) {
	const query = `
		INSERT INTO assignments (id, task_id, assignee_type, assignee_id, role, due_override_date, state, rationale, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	var due sql.NullString
	if opt.DueOverrideDate != nil {
		due = sql.NullString{String: opt.DueOverrideDate.UTC().Format(dateFormat), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		id, opt.TaskID, opt.AssigneeType, opt.AssigneeID, opt.Role, due, opt.State, opt.Rationale, now.Format(time.RFC3339),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAssignment"), err)
		return model.Assignment{}, repo.ErrFailedToInsert
	}

	assignment := model.Assignment{
		ID:           id,
		TaskID:       opt.TaskID,
		AssigneeType: opt.AssigneeType,
		AssigneeID:   opt.AssigneeID,
		Role:         opt.Role,
		State:        opt.State,
		Rationale:    opt.Rationale,
		CreatedAt:    now,
	}
	if opt.DueOverrideDate != nil {
		d := dateOnly(*opt.DueOverrideDate)
		assignment.DueOverrideDate = &d
	}
	return assignment, nil
}

// ListAssignments returns assignments in insertion order, filtered by one
// task id or a batch of task ids.
func (r *implRepository) ListAssignments(ctx context.Context, opt repo.ListAssignmentsOptions) ([]model.Assignment, error) {
	var conditions []string
	var args []any

	if opt.TaskID != "" {
		conditions = append(conditions, "task_id = ?")
		args = append(args, opt.TaskID)
	}
	if len(opt.TaskIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(opt.TaskIDs)), ", ")
		conditions = append(conditions, fmt.Sprintf("task_id IN (%s)", placeholders))
		for _, id := range opt.TaskIDs {
			args = append(args, id)
		}
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}
	query := fmt.Sprintf(`
		SELECT id, task_id, assignee_type, assignee_id, role, due_override_date, state, rationale, created_at
		FROM assignments
		WHERE %s
		ORDER BY rowid ASC`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAssignments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var (
			a       model.Assignment
			due     sql.NullString
			created string
		)
		if err := rows.Scan(&a.ID, &a.TaskID, &a.AssigneeType, &a.AssigneeID, &a.Role, &due, &a.State, &a.Rationale, &created); err != nil {
			return nil, repo.ErrFailedToList
		}
		if a.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			r.l.Errorf(ctx, "%s created_at: %v", r.dsn("ListAssignments"), err)
			return nil, repo.ErrFailedToList
		}
		if due.Valid {
			d, err := time.ParseInLocation(dateFormat, due.String, time.UTC)
			if err != nil {
				r.l.Errorf(ctx, "%s due_override_date: %v", r.dsn("ListAssignments"), err)
				return nil, repo.ErrFailedToList
			}
			a.DueOverrideDate = &d
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListAssignments"), err)
		return nil, repo.ErrFailedToList
	}
	return assignments, nil
}
