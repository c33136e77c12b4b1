package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"missionmind/internal/model"
	repo "missionmind/internal/task/repository"
)

const taskColumns = `id, title, description, classification, suspense_date, originator,
	org_unit_id, priority_score, status, record_series_id, tags, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var (
		task               model.Task
		classification     string
		status             string
		suspense, tags     string
		createdAt, updated string
	)
	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &classification, &suspense, &task.Originator,
		&task.OrgUnitID, &task.PriorityScore, &status, &task.RecordSeriesID, &tags, &createdAt, &updated,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Classification = model.Classification(classification)
	task.Status = model.TaskStatus(status)
	if task.SuspenseDate, err = time.ParseInLocation(dateFormat, suspense, time.UTC); err != nil {
		return model.Task{}, err
	}
	if task.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return model.Task{}, err
	}
	if task.UpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
		return model.Task{}, err
	}
	if task.Tags, err = unmarshalStrings(tags); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// CreateTask inserts a new Task row and returns the created entity. When
// opt.ID is empty the next sequential id T-YY-NNNNNN is assigned inside the
// same transaction as the insert.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, title, description, classification, suspense_date, originator,
			org_unit_id, priority_score, status, record_series_id, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	tags, err := marshalStrings(opt.Tags)
	if err != nil {
		r.l.Errorf(ctx, "%s tags: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	id := opt.ID
	if id == "" {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
			r.l.Errorf(ctx, "%s count: %v", r.dsn("CreateTask"), err)
			return model.Task{}, repo.ErrFailedToInsert
		}
		id = fmt.Sprintf("T-%02d-%06d", now.Year()%100, count+1)
	}

	_, err = tx.ExecContext(ctx, query,
		id, opt.Title, opt.Description, string(opt.Classification), opt.SuspenseDate.UTC().Format(dateFormat),
		opt.Originator, opt.OrgUnitID, opt.PriorityScore, string(opt.Status), opt.RecordSeriesID,
		tags, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	return model.Task{
		ID:             id,
		Title:          opt.Title,
		Description:    opt.Description,
		Classification: opt.Classification,
		SuspenseDate:   dateOnly(opt.SuspenseDate),
		Originator:     opt.Originator,
		OrgUnitID:      opt.OrgUnitID,
		PriorityScore:  opt.PriorityScore,
		Status:         opt.Status,
		RecordSeriesID: opt.RecordSeriesID,
		Tags:           opt.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// GetOneTask retrieves a single Task by the provided filters.
// Returns zero-value Task (ID == "") when not found, without error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	countMods, countArgs := r.buildTaskCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildTaskListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask replaces the mutable columns of a Task by ID and returns the
// updated entity. Returns zero-value Task when the row does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, classification = ?, suspense_date = ?, originator = ?,
			org_unit_id = ?, priority_score = ?, status = ?, record_series_id = ?, tags = ?, updated_at = ?
		WHERE id = ?`

	tags, err := marshalStrings(opt.Tags)
	if err != nil {
		r.l.Errorf(ctx, "%s tags: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	now := time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, string(opt.Classification), opt.SuspenseDate.UTC().Format(dateFormat),
		opt.Originator, opt.OrgUnitID, opt.PriorityScore, string(opt.Status), opt.RecordSeriesID,
		tags, now.Format(time.RFC3339), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, nil
	}

	task, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
	if err != nil {
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task with its assignments and comments.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM assignments WHERE task_id = ?`,
		`DELETE FROM comments WHERE task_id = ?`,
		`DELETE FROM tasks WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
			return repo.ErrFailedToDelete
		}
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// dateOnly normalizes a timestamp to a UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
