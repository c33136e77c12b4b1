package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"missionmind/internal/model"
	repo "missionmind/internal/task/repository"
)

const commentColumns = `id, task_id, author_user_id, body, parent_comment_id, created_at`

func scanComment(row interface{ Scan(...any) error }) (model.Comment, error) {
	var (
		c       model.Comment
		created string
	)
	err := row.Scan(&c.ID, &c.TaskID, &c.AuthorUserID, &c.Body, &c.ParentCommentID, &created)
	if err != nil {
		return model.Comment{}, err
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

// CreateComment inserts a new Comment row and returns the created entity with
// a fresh UUID.
func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	const query = `
		INSERT INTO comments (id, task_id, author_user_id, body, parent_comment_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	id := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	_, err := r.db.ExecContext(ctx, query, id, opt.TaskID, opt.AuthorUserID, opt.Body, opt.ParentCommentID, now.Format(time.RFC3339))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToInsert
	}

	return model.Comment{
		ID:              id,
		TaskID:          opt.TaskID,
		AuthorUserID:    opt.AuthorUserID,
		Body:            opt.Body,
		ParentCommentID: opt.ParentCommentID,
		CreatedAt:       now,
	}, nil
}

// GetOneComment retrieves a single Comment by ID.
// Returns zero-value Comment (ID == "") when not found, without error.
func (r *implRepository) GetOneComment(ctx context.Context, opt repo.GetOneCommentOptions) (model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = ? LIMIT 1`

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Comment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneComment"), err)
		return model.Comment{}, repo.ErrFailedToGet
	}
	return comment, nil
}

// ListComments returns the comments of a task in insertion order.
func (r *implRepository) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE task_id = ? ORDER BY rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.TaskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	return comments, nil
}
