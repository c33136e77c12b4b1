package sqlite

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"missionmind/internal/model"
	repo "missionmind/internal/org/repository"
)

// CreateAuthority inserts a new Authority row and returns the created entity.
// A fresh UUID is assigned when opt.ID is empty.
func (r *implRepository) CreateAuthority(ctx context.Context, opt repo.CreateAuthorityOptions) (model.Authority, error) {
	const query = `
		INSERT INTO authorities (id, title, org_unit_id, grade, scope)
		VALUES (?, ?, ?, ?, ?)`

	id := opt.ID
	if id == "" {
		id = uuid.NewString()
	}
	scope, err := marshalStrings(opt.Scope)
	if err != nil {
		r.l.Errorf(ctx, "%s scope: %v", r.dsn("CreateAuthority"), err)
		return model.Authority{}, repo.ErrFailedToInsert
	}

	if _, err := r.db.ExecContext(ctx, query, id, opt.Title, opt.OrgUnitID, opt.Grade, scope); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAuthority"), err)
		return model.Authority{}, repo.ErrFailedToInsert
	}
	return model.Authority{
		ID:        id,
		Title:     opt.Title,
		OrgUnitID: opt.OrgUnitID,
		Grade:     opt.Grade,
		Scope:     opt.Scope,
	}, nil
}

// ListAuthorities returns the authorities of an org unit in insertion order.
func (r *implRepository) ListAuthorities(ctx context.Context, opt repo.ListAuthoritiesOptions) ([]model.Authority, error) {
	const query = `
		SELECT id, title, org_unit_id, grade, scope
		FROM authorities
		WHERE org_unit_id = ?
		ORDER BY rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.OrgUnitID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAuthorities"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var authorities []model.Authority
	for rows.Next() {
		var (
			a     model.Authority
			scope string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.OrgUnitID, &a.Grade, &scope); err != nil {
			return nil, repo.ErrFailedToList
		}
		if a.Scope, err = unmarshalStrings(scope); err != nil {
			r.l.Errorf(ctx, "%s scope: %v", r.dsn("ListAuthorities"), err)
			return nil, repo.ErrFailedToList
		}
		authorities = append(authorities, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListAuthorities"), err)
		return nil, repo.ErrFailedToList
	}
	return authorities, nil
}

// marshalStrings encodes a string slice as a JSON array column value.
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalStrings decodes a JSON array column value into a string slice.
func unmarshalStrings(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}
