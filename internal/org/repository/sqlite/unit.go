package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"missionmind/internal/model"
	repo "missionmind/internal/org/repository"
)

const unitColumns = `id, name, echelon, parent_id, active`

func scanUnit(row interface{ Scan(...any) error }) (model.OrgUnit, error) {
	var (
		unit   model.OrgUnit
		active int64
	)
	err := row.Scan(&unit.ID, &unit.Name, &unit.Echelon, &unit.ParentID, &active)
	if err != nil {
		return model.OrgUnit{}, err
	}
	unit.Active = active == 1
	return unit, nil
}

// CreateUnit inserts a new OrgUnit row and returns the created entity.
func (r *implRepository) CreateUnit(ctx context.Context, opt repo.CreateUnitOptions) (model.OrgUnit, error) {
	const query = `
		INSERT INTO org_units (id, name, echelon, parent_id, active)
		VALUES (?, ?, ?, ?, ?)`

	active := int64(0)
	if opt.Active {
		active = 1
	}
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.Name, opt.Echelon, opt.ParentID, active); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUnit"), err)
		return model.OrgUnit{}, repo.ErrFailedToInsert
	}
	return model.OrgUnit{
		ID:       opt.ID,
		Name:     opt.Name,
		Echelon:  opt.Echelon,
		ParentID: opt.ParentID,
		Active:   opt.Active,
	}, nil
}

// GetOneUnit retrieves a single OrgUnit by the provided filters (AND).
// Returns zero-value OrgUnit (ID == "") when not found, without error.
func (r *implRepository) GetOneUnit(ctx context.Context, opt repo.GetOneUnitOptions) (model.OrgUnit, error) {
	var conditions []string
	var args []any
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name = ?")
		args = append(args, opt.Name)
	}
	if len(conditions) == 0 {
		return model.OrgUnit{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM org_units WHERE %s LIMIT 1`,
		unitColumns, strings.Join(conditions, " AND "))

	unit, err := scanUnit(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.OrgUnit{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUnit"), err)
		return model.OrgUnit{}, repo.ErrFailedToGet
	}
	return unit, nil
}

// ListUnits returns a paginated list of OrgUnits and the total count.
func (r *implRepository) ListUnits(ctx context.Context, opt repo.ListUnitsOptions) ([]model.OrgUnit, int, error) {
	countMods, countArgs := r.buildUnitCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM org_units WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListUnits"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildUnitListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM org_units %s`, unitColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUnits"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var units []model.OrgUnit
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListUnits"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return units, total, nil
}

// UpdateUnit replaces the mutable columns of an OrgUnit by ID and returns the
// updated entity. Returns zero-value OrgUnit when the row does not exist.
func (r *implRepository) UpdateUnit(ctx context.Context, opt repo.UpdateUnitOptions) (model.OrgUnit, error) {
	const query = `
		UPDATE org_units
		SET name = ?, echelon = ?, parent_id = ?, active = ?
		WHERE id = ?`

	active := int64(0)
	if opt.Active {
		active = 1
	}
	res, err := r.db.ExecContext(ctx, query, opt.Name, opt.Echelon, opt.ParentID, active, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUnit"), err)
		return model.OrgUnit{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.OrgUnit{}, nil
	}
	return model.OrgUnit{
		ID:       opt.ID,
		Name:     opt.Name,
		Echelon:  opt.Echelon,
		ParentID: opt.ParentID,
		Active:   opt.Active,
	}, nil
}
