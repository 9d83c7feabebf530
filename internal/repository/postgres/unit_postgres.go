package postgres

import (
	"context"
	"database/sql"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// UnitPostgres is a PostgreSQL implementation of repository.UnitRepository.
type UnitPostgres struct {
	db *sql.DB
}

// NewUnitPostgres creates a new UnitPostgres repository.
func NewUnitPostgres(db *sql.DB) *UnitPostgres {
	return &UnitPostgres{db: db}
}

var _ repository.UnitRepository = (*UnitPostgres)(nil)

const unitColumns = `id, unit_number, type, building_id, city_id, district_id, owner_id, floor,
	bedrooms, bathrooms, area_sqm, monthly_rent, status, created_at, updated_at`

func scanUnit(row scanner) (*model.Unit, error) {
	var u model.Unit
	var buildingID, districtID sql.NullString
	if err := row.Scan(
		&u.ID,
		&u.UnitNumber,
		&u.Type,
		&buildingID,
		&u.CityID,
		&districtID,
		&u.OwnerID,
		&u.Floor,
		&u.Bedrooms,
		&u.Bathrooms,
		&u.AreaSqm,
		&u.MonthlyRent,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.BuildingID = buildingID.String
	u.DistrictID = districtID.String
	return &u, nil
}

func (r *UnitPostgres) Create(ctx context.Context, u *model.Unit) (*model.Unit, error) {
	const q = `
		INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + unitColumns
	out, err := scanUnit(r.db.QueryRowContext(ctx, q,
		u.ID, u.UnitNumber, u.Type, nullString(u.BuildingID), u.CityID, nullString(u.DistrictID), u.OwnerID, u.Floor,
		u.Bedrooms, u.Bathrooms, u.AreaSqm, u.MonthlyRent, u.Status, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *UnitPostgres) FindByID(ctx context.Context, id string) (*model.Unit, error) {
	const q = `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	return scanUnit(r.db.QueryRowContext(ctx, q, id))
}

func (r *UnitPostgres) List(ctx context.Context, f repository.UnitFilter, pq repository.PageQuery) (*repository.PageResult[model.Unit], error) {
	var w where
	if f.BuildingID != "" {
		w.add("building_id = ?", f.BuildingID)
	}
	if f.CityID != "" {
		w.add("city_id = ?", f.CityID)
	}
	if f.DistrictID != "" {
		w.add("district_id = ?", f.DistrictID)
	}
	if f.OwnerID != "" {
		w.add("owner_id = ?", f.OwnerID)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Type != "" {
		w.add("type = ?", f.Type)
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM units`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, `SELECT `+unitColumns+` FROM units`+w.String()+` ORDER BY unit_number ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanUnit)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Unit]{Items: items, Total: total}, nil
}

func (r *UnitPostgres) Update(ctx context.Context, u *model.Unit) (*model.Unit, error) {
	const q = `
		UPDATE units
		SET unit_number = $2, type = $3, building_id = $4, city_id = $5, district_id = $6, owner_id = $7,
			floor = $8, bedrooms = $9, bathrooms = $10, area_sqm = $11, monthly_rent = $12, status = $13, updated_at = $14
		WHERE id = $1
		RETURNING ` + unitColumns
	out, err := scanUnit(r.db.QueryRowContext(ctx, q,
		u.ID, u.UnitNumber, u.Type, nullString(u.BuildingID), u.CityID, nullString(u.DistrictID), u.OwnerID,
		u.Floor, u.Bedrooms, u.Bathrooms, u.AreaSqm, u.MonthlyRent, u.Status, u.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *UnitPostgres) SetStatus(ctx context.Context, id string, status model.UnitStatus) error {
	return execAffected(ctx, r.db, `UPDATE units SET status = $2, updated_at = now() WHERE id = $1`, id, status)
}

// currentLease matches an active lease of units.id whose term covers $1.
const currentLease = `EXISTS (
	SELECT 1 FROM leases l
	WHERE l.unit_id = units.id AND l.status = 'active' AND l.start_date <= $1 AND l.end_date >= $1
)`

func (r *UnitPostgres) SyncOccupancy(ctx context.Context, today model.Date) (int64, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE units SET status = 'occupied', updated_at = now() WHERE status = 'vacant' AND `+currentLease, today)
	if err != nil {
		return 0, 0, err
	}
	occupied, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE units SET status = 'vacant', updated_at = now() WHERE status = 'occupied' AND NOT `+currentLease, today)
	if err != nil {
		return 0, 0, err
	}
	vacated, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return occupied, vacated, nil
}

func (r *UnitPostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, r.db, `DELETE FROM units WHERE id = $1`, id)
}
