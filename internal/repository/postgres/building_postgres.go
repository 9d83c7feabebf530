package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// BuildingPostgres is a PostgreSQL implementation of repository.BuildingRepository.
// Ownership shares live in building_owners and are replaced wholesale on update.
type BuildingPostgres struct {
	db *sql.DB
}

// NewBuildingPostgres creates a new BuildingPostgres repository.
func NewBuildingPostgres(db *sql.DB) *BuildingPostgres {
	return &BuildingPostgres{db: db}
}

var _ repository.BuildingRepository = (*BuildingPostgres)(nil)

const buildingColumns = `id, name, address, city_id, district_id, floors, year_built, created_at, updated_at`

func scanBuilding(row scanner) (*model.Building, error) {
	var b model.Building
	var yearBuilt sql.NullInt64
	if err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Address,
		&b.CityID,
		&b.DistrictID,
		&b.Floors,
		&yearBuilt,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if yearBuilt.Valid {
		b.YearBuilt = int(yearBuilt.Int64)
	}
	b.Owners = []model.BuildingOwner{}
	return &b, nil
}

func nullYear(y int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(y), Valid: y != 0}
}

func (r *BuildingPostgres) Create(ctx context.Context, b *model.Building) (*model.Building, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	const q = `
		INSERT INTO buildings (` + buildingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + buildingColumns
	out, err := scanBuilding(tx.QueryRowContext(ctx, q,
		b.ID, b.Name, b.Address, b.CityID, b.DistrictID, b.Floors, nullYear(b.YearBuilt), b.CreatedAt, b.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	if err := insertOwners(ctx, tx, out.ID, b.Owners); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	out.Owners = append(out.Owners, b.Owners...)
	return out, nil
}

func insertOwners(ctx context.Context, tx *sql.Tx, buildingID string, owners []model.BuildingOwner) error {
	const q = `INSERT INTO building_owners (building_id, owner_id, percentage) VALUES ($1, $2, $3)`
	for _, o := range owners {
		if _, err := tx.ExecContext(ctx, q, buildingID, o.OwnerID, o.Percentage); err != nil {
			return fmt.Errorf("insert owner %s: %w", o.OwnerID, mapError(err))
		}
	}
	return nil
}

func (r *BuildingPostgres) FindByID(ctx context.Context, id string) (*model.Building, error) {
	const q = `SELECT ` + buildingColumns + ` FROM buildings WHERE id = $1`
	b, err := scanBuilding(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	owners, err := r.loadOwners(ctx, []string{b.ID})
	if err != nil {
		return nil, err
	}
	b.Owners = append(b.Owners, owners[b.ID]...)
	return b, nil
}

// loadOwners fetches the shares of several buildings in one query, keyed by building id.
func (r *BuildingPostgres) loadOwners(ctx context.Context, buildingIDs []string) (map[string][]model.BuildingOwner, error) {
	out := make(map[string][]model.BuildingOwner, len(buildingIDs))
	if len(buildingIDs) == 0 {
		return out, nil
	}
	args := make([]any, len(buildingIDs))
	for i, id := range buildingIDs {
		args[i] = id
	}
	q := `
		SELECT bo.building_id, bo.owner_id, o.full_name, bo.percentage
		FROM building_owners bo
		JOIN owners o ON o.id = bo.owner_id
		WHERE bo.building_id IN (` + placeholders(1, len(buildingIDs)) + `)
		ORDER BY bo.percentage DESC, o.full_name ASC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var buildingID string
		var o model.BuildingOwner
		if err := rows.Scan(&buildingID, &o.OwnerID, &o.OwnerName, &o.Percentage); err != nil {
			return nil, err
		}
		out[buildingID] = append(out[buildingID], o)
	}
	return out, rows.Err()
}

func (r *BuildingPostgres) List(ctx context.Context, f repository.BuildingFilter, pq repository.PageQuery) (*repository.PageResult[model.Building], error) {
	var w where
	if f.CityID != "" {
		w.add("city_id = ?", f.CityID)
	}
	if f.DistrictID != "" {
		w.add("district_id = ?", f.DistrictID)
	}
	if f.OwnerID != "" {
		w.add("id IN (SELECT building_id FROM building_owners WHERE owner_id = ?)", f.OwnerID)
	}
	if f.Query != "" {
		w.like(f.Query, "name", "address")
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM buildings`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, `SELECT `+buildingColumns+` FROM buildings`+w.String()+` ORDER BY name ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanBuilding)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	owners, err := r.loadOwners(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Owners = append(items[i].Owners, owners[items[i].ID]...)
	}
	return &repository.PageResult[model.Building]{Items: items, Total: total}, nil
}

func (r *BuildingPostgres) Update(ctx context.Context, b *model.Building) (*model.Building, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	const q = `
		UPDATE buildings
		SET name = $2, address = $3, city_id = $4, district_id = $5, floors = $6, year_built = $7, updated_at = $8
		WHERE id = $1
		RETURNING ` + buildingColumns
	out, err := scanBuilding(tx.QueryRowContext(ctx, q,
		b.ID, b.Name, b.Address, b.CityID, b.DistrictID, b.Floors, nullYear(b.YearBuilt), b.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM building_owners WHERE building_id = $1`, b.ID); err != nil {
		return nil, err
	}
	if err := insertOwners(ctx, tx, b.ID, b.Owners); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	out.Owners = append(out.Owners, b.Owners...)
	return out, nil
}

// Delete cascades to building_owners; units referencing the building block it.
func (r *BuildingPostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, r.db, `DELETE FROM buildings WHERE id = $1`, id)
}
