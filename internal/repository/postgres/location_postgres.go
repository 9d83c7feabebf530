package postgres

import (
	"context"
	"database/sql"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

// CityPostgres is a PostgreSQL implementation of repository.CityRepository.
type CityPostgres struct {
	db *sql.DB
}

// NewCityPostgres creates a new CityPostgres repository.
func NewCityPostgres(db *sql.DB) *CityPostgres {
	return &CityPostgres{db: db}
}

var _ repository.CityRepository = (*CityPostgres)(nil)

const cityColumns = `id, name, country, created_at`

func scanCity(row scanner) (*model.City, error) {
	var c model.City
	if err := row.Scan(&c.ID, &c.Name, &c.Country, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CityPostgres) Create(ctx context.Context, c *model.City) (*model.City, error) {
	const q = `
		INSERT INTO cities (` + cityColumns + `)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + cityColumns
	out, err := scanCity(r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Country, c.CreatedAt))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *CityPostgres) FindByID(ctx context.Context, id string) (*model.City, error) {
	const q = `SELECT ` + cityColumns + ` FROM cities WHERE id = $1`
	return scanCity(r.db.QueryRowContext(ctx, q, id))
}

// FindByName matches case-insensitively.
func (r *CityPostgres) FindByName(ctx context.Context, name string) (*model.City, error) {
	const q = `SELECT ` + cityColumns + ` FROM cities WHERE lower(name) = lower($1)`
	return scanCity(r.db.QueryRowContext(ctx, q, name))
}

func (r *CityPostgres) List(ctx context.Context, f repository.CityFilter, pq repository.PageQuery) (*repository.PageResult[model.City], error) {
	var w where
	if f.Query != "" {
		w.like(f.Query, "name")
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM cities`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, `SELECT `+cityColumns+` FROM cities`+w.String()+` ORDER BY name ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanCity)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.City]{Items: items, Total: total}, nil
}

func (r *CityPostgres) Update(ctx context.Context, c *model.City) (*model.City, error) {
	const q = `
		UPDATE cities SET name = $2, country = $3
		WHERE id = $1
		RETURNING ` + cityColumns
	out, err := scanCity(r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Country))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// Delete returns sql.ErrNoRows when the city does not exist and
// repository.ErrReferenced while districts, buildings or units still use it.
func (r *CityPostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, r.db, `DELETE FROM cities WHERE id = $1`, id)
}

// DistrictPostgres is a PostgreSQL implementation of repository.DistrictRepository.
type DistrictPostgres struct {
	db *sql.DB
}

// NewDistrictPostgres creates a new DistrictPostgres repository.
func NewDistrictPostgres(db *sql.DB) *DistrictPostgres {
	return &DistrictPostgres{db: db}
}

var _ repository.DistrictRepository = (*DistrictPostgres)(nil)

const districtColumns = `id, city_id, name, created_at`

func scanDistrict(row scanner) (*model.District, error) {
	var d model.District
	if err := row.Scan(&d.ID, &d.CityID, &d.Name, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DistrictPostgres) Create(ctx context.Context, d *model.District) (*model.District, error) {
	const q = `
		INSERT INTO districts (` + districtColumns + `)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + districtColumns
	out, err := scanDistrict(r.db.QueryRowContext(ctx, q, d.ID, d.CityID, d.Name, d.CreatedAt))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *DistrictPostgres) FindByID(ctx context.Context, id string) (*model.District, error) {
	const q = `SELECT ` + districtColumns + ` FROM districts WHERE id = $1`
	return scanDistrict(r.db.QueryRowContext(ctx, q, id))
}

func (r *DistrictPostgres) FindByName(ctx context.Context, cityID, name string) (*model.District, error) {
	const q = `SELECT ` + districtColumns + ` FROM districts WHERE city_id = $1 AND lower(name) = lower($2)`
	return scanDistrict(r.db.QueryRowContext(ctx, q, cityID, name))
}

func (r *DistrictPostgres) List(ctx context.Context, f repository.DistrictFilter, pq repository.PageQuery) (*repository.PageResult[model.District], error) {
	var w where
	if f.CityID != "" {
		w.add("city_id = ?", f.CityID)
	}
	if f.Query != "" {
		w.like(f.Query, "name")
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM districts`+w.String(), w.args...)
	if err != nil {
		return nil, err
	}

	limit, args := w.page(pq)
	rows, err := r.db.QueryContext(ctx, `SELECT `+districtColumns+` FROM districts`+w.String()+` ORDER BY name ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, err
	}
	items, err := collect(rows, scanDistrict)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.District]{Items: items, Total: total}, nil
}

func (r *DistrictPostgres) Update(ctx context.Context, d *model.District) (*model.District, error) {
	const q = `
		UPDATE districts SET city_id = $2, name = $3
		WHERE id = $1
		RETURNING ` + districtColumns
	out, err := scanDistrict(r.db.QueryRowContext(ctx, q, d.ID, d.CityID, d.Name))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *DistrictPostgres) InUse(ctx context.Context, id string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM buildings WHERE district_id = $1)
		OR EXISTS (SELECT 1 FROM units WHERE district_id = $1)`
	var used bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&used); err != nil {
		return false, err
	}
	return used, nil
}

func (r *DistrictPostgres) Delete(ctx context.Context, id string) error {
	return execAffected(ctx, r.db, `DELETE FROM districts WHERE id = $1`, id)
}
