package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

var buildingRowColumns = []string{"id", "name", "address", "city_id", "district_id", "floors", "year_built", "created_at", "updated_at"}

func TestBuildingPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBuildingPostgres(db)
	now := time.Now().UTC()
	b := &model.Building{
		ID: "b-1", Name: "Marina Heights", Address: "1 Marina Walk", CityID: "c-1", DistrictID: "d-1",
		Floors: 10, CreatedAt: now, UpdatedAt: now,
		Owners: []model.BuildingOwner{{OwnerID: "o-1", Percentage: 60}, {OwnerID: "o-2", Percentage: 40}},
	}

	t.Run("commits building and owners", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO buildings").
			WillReturnRows(sqlmock.NewRows(buildingRowColumns).
				AddRow("b-1", "Marina Heights", "1 Marina Walk", "c-1", "d-1", 10, nil, now, now))
		mock.ExpectExec("INSERT INTO building_owners").
			WithArgs("b-1", "o-1", 60.0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO building_owners").
			WithArgs("b-1", "o-2", 40.0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		out, err := repo.Create(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, 0, out.YearBuilt)
		assert.Len(t, out.Owners, 2)
	})

	t.Run("rolls back when an owner insert fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO buildings").
			WillReturnRows(sqlmock.NewRows(buildingRowColumns).
				AddRow("b-1", "Marina Heights", "1 Marina Walk", "c-1", "d-1", 10, 2010, now, now))
		mock.ExpectExec("INSERT INTO building_owners").
			WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		out, err := repo.Create(context.Background(), b)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "insert owner o-1")
		assert.Nil(t, out)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildingPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBuildingPostgres(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM buildings WHERE id = \$1`).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows(buildingRowColumns).
			AddRow("b-1", "Marina Heights", "1 Marina Walk", "c-1", "d-1", 10, 2015, now, now))
	mock.ExpectQuery(`SELECT bo.building_id, bo.owner_id, o.full_name, bo.percentage FROM building_owners`).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows([]string{"building_id", "owner_id", "full_name", "percentage"}).
			AddRow("b-1", "o-1", "Jane Roe", 75.0).
			AddRow("b-1", "o-2", "John Doe", 25.0))

	b, err := repo.FindByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, 2015, b.YearBuilt)
	require.Len(t, b.Owners, 2)
	assert.Equal(t, "Jane Roe", b.Owners[0].OwnerName)
	assert.Equal(t, 25.0, b.Owners[1].Percentage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildingPostgres_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBuildingPostgres(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM buildings WHERE id IN \(SELECT building_id FROM building_owners WHERE owner_id = \$1\)`).
		WithArgs("o-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM buildings WHERE id IN`).
		WithArgs("o-1", 10, 0).
		WillReturnRows(sqlmock.NewRows(buildingRowColumns).
			AddRow("b-1", "Marina Heights", "1 Marina Walk", "c-1", "d-1", 10, nil, now, now))
	mock.ExpectQuery(`FROM building_owners bo`).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows([]string{"building_id", "owner_id", "full_name", "percentage"}).
			AddRow("b-1", "o-1", "Jane Roe", 100.0))

	res, err := repo.List(context.Background(), repository.BuildingFilter{OwnerID: "o-1"}, repository.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Len(t, res.Items[0].Owners, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildingPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBuildingPostgres(db)
	now := time.Now()
	b := &model.Building{
		ID: "b-1", Name: "Marina Heights II", Address: "1 Marina Walk", CityID: "c-1", DistrictID: "d-1",
		Floors: 11, UpdatedAt: now,
		Owners: []model.BuildingOwner{{OwnerID: "o-3", Percentage: 100}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE buildings").
		WillReturnRows(sqlmock.NewRows(buildingRowColumns).
			AddRow("b-1", "Marina Heights II", "1 Marina Walk", "c-1", "d-1", 11, nil, now, now))
	mock.ExpectExec("DELETE FROM building_owners WHERE building_id = ?").
		WithArgs("b-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO building_owners").
		WithArgs("b-1", "o-3", 100.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := repo.Update(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "Marina Heights II", out.Name)
	assert.Equal(t, "o-3", out.Owners[0].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
