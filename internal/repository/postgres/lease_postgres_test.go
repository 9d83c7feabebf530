package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/internal/model"
)

func TestLeasePostgres_HasOverlap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeasePostgres(db)
	start := model.NewDate(2024, 1, 1)
	end := model.NewDate(2024, 12, 31)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("u-1", start, end, "").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	overlap, err := repo.HasOverlap(context.Background(), "u-1", start, end, "")
	require.NoError(t, err)
	assert.True(t, overlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeasePostgres_FindCurrentByTenant(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeasePostgres(db)

	mock.ExpectQuery(`FROM leases l JOIN units u ON u.id = l.unit_id LEFT JOIN buildings b`).
		WithArgs("%sam%", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_name", "tenant_email", "unit_id", "unit_number", "building_id", "building_name", "monthly_rent"}).
			AddRow("l-1", "Sam Tenant", "sam@example.com", "u-1", "101", "b-1", "Marina Heights", 5000.0).
			AddRow("l-2", "Samira Villa", "samira@example.com", "u-9", "V-9", "", "", 12000.0))

	out, err := repo.FindCurrentByTenant(context.Background(), "sam", 5)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Marina Heights", out[0].BuildingName)
	assert.Equal(t, "", out[1].BuildingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeasePostgres_ExpireEnded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeasePostgres(db)
	today := model.NewDate(2024, 6, 1)

	mock.ExpectExec(`UPDATE leases SET status = 'expired'`).
		WithArgs(today).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ExpireEnded(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeasePostgres_FindCurrentByTenant_EscapesWildcards(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLeasePostgres(db)

	mock.ExpectQuery(`l.tenant_name ILIKE \$1 ESCAPE '\\' OR l.tenant_email ILIKE \$1 ESCAPE '\\'`).
		WithArgs(`%o\_brien%`, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_name", "tenant_email", "unit_id", "unit_number", "building_id", "building_name", "monthly_rent"}))

	out, err := repo.FindCurrentByTenant(context.Background(), "o_brien", 5)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
