package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/internal/repository"
)

var stockRowColumns = []string{"id", "name", "sku", "category", "quantity", "unit_cost", "reorder_level", "location", "created_at", "updated_at"}

func TestStockPostgres_AdjustQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStockPostgres(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("applies delta and derives low stock", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE stock_items SET quantity = quantity \+ \$2`).
			WithArgs("s-1", -3).
			WillReturnRows(sqlmock.NewRows(stockRowColumns).
				AddRow("s-1", "Mop heads", "MOP-01", "cleaning", 2, 4.5, 5, "Store A", now, now))

		item, err := repo.AdjustQuantity(ctx, "s-1", -3)
		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
		assert.True(t, item.LowStock)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE stock_items SET quantity`).
			WithArgs("s-1", -50).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`SELECT (.+) FROM stock_items WHERE id = \$1`).
			WithArgs("s-1").
			WillReturnRows(sqlmock.NewRows(stockRowColumns).
				AddRow("s-1", "Mop heads", "MOP-01", "cleaning", 2, 4.5, 5, "Store A", now, now))

		item, err := repo.AdjustQuantity(ctx, "s-1", -50)
		assert.ErrorIs(t, err, repository.ErrInsufficientStock)
		assert.Nil(t, item)
	})

	t.Run("missing item", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE stock_items SET quantity`).
			WithArgs("nope", 1).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`SELECT (.+) FROM stock_items WHERE id = \$1`).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.AdjustQuantity(ctx, "nope", 1)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockPostgres_ListLowStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStockPostgres(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stock_items WHERE quantity <= reorder_level`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT (.+) FROM stock_items WHERE quantity <= reorder_level ORDER BY name`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(stockRowColumns))

	res, err := repo.List(context.Background(), repository.StockFilter{LowStock: true}, repository.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.NotNil(t, res.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
