package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"propdesk/internal/repository"
)

func TestWhere(t *testing.T) {
	var w where
	assert.Equal(t, "", w.String())

	w.add("city_id = ?", "c1")
	w.like("mar", "name", "address")
	w.addRaw("quantity <= reorder_level")

	assert.Equal(t, ` WHERE city_id = $1 AND (name ILIKE $2 ESCAPE '\' OR address ILIKE $2 ESCAPE '\') AND quantity <= reorder_level`, w.String())
	assert.Equal(t, []any{"c1", "%mar%"}, w.args)

	limit, args := w.page(repository.PageQuery{Limit: 10, Offset: 20})
	assert.Equal(t, " LIMIT $3 OFFSET $4", limit)
	assert.Equal(t, []any{"c1", "%mar%", 10, 20}, args)
	assert.Len(t, w.args, 2, "page must not mutate the filter args")
}

func TestWhere_LikeEscapesWildcards(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mar", "%mar%"},
		{"100%", `%100\%%`},
		{"unit_1", `%unit\_1%`},
		{`a\b`, `%a\\b%`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var w where
			w.like(tt.in, "name")
			assert.Equal(t, []any{tt.want}, w.args)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(1, 3))
	assert.Equal(t, "$4", placeholders(4, 1))
}

func TestMapError(t *testing.T) {
	dup := mapError(&pgconn.PgError{Code: "23505", ConstraintName: "stock_items_sku_key"})
	assert.ErrorIs(t, dup, repository.ErrDuplicate)
	assert.Contains(t, dup.Error(), "stock_items_sku_key")

	ref := mapError(&pgconn.PgError{Code: "23503"})
	assert.ErrorIs(t, ref, repository.ErrReferenced)

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
}
