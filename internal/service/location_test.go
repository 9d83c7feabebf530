package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	repoMocks "propdesk/internal/repository/mocks"
	"propdesk/internal/validation"
)

func newLocationFixture() (*locationService, *repoMocks.MockCityRepository, *repoMocks.MockDistrictRepository) {
	cities := new(repoMocks.MockCityRepository)
	districts := new(repoMocks.MockDistrictRepository)
	svc := NewLocationService(cities, districts, nil).(*locationService)
	svc.clock = fixedClock
	return svc, cities, districts
}

func TestLocationService_DistrictsByCity(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade returns the city's districts", func(t *testing.T) {
		svc, cities, districts := newLocationFixture()
		cities.On("FindByID", ctx, cityID).Return(&model.City{ID: cityID}, nil)
		districts.On("List", ctx, repository.DistrictFilter{CityID: cityID}, repository.PageQuery{Limit: 1000}).
			Return(&repository.PageResult[model.District]{
				Items: []model.District{{ID: districtID, CityID: cityID, Name: "Marina"}},
				Total: 1,
			}, nil)

		out, err := svc.DistrictsByCity(ctx, cityID)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("unknown city", func(t *testing.T) {
		svc, cities, districts := newLocationFixture()
		cities.On("FindByID", ctx, cityID).Return(nil, sql.ErrNoRows)

		_, err := svc.DistrictsByCity(ctx, cityID)
		assert.ErrorIs(t, err, ErrNotFound)
		districts.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLocationService_CreateDistrict(t *testing.T) {
	ctx := context.Background()

	t.Run("city must exist", func(t *testing.T) {
		svc, cities, districts := newLocationFixture()
		cities.On("FindByID", ctx, cityID).Return(nil, sql.ErrNoRows)

		_, err := svc.CreateDistrict(ctx, &model.District{CityID: cityID, Name: "Marina"})

		verrs, ok := validation.As(err)
		require.True(t, ok)
		assert.Equal(t, "city does not exist", verrs.Map()["city_id"])
		districts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, cities, districts := newLocationFixture()
		cities.On("FindByID", ctx, cityID).Return(&model.City{ID: cityID}, nil)
		districts.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)

		_, err := svc.CreateDistrict(ctx, &model.District{CityID: cityID, Name: "Marina"})
		assert.ErrorIs(t, err, ErrConflict)
		assert.EqualError(t, err, "conflict: district already exists")
	})
}

func TestLocationService_ListCities(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		page Page
		want repository.PageQuery
	}{
		{"defaults", Page{}, repository.PageQuery{Limit: 10}},
		{"clamps limit", Page{Limit: 500, Offset: 20}, repository.PageQuery{Limit: 100, Offset: 20}},
		{"negative offset", Page{Limit: 5, Offset: -3}, repository.PageQuery{Limit: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cities, _ := newLocationFixture()
			cities.On("List", ctx, repository.CityFilter{Query: "du"}, tt.want).
				Return(&repository.PageResult[model.City]{Items: []model.City{}, Total: 0}, nil)

			res, err := svc.ListCities(ctx, repository.CityFilter{Query: "du"}, tt.page)
			require.NoError(t, err)
			assert.NotNil(t, res.Items)
			cities.AssertExpectations(t)
		})
	}
}

func TestLocationService_DeleteCity(t *testing.T) {
	ctx := context.Background()
	svc, cities, _ := newLocationFixture()
	cities.On("Delete", ctx, cityID).Return(repository.ErrReferenced)

	err := svc.DeleteCity(ctx, cityID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "city is still referenced")
}

func TestLocationService_UpdateDistrict(t *testing.T) {
	ctx := context.Background()
	const otherCity = "0b8a1a52-5d1c-4b7e-9d3e-1f0f7c1a0009"

	t.Run("city change refused while referenced", func(t *testing.T) {
		svc, cities, districts := newLocationFixture()
		districts.On("FindByID", ctx, districtID).Return(&model.District{ID: districtID, CityID: cityID, Name: "Marina"}, nil)
		districts.On("InUse", ctx, districtID).Return(true, nil)

		_, err := svc.UpdateDistrict(ctx, districtID, &model.District{CityID: otherCity, Name: "Marina"})

		assert.ErrorIs(t, err, ErrConflict)
		districts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		cities.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unused district may move", func(t *testing.T) {
		svc, cities, districts := newLocationFixture()
		districts.On("FindByID", ctx, districtID).Return(&model.District{ID: districtID, CityID: cityID, Name: "Marina"}, nil)
		districts.On("InUse", ctx, districtID).Return(false, nil)
		cities.On("FindByID", ctx, otherCity).Return(&model.City{ID: otherCity}, nil)
		districts.On("Update", ctx, mock.MatchedBy(func(d *model.District) bool {
			return d.ID == districtID && d.CityID == otherCity
		})).Return(&model.District{ID: districtID, CityID: otherCity, Name: "Marina"}, nil)

		out, err := svc.UpdateDistrict(ctx, districtID, &model.District{CityID: otherCity, Name: "Marina"})
		require.NoError(t, err)
		assert.Equal(t, otherCity, out.CityID)
	})

	t.Run("rename keeps the city and skips the usage check", func(t *testing.T) {
		svc, _, districts := newLocationFixture()
		districts.On("FindByID", ctx, districtID).Return(&model.District{ID: districtID, CityID: cityID, Name: "Marina"}, nil)
		districts.On("Update", ctx, mock.Anything).Return(&model.District{ID: districtID, CityID: cityID, Name: "Dubai Marina"}, nil)

		_, err := svc.UpdateDistrict(ctx, districtID, &model.District{CityID: cityID, Name: "Dubai Marina"})
		require.NoError(t, err)
		districts.AssertNotCalled(t, "InUse", mock.Anything, mock.Anything)
	})
}
