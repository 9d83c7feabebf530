package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/internal/model"
)

const (
	cityID     = "6f1c1f0e-8d7a-4c52-9b0a-3d1c2a4b5e61"
	districtID = "0b9d2c3e-1f4a-4e6b-8c7d-9e0f1a2b3c4d"
	ownerA     = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
	ownerB     = "b1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

func validBuilding() model.Building {
	return model.Building{
		Name:       "Marina Heights",
		Address:    "1 Marina Walk",
		CityID:     cityID,
		DistrictID: districtID,
		Floors:     12,
		Owners: []model.BuildingOwner{
			{OwnerID: ownerA, Percentage: 60},
			{OwnerID: ownerB, Percentage: 40},
		},
	}
}

func TestStruct_Valid(t *testing.T) {
	b := validBuilding()
	assert.Empty(t, Struct(&b))
}

func TestStruct_FieldPaths(t *testing.T) {
	b := validBuilding()
	b.Name = ""
	b.Floors = 0
	b.Owners[1].Percentage = 140

	errs := Struct(&b)
	require.Len(t, errs, 3)

	m := errs.Map()
	assert.Equal(t, "is required", m["name"])
	assert.Equal(t, "must be at least 1", m["floors"])
	assert.Equal(t, "must be 100 or less", m["owners[1].percentage"])
	assert.True(t, errs.Has("owners[1].percentage"))
}

func TestStruct_EmailAndPhone(t *testing.T) {
	o := model.Owner{FullName: "Jane Roe", Email: "not-an-email", Phone: "0501234567"}
	errs := Struct(&o)

	m := errs.Map()
	assert.Equal(t, "must be a valid email address", m["email"])
	assert.Contains(t, m["phone"], "international format")

	codes := map[string]string{}
	for _, fe := range errs {
		codes[fe.Field] = fe.Code
	}
	assert.Equal(t, "validation_email", codes["email"])
	assert.Equal(t, "validation_e164", codes["phone"])
}

func TestStruct_RequiredDate(t *testing.T) {
	l := model.Lease{
		UnitID:      ownerA,
		TenantName:  "Sam",
		TenantEmail: "sam@example.com",
		EndDate:     model.NewDate(2025, 1, 1),
	}
	errs := Struct(&l)
	assert.True(t, errs.Has("start_date"))
	assert.False(t, errs.Has("end_date"))
}

func TestStruct_Settings(t *testing.T) {
	s := model.DefaultSettings()
	assert.Empty(t, Struct(&s))

	s.Currency = "DOLLARS"
	s.Timezone = "Mars/Olympus"
	s.DateFormat = "weird"
	errs := Struct(&s)
	assert.True(t, errs.Has("currency"))
	assert.True(t, errs.Has("timezone"))
	assert.True(t, errs.Has("date_format"))
}

func TestOwnershipTotal(t *testing.T) {
	tests := []struct {
		name     string
		owners   []model.BuildingOwner
		wantCode string
	}{
		{
			name:   "exactly one hundred",
			owners: []model.BuildingOwner{{OwnerID: ownerA, Percentage: 33.33}, {OwnerID: ownerB, Percentage: 66.67}},
		},
		{
			name:     "under one hundred blocks save",
			owners:   []model.BuildingOwner{{OwnerID: ownerA, Percentage: 50}, {OwnerID: ownerB, Percentage: 30}},
			wantCode: "ownership_total",
		},
		{
			name:     "over one hundred",
			owners:   []model.BuildingOwner{{OwnerID: ownerA, Percentage: 70}, {OwnerID: ownerB, Percentage: 40}},
			wantCode: "ownership_total",
		},
		{
			name:     "no owners",
			owners:   nil,
			wantCode: "ownership_required",
		},
		{
			name:     "duplicate owner",
			owners:   []model.BuildingOwner{{OwnerID: ownerA, Percentage: 50}, {OwnerID: ownerA, Percentage: 50}},
			wantCode: "ownership_duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := OwnershipTotal("owners", tt.owners)
			if tt.wantCode == "" {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantCode, errs[0].Code)
		})
	}
}

func TestOwnershipTotal_Message(t *testing.T) {
	errs := OwnershipTotal("owners", []model.BuildingOwner{{OwnerID: ownerA, Percentage: 80}})
	require.Len(t, errs, 1)
	assert.Equal(t, "owners", errs[0].Field)
	assert.Equal(t, "ownership percentages must total 100%, got 80%", errs[0].Message)
}

func TestDateOrder(t *testing.T) {
	start := model.NewDate(2024, 1, 1)

	assert.Empty(t, DateOrder("end_date", start, start.AddDays(30)))
	assert.Empty(t, DateOrder("end_date", model.Date{}, start))

	errs := DateOrder("end_date", start, start)
	require.Len(t, errs, 1)
	assert.Equal(t, "date_order", errs[0].Code)

	errs = DateOrder("end_date", start, start.AddDays(-1))
	assert.True(t, errs.Has("end_date"))
}

func TestErrors_Err(t *testing.T) {
	var errs Errors
	assert.NoError(t, errs.Err())

	errs.Add("name", "validation_required", "is required")
	err := fmt.Errorf("create owner: %w", errs.Err())
	assert.EqualError(t, err, "create owner: validation failed: name: is required")

	got, ok := As(err)
	require.True(t, ok)
	assert.Len(t, got, 1)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	email := "  Jane.Roe@Example.COM "
	NormalizeEmail(&email)
	assert.Equal(t, "jane.roe@example.com", email)

	a, b := "  x ", "y  "
	TrimSpace(&a, &b)
	assert.Equal(t, "x", a)
	assert.Equal(t, "y", b)
}
