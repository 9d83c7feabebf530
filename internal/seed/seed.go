// Package seed loads reference data (cities and their districts) from YAML.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/validation"
)

// File is the seed document:
//
//	cities:
//	  - name: Dubai
//	    country: AE
//	    districts: [Marina, Deira]
type File struct {
	Cities []City `yaml:"cities"`
}

// City is one city entry with the names of its districts.
type City struct {
	Name      string   `yaml:"name"`
	Country   string   `yaml:"country"`
	Districts []string `yaml:"districts"`
}

// Report counts what Apply created and what already existed.
type Report struct {
	CitiesCreated     int
	CitiesExisting    int
	DistrictsCreated  int
	DistrictsExisting int
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document and rejects blank names.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	for i, c := range f.Cities {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("cities[%d]: name is required", i)
		}
		for j, d := range c.Districts {
			if strings.TrimSpace(d) == "" {
				return nil, fmt.Errorf("cities[%d].districts[%d]: name is required", i, j)
			}
		}
	}
	return &f, nil
}

// Apply creates the cities and districts of f that do not exist yet, matched by name.
// Running it twice is a no-op.
func Apply(ctx context.Context, f *File, cities repository.CityRepository, districts repository.DistrictRepository) (Report, error) {
	var rep Report
	for _, sc := range f.Cities {
		city, created, err := ensureCity(ctx, cities, sc)
		if err != nil {
			return rep, err
		}
		if created {
			rep.CitiesCreated++
		} else {
			rep.CitiesExisting++
		}

		for _, name := range sc.Districts {
			created, err := ensureDistrict(ctx, districts, city.ID, strings.TrimSpace(name))
			if err != nil {
				return rep, fmt.Errorf("city %q: %w", city.Name, err)
			}
			if created {
				rep.DistrictsCreated++
			} else {
				rep.DistrictsExisting++
			}
		}
	}
	return rep, nil
}

func ensureCity(ctx context.Context, repo repository.CityRepository, sc City) (*model.City, bool, error) {
	name := strings.TrimSpace(sc.Name)
	existing, err := repo.FindByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("find city %q: %w", name, err)
	}

	c := &model.City{
		ID:        uuid.NewString(),
		Name:      name,
		Country:   strings.TrimSpace(sc.Country),
		CreatedAt: time.Now().UTC(),
	}
	if err := validation.Struct(c).Err(); err != nil {
		return nil, false, fmt.Errorf("city %q: %w", name, err)
	}
	out, err := repo.Create(ctx, c)
	if err != nil {
		return nil, false, fmt.Errorf("create city %q: %w", name, err)
	}
	return out, true, nil
}

func ensureDistrict(ctx context.Context, repo repository.DistrictRepository, cityID, name string) (bool, error) {
	_, err := repo.FindByName(ctx, cityID, name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("find district %q: %w", name, err)
	}

	d := &model.District{
		ID:        uuid.NewString(),
		CityID:    cityID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := validation.Struct(d).Err(); err != nil {
		return false, fmt.Errorf("district %q: %w", name, err)
	}
	if _, err := repo.Create(ctx, d); err != nil {
		return false, fmt.Errorf("create district %q: %w", name, err)
	}
	return true, nil
}
