package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"propdesk/internal/repository"
	"propdesk/internal/validation"
)

// checkLocation requires cityID to exist and districtID, when set, to belong to it.
// Reference failures are added to errs; only infrastructure errors are returned.
func checkLocation(ctx context.Context, cities repository.CityRepository, districts repository.DistrictRepository,
	cityID, districtID string, errs *validation.Errors) error {
	if cityID != "" {
		if _, err := cities.FindByID(ctx, cityID); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			errs.Add("city_id", "not_found", "city does not exist")
			return nil
		}
	}
	if districtID == "" {
		return nil
	}
	d, err := districts.FindByID(ctx, districtID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		errs.Add("district_id", "not_found", "district does not exist")
		return nil
	}
	if cityID != "" && d.CityID != cityID {
		errs.Add("district_id", "district_mismatch", "district does not belong to the selected city")
	}
	return nil
}

// checkExists adds a not_found field error when find reports sql.ErrNoRows.
func checkExists(err error, field, message string, errs *validation.Errors) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		errs.Add(field, "not_found", message)
		return nil
	}
	return err
}

// checkNoAttachments refuses to drop a record that still owns files, since
// attachments reference their entity without a foreign key.
func checkNoAttachments(ctx context.Context, attachments repository.AttachmentRepository, entityType, id string) error {
	n, err := attachments.CountByEntity(ctx, entityType, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %s has %d attachment(s), delete them first",
			ErrConflict, strings.ReplaceAll(entityType, "_", " "), n)
	}
	return nil
}
