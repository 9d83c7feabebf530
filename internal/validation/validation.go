// Package validation turns struct tags and cross-field rules into a
// field -> message error map suitable for form rendering.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"propdesk/internal/model"
)

// FieldError is a single failed rule on a single field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors collects field failures. A nil or empty Errors means valid.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a failure.
func (e *Errors) Add(field, code, message string) {
	*e = append(*e, FieldError{Field: field, Code: code, Message: message})
}

// Merge appends every failure of o.
func (e *Errors) Merge(o Errors) {
	*e = append(*e, o...)
}

// Has reports whether field has at least one failure.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Map returns the first message per field.
func (e Errors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := m[fe.Field]; !ok {
			m[fe.Field] = fe.Message
		}
	}
	return m
}

// Err returns nil when there are no failures so callers can `return errs.Err()`.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// As extracts Errors from err.
func As(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates v against its `validate` tags.
func Struct(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "", Code: "validation_invalid", Message: err.Error()}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Code:    "validation_" + fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name: "Building.owners[0].percentage" -> "owners[0].percentage".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "e164":
		return "must be a phone number in international format, e.g. +971501234567"
	case "uuid":
		return "must be a valid id"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "iso4217":
		return "must be an ISO 4217 currency code"
	case "bcp47_language_tag":
		return "must be a language tag such as en-US"
	case "timezone":
		return "must be an IANA time zone such as Asia/Dubai"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// ownershipTolerance absorbs float rounding from UI percentage inputs.
const ownershipTolerance = 0.01

// OwnershipTotal checks that each owner appears once and that the
// percentages add up to exactly 100.
func OwnershipTotal(field string, owners []model.BuildingOwner) Errors {
	var errs Errors
	if len(owners) == 0 {
		errs.Add(field, "ownership_required", "at least one owner is required")
		return errs
	}

	seen := make(map[string]int, len(owners))
	total := 0.0
	for i, o := range owners {
		if prev, ok := seen[o.OwnerID]; ok && o.OwnerID != "" {
			errs.Add(fmt.Sprintf("%s[%d].owner_id", field, i), "ownership_duplicate",
				fmt.Sprintf("owner already listed at position %d", prev+1))
		} else {
			seen[o.OwnerID] = i
		}
		total += o.Percentage
	}

	if math.Abs(total-100) > ownershipTolerance {
		errs.Add(field, "ownership_total",
			fmt.Sprintf("ownership percentages must total 100%%, got %s%%", trimFloat(total)))
	}
	return errs
}

// DateOrder requires end to fall strictly after start. Zero values are
// skipped because the required rule reports them.
func DateOrder(endField string, start, end model.Date) Errors {
	var errs Errors
	if start.IsZero() || end.IsZero() {
		return errs
	}
	if !end.After(start) {
		errs.Add(endField, "date_order", "must be after the start date")
	}
	return errs
}

// TrimSpace trims every given string in place.
func TrimSpace(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// NormalizeEmail trims and lower-cases an address in place.
func NormalizeEmail(email *string) {
	*email = strings.ToLower(strings.TrimSpace(*email))
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
