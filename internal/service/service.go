// Package service holds the use cases behind the HTTP API: validation,
// cross-entity checks, cascades and event publishing.
package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"propdesk/internal/model"
	"propdesk/internal/repository"
)

var (
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReaderNil         = errors.New("reader is nil")
	ErrStorageDisabled   = errors.New("attachments are disabled: object storage is not configured")
	ErrInsufficientStock = errors.New("insufficient stock")
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ListResult is a page of items plus the total matching count.
type ListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

// Page is the limit/offset pair accepted by every List call.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) query() repository.PageQuery {
	limit, offset := p.Limit, p.Offset
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

func listResult[T any](res *repository.PageResult[T]) *ListResult[T] {
	return &ListResult[T]{Items: res.Items, Total: res.Total}
}

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// findErr maps a missing row to ErrNotFound.
func findErr(entity string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity)
	}
	return err
}

// saveErr maps constraint violations raised by Create/Update.
func saveErr(entity string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return notFound(entity)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %s already exists", ErrConflict, entity)
	case errors.Is(err, repository.ErrReferenced):
		return fmt.Errorf("%w: %s references a record that no longer exists", ErrConflict, entity)
	}
	return err
}

// deleteErr maps a foreign-key violation on delete to ErrConflict.
func deleteErr(entity string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return notFound(entity)
	case errors.Is(err, repository.ErrReferenced):
		return fmt.Errorf("%w: %s is still referenced by other records", ErrConflict, entity)
	}
	return err
}

// clock is overridden in tests.
type clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

func (c clock) now() time.Time {
	if c == nil {
		return systemClock()
	}
	return c()
}

func (c clock) today(loc *time.Location) model.Date {
	if loc == nil {
		loc = time.UTC
	}
	return model.DateOf(c.now().In(loc))
}
