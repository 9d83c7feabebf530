// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.
package repository

import "errors"

var (
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a foreign key rejects a write or delete.
	ErrReferenced = errors.New("record is referenced by other records")
	// ErrInsufficientStock is returned when an adjustment would take quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
