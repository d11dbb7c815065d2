// Package store holds the record store: one ordered list of user records.
// Every backend keeps insertion order and updates approval status by record
// identity, so concurrent admin sessions cannot drop or reorder records.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/regportal/backend/internal/domain"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
)

type Store interface {
	// Load returns the full record list in insertion order. An absent list
	// is an empty slice, not an error.
	Load(ctx context.Context) ([]domain.UserRecord, error)
	// Append adds one record to the end of the list.
	Append(ctx context.Context, rec domain.UserRecord) error
	// UpdateApproval patches the approval status of the record with the
	// given id. Returns domain.ErrNotFound when no such record exists.
	UpdateApproval(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus) error
}
