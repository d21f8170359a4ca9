// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "recordkeeper/pkg/domain-errors"
)

// AccountID identifies the authenticated caller a record belongs to. Services
// treat it as opaque; only trust boundaries (token validation) construct one.
type AccountID uuid.UUID

// ParseAccountID is used at trust boundaries (token claims, CLI input).
func ParseAccountID(s string) (AccountID, error) {
	if s == "" {
		return AccountID{}, dErrors.New(dErrors.CodeInvalidInput, "account ID cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return AccountID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid account ID format")
	}
	if parsed == uuid.Nil {
		return AccountID{}, dErrors.New(dErrors.CodeInvalidInput, "account ID cannot be nil")
	}
	return AccountID(parsed), nil
}

// NewAccountID returns a random account identifier.
func NewAccountID() AccountID { return AccountID(uuid.New()) }

func (id AccountID) String() string { return uuid.UUID(id).String() }

func (id AccountID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
