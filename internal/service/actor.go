package service

import (
	"github.com/google/uuid"

	"shgportal/internal/domain"
)

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   domain.UserRole
	Scope  domain.Jurisdiction
}

// authorize reports ErrOutOfJurisdiction when the district/block lies
// outside the actor's scope.
func (a Actor) authorize(district, block string) error {
	if !a.Scope.Covers(district, block) {
		return domain.ErrOutOfJurisdiction
	}
	return nil
}
