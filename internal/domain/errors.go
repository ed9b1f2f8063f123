package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserInactive          = errors.New("user is inactive")
	ErrDuplicateEmail        = errors.New("email already exists")
	ErrInvalidRole           = errors.New("invalid user role")
	ErrInvalidJurisdiction   = errors.New("role requires a district or block")
	ErrOutOfJurisdiction     = errors.New("outside the user's jurisdiction")
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrInvalidOrgType        = errors.New("invalid organization type")
	ErrDuplicateRegistration = errors.New("registration number already exists")
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidProduct        = errors.New("product price and stock must not be negative")
	ErrSelectionOrder        = errors.New("parent location must be selected first")
	ErrUnsupportedFormat     = errors.New("unsupported report format")
	ErrUploadFailed          = errors.New("report upload to storage failed")
)
