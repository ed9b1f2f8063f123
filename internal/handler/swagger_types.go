package handler

import (
	"time"

	"github.com/google/uuid"

	"shgportal/internal/domain"
	"shgportal/internal/location"
)

// Swagger type definitions for API documentation. SelectRequest,
// PublishReportRequest and SessionResponse are also bound at runtime.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"dmmu.dhalai@shg.in"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required" example:"bmmu.ambassa@shg.in"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
	FullName string `json:"full_name" binding:"required" example:"Ambassa BMMU"`
	Role     string `json:"role" binding:"required" example:"bmmu" enums:"nic,dmmu,bmmu,clf,vo,shg"`
	District string `json:"district" example:"DHALAI"`
	Block    string `json:"block" example:"Ambassa"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    *string `json:"email" example:"bmmu.salema@shg.in"`
	FullName *string `json:"full_name" example:"Salema BMMU"`
	Role     *string `json:"role" example:"bmmu"`
	District *string `json:"district" example:"DHALAI"`
	Block    *string `json:"block" example:"Salema"`
	IsActive *bool   `json:"is_active" example:"true"`
}

// CreateOrganizationRequest represents the create organization request body.
type CreateOrganizationRequest struct {
	Name           string `json:"name" binding:"required" example:"Maa Durga SHG"`
	Type           string `json:"type" binding:"required" example:"shg" enums:"clf,vo,shg"`
	District       string `json:"district" binding:"required" example:"DHALAI"`
	Block          string `json:"block" example:"Ambassa"`
	RegistrationNo string `json:"registration_no" binding:"required" example:"TR-DHL-SHG-0001"`
	ContactName    string `json:"contact_name" example:"Sunita Devi"`
	ContactPhone   string `json:"contact_phone" example:"9436000000"`
}

// UpdateOrganizationRequest represents the update organization request body.
type UpdateOrganizationRequest struct {
	Name           *string `json:"name" example:"Maa Durga Mahila SHG"`
	Type           *string `json:"type" example:"shg"`
	District       *string `json:"district" example:"DHALAI"`
	Block          *string `json:"block" example:"Ambassa"`
	RegistrationNo *string `json:"registration_no" example:"TR-DHL-SHG-0001"`
	ContactName    *string `json:"contact_name" example:"Kamala Rani"`
	ContactPhone   *string `json:"contact_phone" example:"9436000001"`
	IsActive       *bool   `json:"is_active" example:"true"`
}

// CreateProductRequest represents the create product request body.
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required" example:"Handloom Saree"`
	Category string  `json:"category" example:"Textile"`
	Unit     string  `json:"unit" example:"piece"`
	Price    float64 `json:"price" example:"1200"`
	Stock    int     `json:"stock" example:"15"`
}

// UpdateProductRequest represents the update product request body.
type UpdateProductRequest struct {
	Name     *string  `json:"name" example:"Handloom Saree"`
	Category *string  `json:"category" example:"Textile"`
	Unit     *string  `json:"unit" example:"piece"`
	Price    *float64 `json:"price" example:"1350"`
	Stock    *int     `json:"stock" example:"12"`
}

// SelectRequest names the location to select. An empty name clears the level.
type SelectRequest struct {
	Name string `json:"name" example:"DHALAI"`
}

// PublishReportRequest selects the SHGs to include in a published report.
type PublishReportRequest struct {
	District      string `json:"district" example:"DHALAI"`
	Block         string `json:"block" example:"Ambassa"`
	GramPanchayat string `json:"gram_panchayat" example:""`
	Village       string `json:"village" example:""`
	SHG           string `json:"shg" example:""`
	RecipientName string `json:"recipient_name" example:"Dhalai DMMU"`
}

// Path returns the requested location prefix.
func (r PublishReportRequest) Path() location.Path {
	return location.Path{
		District:      r.District,
		Block:         r.Block,
		GramPanchayat: r.GramPanchayat,
		Village:       r.Village,
		SHG:           r.SHG,
	}
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// LoginResponse represents the login response.
type LoginResponse struct {
	Tokens    TokenResponse `json:"tokens"`
	User      domain.User   `json:"user"`
	HomeRoute string        `json:"home_route" example:"/dmmu"`
}

// SessionResponse describes the authenticated caller.
type SessionResponse struct {
	UserID    uuid.UUID       `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     string          `json:"email" example:"dmmu.dhalai@shg.in"`
	Role      domain.UserRole `json:"role" example:"dmmu"`
	District  string          `json:"district,omitempty" example:"DHALAI"`
	Block     string          `json:"block,omitempty" example:""`
	HomeRoute string          `json:"home_route" example:"/dmmu"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
