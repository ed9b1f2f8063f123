package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a portal account. District and Block scope what the user
// manages: empty for NIC, district for DMMU, district and block for BMMU.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	District     string    `db:"district" json:"district"`
	Block        string    `db:"block" json:"block"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Jurisdiction returns the user's management scope.
func (u *User) Jurisdiction() Jurisdiction {
	return Jurisdiction{District: u.District, Block: u.Block}
}

// Jurisdiction is a district/block scope. Empty fields are unrestricted.
type Jurisdiction struct {
	District string `json:"district"`
	Block    string `json:"block"`
}

// Covers reports whether the given district and block fall inside j.
func (j Jurisdiction) Covers(district, block string) bool {
	if j.District != "" && j.District != district {
		return false
	}
	if j.Block != "" && j.Block != block {
		return false
	}
	return true
}

// Organization is a community institution (CLF, VO or SHG) registered in the portal.
type Organization struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	Name           string           `db:"name" json:"name"`
	Type           OrganizationType `db:"type" json:"type"`
	District       string           `db:"district" json:"district"`
	Block          string           `db:"block" json:"block"`
	RegistrationNo string           `db:"registration_no" json:"registration_no"`
	ContactName    string           `db:"contact_name" json:"contact_name"`
	ContactPhone   string           `db:"contact_phone" json:"contact_phone"`
	IsActive       bool             `db:"is_active" json:"is_active"`
	CreatedBy      uuid.UUID        `db:"created_by" json:"created_by"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updated_at"`
}

// OrganizationFilter narrows organization listings. Empty fields match all.
type OrganizationFilter struct {
	Type     OrganizationType
	District string
	Block    string
}

// Product is an item produced and sold by an organization.
type Product struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OrganizationID uuid.UUID `db:"organization_id" json:"organization_id"`
	Name           string    `db:"name" json:"name"`
	Category       string    `db:"category" json:"category"`
	Unit           string    `db:"unit" json:"unit"`
	Price          float64   `db:"price" json:"price"`
	Stock          int       `db:"stock" json:"stock"`
	CreatedBy      uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// DashboardStats holds the aggregate cards shown on a role dashboard.
type DashboardStats struct {
	Role           UserRole                 `json:"role"`
	Scope          Jurisdiction             `json:"scope"`
	Districts      int                      `json:"districts"`
	Blocks         int                      `json:"blocks"`
	GramPanchayats int                      `json:"gram_panchayats"`
	Villages       int                      `json:"villages"`
	SHGs           int                      `json:"shgs"`
	Members        int                      `json:"members"`
	TotalSavings   float64                  `json:"total_savings"`
	Products       int                      `json:"products"`
	Organizations  map[OrganizationType]int `json:"organizations"`
	Breakdown      []AreaSummary            `json:"breakdown"`
}

// AreaSummary aggregates the SHGs under one named area.
type AreaSummary struct {
	Name         string  `json:"name"`
	SHGs         int     `json:"shgs"`
	Members      int     `json:"members"`
	TotalSavings float64 `json:"total_savings"`
}

// MemberReportRow is one line of the SHG member report.
type MemberReportRow struct {
	District      string
	Block         string
	GramPanchayat string
	Village       string
	SHG           string
	MemberID      string
	Name          string
	Age           int
	Occupation    string
	Savings       float64
}

// ProductReportRow is one line of the SHG product listing.
type ProductReportRow struct {
	District      string
	Block         string
	GramPanchayat string
	Village       string
	SHG           string
	Product       string
}
