package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shgportal/internal/domain"
	"shgportal/internal/port"
)

type organizationRepo struct {
	db *sqlx.DB
}

// NewOrganizationRepo creates a new PostgreSQL-backed OrganizationRepository.
func NewOrganizationRepo(db *sqlx.DB) port.OrganizationRepository {
	return &organizationRepo{db: db}
}

func (r *organizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	org.ID = uuid.New()
	now := time.Now().UTC()
	org.CreatedAt = now
	org.UpdatedAt = now

	query := `INSERT INTO organizations (id, name, type, district, block, registration_no,
		contact_name, contact_phone, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		org.ID, org.Name, org.Type, org.District, org.Block, org.RegistrationNo,
		org.ContactName, org.ContactPhone, org.IsActive, org.CreatedBy, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		if isDuplicate(err, "registration_no") {
			return domain.ErrDuplicateRegistration
		}
		return fmt.Errorf("organizationRepo.Create: %w", err)
	}
	return nil
}

func (r *organizationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.GetContext(ctx, &org, "SELECT * FROM organizations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("organizationRepo.GetByID: %w", err)
	}
	return &org, nil
}

// organizationWhere builds the WHERE clause shared by List and CountByType.
func organizationWhere(filter domain.OrganizationFilter) (clause string, args []interface{}) {
	var conds []string
	add := func(col string, val interface{}) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if filter.Type != "" {
		add("type", filter.Type)
	}
	if filter.District != "" {
		add("district", filter.District)
	}
	if filter.Block != "" {
		add("block", filter.Block)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *organizationRepo) List(ctx context.Context, filter domain.OrganizationFilter, offset, limit int) ([]domain.Organization, int, error) {
	where, args := organizationWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM organizations"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("organizationRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM organizations%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	var orgs []domain.Organization
	if err := r.db.SelectContext(ctx, &orgs, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("organizationRepo.List: %w", err)
	}
	return orgs, total, nil
}

func (r *organizationRepo) CountByType(ctx context.Context, scope domain.Jurisdiction) (map[domain.OrganizationType]int, error) {
	where, args := organizationWhere(domain.OrganizationFilter{District: scope.District, Block: scope.Block})

	var rows []struct {
		Type  domain.OrganizationType `db:"type"`
		Count int                     `db:"count"`
	}
	query := "SELECT type, COUNT(*) AS count FROM organizations" + where + " GROUP BY type"
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("organizationRepo.CountByType: %w", err)
	}

	counts := make(map[domain.OrganizationType]int, len(domain.ValidOrganizationTypes))
	for t := range domain.ValidOrganizationTypes {
		counts[t] = 0
	}
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

func (r *organizationRepo) Update(ctx context.Context, org *domain.Organization) error {
	org.UpdatedAt = time.Now().UTC()
	query := `UPDATE organizations SET name = $1, type = $2, district = $3, block = $4,
		registration_no = $5, contact_name = $6, contact_phone = $7, is_active = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		org.Name, org.Type, org.District, org.Block, org.RegistrationNo,
		org.ContactName, org.ContactPhone, org.IsActive, org.UpdatedAt, org.ID)
	if err != nil {
		if isDuplicate(err, "registration_no") {
			return domain.ErrDuplicateRegistration
		}
		return fmt.Errorf("organizationRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

func (r *organizationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM organizations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("organizationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

func isDuplicate(err error, column string) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") && strings.Contains(msg, column)
}
