package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shgportal/internal/location"
	"shgportal/internal/port"
)

type locationRepo struct {
	db *sqlx.DB
}

// NewLocationRepo creates a new PostgreSQL-backed LocationRepository.
func NewLocationRepo(db *sqlx.DB) port.LocationRepository {
	return &locationRepo{db: db}
}

// locationNodeRow is one hierarchy node. Fields below the node's level
// are empty.
type locationNodeRow struct {
	District      string `db:"district"`
	Block         string `db:"block"`
	GramPanchayat string `db:"gram_panchayat"`
	Village       string `db:"village"`
}

type shgRow struct {
	ID            uuid.UUID `db:"id"`
	District      string    `db:"district"`
	Block         string    `db:"block"`
	GramPanchayat string    `db:"gram_panchayat"`
	Village       string    `db:"village"`
	Name          string    `db:"name"`
	TotalSavings  float64   `db:"total_savings"`
}

type shgMemberRow struct {
	SHGID      uuid.UUID `db:"shg_id"`
	MemberCode string    `db:"member_code"`
	Name       string    `db:"name"`
	Age        int       `db:"age"`
	Occupation string    `db:"occupation"`
	Savings    float64   `db:"savings"`
}

type shgProductRow struct {
	SHGID uuid.UUID `db:"shg_id"`
	Name  string    `db:"name"`
}

// treeRows is the flat, table-shaped form of a location tree.
type treeRows struct {
	nodes    []locationNodeRow
	shgs     []shgRow
	members  []shgMemberRow
	products []shgProductRow
}

func (r *locationRepo) LoadTree(ctx context.Context) (*location.Tree, error) {
	var nodes []locationNodeRow
	if err := r.db.SelectContext(ctx, &nodes,
		`SELECT district, block, gram_panchayat, village FROM location_nodes`); err != nil {
		return nil, fmt.Errorf("locationRepo.LoadTree nodes: %w", err)
	}

	var shgs []shgRow
	if err := r.db.SelectContext(ctx, &shgs,
		`SELECT id, district, block, gram_panchayat, village, name, total_savings FROM shgs`); err != nil {
		return nil, fmt.Errorf("locationRepo.LoadTree shgs: %w", err)
	}

	var members []shgMemberRow
	if err := r.db.SelectContext(ctx, &members,
		`SELECT shg_id, member_code, name, age, occupation, savings
		FROM shg_members ORDER BY shg_id, position`); err != nil {
		return nil, fmt.Errorf("locationRepo.LoadTree members: %w", err)
	}

	var products []shgProductRow
	if err := r.db.SelectContext(ctx, &products,
		`SELECT shg_id, name FROM shg_products ORDER BY shg_id, position`); err != nil {
		return nil, fmt.Errorf("locationRepo.LoadTree products: %w", err)
	}

	return assembleTree(treeRows{nodes: nodes, shgs: shgs, members: members, products: products})
}

// assembleTree folds flat rows into the nested tree shape.
func assembleTree(rows treeRows) (*location.Tree, error) {
	byID := make(map[uuid.UUID]*location.SHG, len(rows.shgs))
	for _, s := range rows.shgs {
		byID[s.ID] = &location.SHG{Members: []location.Member{}, Products: []string{}, TotalSavings: s.TotalSavings}
	}
	for _, m := range rows.members {
		if shg, ok := byID[m.SHGID]; ok {
			shg.Members = append(shg.Members, location.Member{
				ID: m.MemberCode, Name: m.Name, Age: m.Age, Occupation: m.Occupation, Savings: m.Savings,
			})
		}
	}
	for _, p := range rows.products {
		if shg, ok := byID[p.SHGID]; ok {
			shg.Products = append(shg.Products, p.Name)
		}
	}

	raw := location.Districts{}
	for _, n := range rows.nodes {
		ensureNode(raw, n)
	}
	for _, s := range rows.shgs {
		village := ensureNode(raw, locationNodeRow{
			District: s.District, Block: s.Block, GramPanchayat: s.GramPanchayat, Village: s.Village,
		})
		if village.SHGs == nil {
			return nil, fmt.Errorf("%w: SHG %q has no village", location.ErrInvalidTree, s.Name)
		}
		village.SHGs[s.Name] = *byID[s.ID]
	}
	return location.NewTree(raw)
}

// ensureNode creates n and its ancestors in raw, stopping at the first
// empty level. It returns the village when n names one.
func ensureNode(raw location.Districts, n locationNodeRow) location.Village {
	district, ok := raw[n.District]
	if !ok {
		district = location.District{}
		raw[n.District] = district
	}
	if n.Block == "" {
		return location.Village{}
	}
	block, ok := district[n.Block]
	if !ok {
		block = location.Block{}
		district[n.Block] = block
	}
	if n.GramPanchayat == "" {
		return location.Village{}
	}
	gp, ok := block[n.GramPanchayat]
	if !ok {
		gp = location.GramPanchayat{}
		block[n.GramPanchayat] = gp
	}
	if n.Village == "" {
		return location.Village{}
	}
	village, ok := gp[n.Village]
	if !ok {
		village = location.Village{SHGs: map[string]location.SHG{}}
		gp[n.Village] = village
	}
	return village
}

// flattenTree turns t into rows, one node row per hierarchy level and fresh
// ids for every SHG.
func flattenTree(t *location.Tree) treeRows {
	var rows treeRows
	t.WalkLevels(func(p location.Path) {
		rows.nodes = append(rows.nodes, locationNodeRow{
			District: p.District, Block: p.Block, GramPanchayat: p.GramPanchayat, Village: p.Village,
		})
	})
	t.Walk(location.Path{}, func(p location.Path, shg location.SHG) {
		id := uuid.New()
		rows.shgs = append(rows.shgs, shgRow{
			ID: id, District: p.District, Block: p.Block, GramPanchayat: p.GramPanchayat,
			Village: p.Village, Name: p.SHG, TotalSavings: shg.TotalSavings,
		})
		for _, m := range shg.Members {
			rows.members = append(rows.members, shgMemberRow{
				SHGID: id, MemberCode: m.ID, Name: m.Name, Age: m.Age, Occupation: m.Occupation, Savings: m.Savings,
			})
		}
		for _, name := range shg.Products {
			rows.products = append(rows.products, shgProductRow{SHGID: id, Name: name})
		}
	})
	return rows
}

func (r *locationRepo) ReplaceTree(ctx context.Context, t *location.Tree) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("locationRepo.ReplaceTree begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM location_nodes"); err != nil {
		return fmt.Errorf("locationRepo.ReplaceTree clear nodes: %w", err)
	}
	// shg_members and shg_products cascade on delete.
	if _, err = tx.ExecContext(ctx, "DELETE FROM shgs"); err != nil {
		return fmt.Errorf("locationRepo.ReplaceTree clear: %w", err)
	}

	if err = insertRows(ctx, tx, flattenTree(t)); err != nil {
		return fmt.Errorf("locationRepo.ReplaceTree insert: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("locationRepo.ReplaceTree commit: %w", err)
	}
	return nil
}

func insertRows(ctx context.Context, tx *sqlx.Tx, rows treeRows) error {
	for _, n := range rows.nodes {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO location_nodes (district, block, gram_panchayat, village)
			VALUES (:district, :block, :gram_panchayat, :village)`, n); err != nil {
			return err
		}
	}
	for _, s := range rows.shgs {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO shgs (id, district, block, gram_panchayat, village, name, total_savings)
			VALUES (:id, :district, :block, :gram_panchayat, :village, :name, :total_savings)`, s); err != nil {
			return err
		}
	}

	// position preserves member and product order within each SHG.
	position := make(map[uuid.UUID]int, len(rows.shgs))
	for _, m := range rows.members {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shg_members (shg_id, member_code, name, age, occupation, savings, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.SHGID, m.MemberCode, m.Name, m.Age, m.Occupation, m.Savings, position[m.SHGID]); err != nil {
			return err
		}
		position[m.SHGID]++
	}
	clear(position)
	for _, p := range rows.products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shg_products (shg_id, name, position) VALUES ($1, $2, $3)`,
			p.SHGID, p.Name, position[p.SHGID]); err != nil {
			return err
		}
		position[p.SHGID]++
	}
	return nil
}
