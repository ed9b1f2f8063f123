package service

import (
	"context"
	"fmt"

	"shgportal/internal/domain"
	"shgportal/internal/location"
	"shgportal/internal/port"
)

// DashboardService computes the aggregate cards of a role dashboard.
type DashboardService interface {
	Stats(ctx context.Context, actor Actor) (*domain.DashboardStats, error)
	// Breakdown returns one summary per child area of scope: districts when
	// scope is empty, blocks for a district, gram panchayats for a block.
	Breakdown(scope domain.Jurisdiction) []domain.AreaSummary
}

type dashboardService struct {
	tree    *location.Tree
	orgRepo port.OrganizationRepository
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(tree *location.Tree, orgRepo port.OrganizationRepository) DashboardService {
	return &dashboardService{tree: tree, orgRepo: orgRepo}
}

func (s *dashboardService) Stats(ctx context.Context, actor Actor) (*domain.DashboardStats, error) {
	scope := actor.Scope
	stats := &domain.DashboardStats{
		Role:      actor.Role,
		Scope:     scope,
		Breakdown: s.Breakdown(scope),
	}

	districts := map[string]struct{}{}
	blocks := map[[2]string]struct{}{}
	gps := map[[3]string]struct{}{}
	villages := map[[4]string]struct{}{}
	products := map[string]struct{}{}

	s.tree.Walk(location.Path{District: scope.District, Block: scope.Block}, func(p location.Path, shg location.SHG) {
		districts[p.District] = struct{}{}
		blocks[[2]string{p.District, p.Block}] = struct{}{}
		gps[[3]string{p.District, p.Block, p.GramPanchayat}] = struct{}{}
		villages[[4]string{p.District, p.Block, p.GramPanchayat, p.Village}] = struct{}{}
		for _, name := range shg.Products {
			products[name] = struct{}{}
		}
		stats.SHGs++
		stats.Members += len(shg.Members)
		stats.TotalSavings += shg.TotalSavings
	})

	stats.Districts = len(districts)
	stats.Blocks = len(blocks)
	stats.GramPanchayats = len(gps)
	stats.Villages = len(villages)
	stats.Products = len(products)

	counts, err := s.orgRepo.CountByType(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Stats: %w", err)
	}
	stats.Organizations = counts

	return stats, nil
}

func (s *dashboardService) Breakdown(scope domain.Jurisdiction) []domain.AreaSummary {
	var names []string
	var child func(p location.Path) string
	switch {
	case scope.District == "":
		names = s.tree.Districts()
		child = func(p location.Path) string { return p.District }
	case scope.Block == "":
		names = s.tree.Blocks(scope.District)
		child = func(p location.Path) string { return p.Block }
	default:
		names = s.tree.GramPanchayats(scope.District, scope.Block)
		child = func(p location.Path) string { return p.GramPanchayat }
	}

	idx := make(map[string]int, len(names))
	out := make([]domain.AreaSummary, len(names))
	for i, name := range names {
		idx[name] = i
		out[i].Name = name
	}

	s.tree.Walk(location.Path{District: scope.District, Block: scope.Block}, func(p location.Path, shg location.SHG) {
		a := &out[idx[child(p)]]
		a.SHGs++
		a.Members += len(shg.Members)
		a.TotalSavings += shg.TotalSavings
	})
	return out
}
