package service

import (
	"context"
	"fmt"

	"shgportal/internal/config"
	"shgportal/internal/domain"
	"shgportal/internal/location"
	"shgportal/internal/port"
)

// SHGView is a resolved SHG with its path.
type SHGView struct {
	Path         location.Path     `json:"path"`
	Members      []location.Member `json:"members"`
	Products     []string          `json:"products"`
	TotalSavings float64           `json:"total_savings"`
}

// LocationService answers stateless lookups on the location tree.
// Unknown names yield empty lists.
type LocationService interface {
	Districts() []string
	Blocks(district string) []string
	GramPanchayats(district, block string) []string
	Villages(district, block, gramPanchayat string) []string
	SHGs(district, block, gramPanchayat, village string) []string
	SHG(p location.Path) (*SHGView, error)
}

type locationService struct {
	tree *location.Tree
}

// NewLocationService creates a new LocationService implementation.
func NewLocationService(tree *location.Tree) LocationService {
	return &locationService{tree: tree}
}

func (s *locationService) Districts() []string { return s.tree.Districts() }

func (s *locationService) Blocks(district string) []string { return s.tree.Blocks(district) }

func (s *locationService) GramPanchayats(district, block string) []string {
	return s.tree.GramPanchayats(district, block)
}

func (s *locationService) Villages(district, block, gramPanchayat string) []string {
	return s.tree.Villages(district, block, gramPanchayat)
}

func (s *locationService) SHGs(district, block, gramPanchayat, village string) []string {
	return s.tree.SHGs(district, block, gramPanchayat, village)
}

func (s *locationService) SHG(p location.Path) (*SHGView, error) {
	shg, ok := s.tree.SHG(p)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &SHGView{Path: p, Members: shg.Members, Products: shg.Products, TotalSavings: shg.TotalSavings}, nil
}

// LoadLocationTree reads the tree from the configured source. repo is only
// consulted for the "postgres" source.
func LoadLocationTree(ctx context.Context, cfg config.LocationConfig, repo port.LocationRepository) (*location.Tree, error) {
	switch cfg.Source {
	case "file":
		return location.LoadSeedFile(cfg.SeedPath)
	case "postgres":
		if repo == nil {
			return nil, fmt.Errorf("location source postgres: no repository")
		}
		return repo.LoadTree(ctx)
	case "embedded", "":
		return location.EmbeddedSeed()
	default:
		return nil, fmt.Errorf("unknown location source %q", cfg.Source)
	}
}
