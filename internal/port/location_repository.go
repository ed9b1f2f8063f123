package port

import (
	"context"

	"shgportal/internal/location"
)

// LocationRepository loads and stores the location/SHG tree.
type LocationRepository interface {
	LoadTree(ctx context.Context) (*location.Tree, error)
	// ReplaceTree overwrites the stored tree with every SHG of t.
	ReplaceTree(ctx context.Context, t *location.Tree) error
}
