package location

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidTree is returned when seed data violates the tree constraints.
var ErrInvalidTree = errors.New("invalid location tree")

// Member is a single member of a self-help group.
type Member struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Age        int     `json:"age" yaml:"age"`
	Occupation string  `json:"occupation" yaml:"occupation"`
	Savings    float64 `json:"savings" yaml:"savings"`
}

// SHG holds the members, products and savings of one self-help group.
type SHG struct {
	Members      []Member `json:"members" yaml:"members"`
	Products     []string `json:"products" yaml:"products"`
	TotalSavings float64  `json:"total_savings" yaml:"total_savings"`
}

// Village maps SHG names to their data.
type Village struct {
	SHGs map[string]SHG `json:"shgs" yaml:"shgs"`
}

// GramPanchayat maps village names to villages.
type GramPanchayat map[string]Village

// Block maps gram panchayat names to gram panchayats.
type Block map[string]GramPanchayat

// District maps block names to blocks.
type District map[string]Block

// Districts is the raw nested seed shape: district name to blocks.
type Districts map[string]District

// Path addresses a node in the tree. Trailing fields may be empty.
type Path struct {
	District      string `json:"district"`
	Block         string `json:"block"`
	GramPanchayat string `json:"gram_panchayat"`
	Village       string `json:"village"`
	SHG           string `json:"shg"`
}

// Tree is an immutable district → block → gram panchayat → village → SHG
// hierarchy. All lookups degrade to empty results when a path does not
// resolve.
type Tree struct {
	districts Districts
}

// NewTree validates the raw districts and returns an immutable Tree built
// from a deep copy of them.
func NewTree(raw Districts) (*Tree, error) {
	districts := make(Districts, len(raw))
	for dName, district := range raw {
		if strings.TrimSpace(dName) == "" {
			return nil, fmt.Errorf("%w: blank district name", ErrInvalidTree)
		}
		blocks := make(District, len(district))
		for bName, block := range district {
			if strings.TrimSpace(bName) == "" {
				return nil, fmt.Errorf("%w: district %q: blank block name", ErrInvalidTree, dName)
			}
			gps := make(Block, len(block))
			for gpName, gp := range block {
				if strings.TrimSpace(gpName) == "" {
					return nil, fmt.Errorf("%w: block %q: blank gram panchayat name", ErrInvalidTree, bName)
				}
				villages := make(GramPanchayat, len(gp))
				for vName, village := range gp {
					if strings.TrimSpace(vName) == "" {
						return nil, fmt.Errorf("%w: gram panchayat %q: blank village name", ErrInvalidTree, gpName)
					}
					shgs := make(map[string]SHG, len(village.SHGs))
					for sName, shg := range village.SHGs {
						p := Path{District: dName, Block: bName, GramPanchayat: gpName, Village: vName, SHG: sName}
						checked, err := validateSHG(p, shg)
						if err != nil {
							return nil, err
						}
						shgs[sName] = checked
					}
					villages[vName] = Village{SHGs: shgs}
				}
				gps[gpName] = villages
			}
			blocks[bName] = gps
		}
		districts[dName] = blocks
	}
	return &Tree{districts: districts}, nil
}

func validateSHG(p Path, shg SHG) (SHG, error) {
	if strings.TrimSpace(p.SHG) == "" {
		return SHG{}, fmt.Errorf("%w: village %q: blank SHG name", ErrInvalidTree, p.Village)
	}
	if shg.TotalSavings < 0 {
		return SHG{}, fmt.Errorf("%w: SHG %q: negative total savings", ErrInvalidTree, p.SHG)
	}

	seen := make(map[string]bool, len(shg.Members))
	var sum float64
	for _, m := range shg.Members {
		if strings.TrimSpace(m.ID) == "" {
			return SHG{}, fmt.Errorf("%w: SHG %q: member %q has no id", ErrInvalidTree, p.SHG, m.Name)
		}
		if seen[m.ID] {
			return SHG{}, fmt.Errorf("%w: SHG %q: duplicate member id %q", ErrInvalidTree, p.SHG, m.ID)
		}
		seen[m.ID] = true
		if m.Age < 0 || m.Savings < 0 {
			return SHG{}, fmt.Errorf("%w: SHG %q: member %q has negative age or savings", ErrInvalidTree, p.SHG, m.ID)
		}
		sum += m.Savings
	}

	out := SHG{
		Members:      append([]Member{}, shg.Members...),
		Products:     append([]string{}, shg.Products...),
		TotalSavings: shg.TotalSavings,
	}
	if out.TotalSavings == 0 {
		out.TotalSavings = sum
	}
	return out, nil
}

// Districts returns every district name, sorted.
func (t *Tree) Districts() []string {
	return sortedKeys(t.districts)
}

// Blocks returns the block names of a district.
func (t *Tree) Blocks(district string) []string {
	if district == "" {
		return []string{}
	}
	return sortedKeys(t.districts[district])
}

// GramPanchayats returns the gram panchayat names of a block.
func (t *Tree) GramPanchayats(district, block string) []string {
	if district == "" || block == "" {
		return []string{}
	}
	return sortedKeys(t.districts[district][block])
}

// Villages returns the village names of a gram panchayat.
func (t *Tree) Villages(district, block, gramPanchayat string) []string {
	if district == "" || block == "" || gramPanchayat == "" {
		return []string{}
	}
	return sortedKeys(t.districts[district][block][gramPanchayat])
}

// SHGs returns the SHG names of a village.
func (t *Tree) SHGs(district, block, gramPanchayat, village string) []string {
	if district == "" || block == "" || gramPanchayat == "" || village == "" {
		return []string{}
	}
	return sortedKeys(t.districts[district][block][gramPanchayat][village].SHGs)
}

// SHG looks up a fully resolved path. The returned value is a copy.
func (t *Tree) SHG(p Path) (SHG, bool) {
	shg, ok := t.districts[p.District][p.Block][p.GramPanchayat][p.Village].SHGs[p.SHG]
	if !ok {
		return SHG{}, false
	}
	return copySHG(shg), true
}

// Walk calls fn for every SHG under the given prefix path, in name order.
// Empty trailing fields of prefix match everything below them.
func (t *Tree) Walk(prefix Path, fn func(p Path, shg SHG)) {
	for _, d := range matchKeys(t.districts, prefix.District) {
		district := t.districts[d]
		for _, b := range matchKeys(district, prefix.Block) {
			block := district[b]
			for _, gp := range matchKeys(block, prefix.GramPanchayat) {
				villages := block[gp]
				for _, v := range matchKeys(villages, prefix.Village) {
					shgs := villages[v].SHGs
					for _, s := range matchKeys(shgs, prefix.SHG) {
						fn(Path{District: d, Block: b, GramPanchayat: gp, Village: v, SHG: s}, copySHG(shgs[s]))
					}
				}
			}
		}
	}
}

// WalkLevels calls fn for every district, block, gram panchayat and village
// in name order, parents before children. Each path is filled down to the
// node's own level, so empty branches are visited too.
func (t *Tree) WalkLevels(fn func(p Path)) {
	for _, d := range sortedKeys(t.districts) {
		fn(Path{District: d})
		district := t.districts[d]
		for _, b := range sortedKeys(district) {
			fn(Path{District: d, Block: b})
			block := district[b]
			for _, gp := range sortedKeys(block) {
				fn(Path{District: d, Block: b, GramPanchayat: gp})
				for _, v := range sortedKeys(block[gp]) {
					fn(Path{District: d, Block: b, GramPanchayat: gp, Village: v})
				}
			}
		}
	}
}

func copySHG(s SHG) SHG {
	return SHG{
		Members:      append([]Member{}, s.Members...),
		Products:     append([]string{}, s.Products...),
		TotalSavings: s.TotalSavings,
	}
}

// matchKeys returns all keys when want is empty, or just want if present.
func matchKeys[V any](m map[string]V, want string) []string {
	if want == "" {
		return sortedKeys(m)
	}
	if _, ok := m[want]; ok {
		return []string{want}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
