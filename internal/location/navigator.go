package location

// Selection is the current cascading choice. An empty field is unset, and a
// field is only ever set while all of its ancestors are set.
type Selection struct {
	District      string `json:"district"`
	Block         string `json:"block"`
	GramPanchayat string `json:"gram_panchayat"`
	Village       string `json:"village"`
	SHG           string `json:"shg"`
}

// Path returns the selection as a tree path.
func (s Selection) Path() Path {
	return Path(s)
}

// Navigator walks a Tree one level at a time. Selecting at a level clears
// every deeper level. A Navigator is not safe for concurrent use.
type Navigator struct {
	tree    *Tree
	sel     Selection
	members []Member
}

// NewNavigator returns a Navigator with an empty selection.
func NewNavigator(tree *Tree) *Navigator {
	return &Navigator{tree: tree, members: []Member{}}
}

// SelectDistrict sets the district and clears everything below it.
// An empty name clears the whole selection.
func (n *Navigator) SelectDistrict(name string) {
	n.sel = Selection{District: name}
	n.members = []Member{}
}

// SelectBlock sets the block and clears everything below it. It reports
// false and leaves the selection untouched when no district is selected.
func (n *Navigator) SelectBlock(name string) bool {
	if n.sel.District == "" {
		return false
	}
	n.sel = Selection{District: n.sel.District, Block: name}
	n.members = []Member{}
	return true
}

// SelectGramPanchayat sets the gram panchayat and clears village and SHG.
func (n *Navigator) SelectGramPanchayat(name string) bool {
	if n.sel.Block == "" {
		return false
	}
	n.sel.GramPanchayat = name
	n.sel.Village = ""
	n.sel.SHG = ""
	n.members = []Member{}
	return true
}

// SelectVillage sets the village and clears the SHG.
func (n *Navigator) SelectVillage(name string) bool {
	if n.sel.GramPanchayat == "" {
		return false
	}
	n.sel.Village = name
	n.sel.SHG = ""
	n.members = []Member{}
	return true
}

// SelectSHG sets the SHG and loads its members. A path that does not
// resolve yields an empty member list.
func (n *Navigator) SelectSHG(name string) bool {
	if n.sel.Village == "" {
		return false
	}
	n.sel.SHG = name
	n.members = []Member{}
	if name == "" {
		return true
	}
	if shg, ok := n.tree.SHG(n.sel.Path()); ok {
		n.members = shg.Members
	}
	return true
}

// Reset clears the whole selection.
func (n *Navigator) Reset() {
	n.SelectDistrict("")
}

// Selection returns the current selection.
func (n *Navigator) Selection() Selection {
	return n.sel
}

// Members returns a copy of the selected SHG's members.
func (n *Navigator) Members() []Member {
	return append([]Member{}, n.members...)
}

// Districts returns every district of the tree.
func (n *Navigator) Districts() []string {
	return n.tree.Districts()
}

// Blocks returns the blocks of the selected district.
func (n *Navigator) Blocks() []string {
	return n.tree.Blocks(n.sel.District)
}

// GramPanchayats returns the gram panchayats of the selected block.
func (n *Navigator) GramPanchayats() []string {
	return n.tree.GramPanchayats(n.sel.District, n.sel.Block)
}

// Villages returns the villages of the selected gram panchayat.
func (n *Navigator) Villages() []string {
	return n.tree.Villages(n.sel.District, n.sel.Block, n.sel.GramPanchayat)
}

// SHGs returns the SHGs of the selected village.
func (n *Navigator) SHGs() []string {
	return n.tree.SHGs(n.sel.District, n.sel.Block, n.sel.GramPanchayat, n.sel.Village)
}

// SelectedSHG returns the data of the selected SHG, if it resolves.
func (n *Navigator) SelectedSHG() (SHG, bool) {
	if n.sel.SHG == "" {
		return SHG{}, false
	}
	return n.tree.SHG(n.sel.Path())
}
