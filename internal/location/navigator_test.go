package location

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree(Districts{
		"DHALAI": District{
			"Ambassa": Block{
				"Ambassa GP": GramPanchayat{
					"Ambassa Village": Village{SHGs: map[string]SHG{
						"Maa Durga SHG": {
							Members: []Member{
								{ID: "1", Name: "Sunita Devi", Age: 35, Occupation: "Weaving", Savings: 5000},
								{ID: "2", Name: "Kamala Rani", Age: 42, Occupation: "Tailoring", Savings: 7500},
							},
							Products:     []string{"Handloom"},
							TotalSavings: 12500,
						},
					}},
					"Kulai Village": Village{SHGs: map[string]SHG{}},
				},
				"Dhalai GP": GramPanchayat{},
			},
			"Salema": Block{},
		},
		"GOMATI": District{
			"Udaipur": Block{},
		},
	})
	require.NoError(t, err)
	return tree
}

func selectFullPath(n *Navigator) {
	n.SelectDistrict("DHALAI")
	n.SelectBlock("Ambassa")
	n.SelectGramPanchayat("Ambassa GP")
	n.SelectVillage("Ambassa Village")
	n.SelectSHG("Maa Durga SHG")
}

func assertAncestorInvariant(t *testing.T, s Selection) {
	t.Helper()
	levels := []string{s.District, s.Block, s.GramPanchayat, s.Village, s.SHG}
	for i := 1; i < len(levels); i++ {
		if levels[i] != "" {
			assert.NotEmpty(t, levels[i-1], "level %d set while ancestor empty: %+v", i, s)
		}
	}
}

func TestNavigator_FullPathMembers(t *testing.T) {
	n := NewNavigator(testTree(t))
	selectFullPath(n)

	members := n.Members()
	require.Len(t, members, 2)
	assert.Equal(t, Member{ID: "1", Name: "Sunita Devi", Age: 35, Occupation: "Weaving", Savings: 5000}, members[0])
	assert.Equal(t, Member{ID: "2", Name: "Kamala Rani", Age: 42, Occupation: "Tailoring", Savings: 7500}, members[1])
	assert.Equal(t, Selection{
		District:      "DHALAI",
		Block:         "Ambassa",
		GramPanchayat: "Ambassa GP",
		Village:       "Ambassa Village",
		SHG:           "Maa Durga SHG",
	}, n.Selection())
}

func TestNavigator_SelectDistrictListsBlocks(t *testing.T) {
	n := NewNavigator(testTree(t))
	n.SelectDistrict("DHALAI")
	assert.ElementsMatch(t, []string{"Ambassa", "Salema"}, n.Blocks())
	assert.Empty(t, n.GramPanchayats())
	assert.Empty(t, n.Villages())
	assert.Empty(t, n.SHGs())
}

func TestNavigator_MissingSHGYieldsEmptyMembers(t *testing.T) {
	n := NewNavigator(testTree(t))
	n.SelectDistrict("DHALAI")
	n.SelectBlock("Ambassa")
	n.SelectGramPanchayat("Ambassa GP")
	n.SelectVillage("Ambassa Village")

	assert.True(t, n.SelectSHG("Nonexistent SHG"))
	assert.NotNil(t, n.Members())
	assert.Empty(t, n.Members())
	assert.Equal(t, "Nonexistent SHG", n.Selection().SHG)
}

func TestNavigator_UnknownDistrictDegradesToEmpty(t *testing.T) {
	n := NewNavigator(testTree(t))
	n.SelectDistrict("NORTH TRIPURA")
	assert.Empty(t, n.Blocks())
	n.SelectBlock("Kanchanpur")
	assert.Empty(t, n.GramPanchayats())
}

func TestNavigator_ReselectClearsDeeperLevels(t *testing.T) {
	tests := []struct {
		name   string
		action func(n *Navigator)
		want   Selection
	}{
		{"district", func(n *Navigator) { n.SelectDistrict("GOMATI") }, Selection{District: "GOMATI"}},
		{"block", func(n *Navigator) { n.SelectBlock("Salema") }, Selection{District: "DHALAI", Block: "Salema"}},
		{"gram panchayat", func(n *Navigator) { n.SelectGramPanchayat("Dhalai GP") },
			Selection{District: "DHALAI", Block: "Ambassa", GramPanchayat: "Dhalai GP"}},
		{"village", func(n *Navigator) { n.SelectVillage("Kulai Village") },
			Selection{District: "DHALAI", Block: "Ambassa", GramPanchayat: "Ambassa GP", Village: "Kulai Village"}},
		{"reset", func(n *Navigator) { n.Reset() }, Selection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavigator(testTree(t))
			selectFullPath(n)
			require.Len(t, n.Members(), 2)

			tt.action(n)

			assert.Equal(t, tt.want, n.Selection())
			assert.Empty(t, n.Members())
			if tt.want.Block == "" {
				assert.Empty(t, n.GramPanchayats())
			}
			if tt.want.GramPanchayat == "" {
				assert.Empty(t, n.Villages())
			}
			if tt.want.Village == "" {
				assert.Empty(t, n.SHGs())
			}
		})
	}
}

func TestNavigator_OutOfOrderSelectIsIgnored(t *testing.T) {
	n := NewNavigator(testTree(t))

	assert.False(t, n.SelectBlock("Ambassa"))
	assert.False(t, n.SelectGramPanchayat("Ambassa GP"))
	assert.False(t, n.SelectVillage("Ambassa Village"))
	assert.False(t, n.SelectSHG("Maa Durga SHG"))
	assert.Equal(t, Selection{}, n.Selection())
	assert.Empty(t, n.Members())
}

func TestNavigator_SelectDistrictIdempotent(t *testing.T) {
	once := NewNavigator(testTree(t))
	once.SelectDistrict("DHALAI")

	twice := NewNavigator(testTree(t))
	twice.SelectDistrict("DHALAI")
	twice.SelectDistrict("DHALAI")

	assert.Equal(t, once.Selection(), twice.Selection())
	assert.Equal(t, once.Members(), twice.Members())
	assert.Equal(t, once.Blocks(), twice.Blocks())
}

func TestNavigator_MembersReturnsCopy(t *testing.T) {
	n := NewNavigator(testTree(t))
	selectFullPath(n)

	members := n.Members()
	members[0].Name = "changed"

	assert.Equal(t, "Sunita Devi", n.Members()[0].Name)
}

func TestNavigator_RandomSequencesKeepInvariant(t *testing.T) {
	tree := testTree(t)
	names := []string{"", "DHALAI", "GOMATI", "Ambassa", "Salema", "Ambassa GP", "Ambassa Village", "Maa Durga SHG", "missing"}
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		n := NewNavigator(tree)
		for step := 0; step < 20; step++ {
			name := names[rng.Intn(len(names))]
			switch rng.Intn(5) {
			case 0:
				n.SelectDistrict(name)
			case 1:
				n.SelectBlock(name)
			case 2:
				n.SelectGramPanchayat(name)
			case 3:
				n.SelectVillage(name)
			case 4:
				n.SelectSHG(name)
			}
			assertAncestorInvariant(t, n.Selection())
			if n.Selection().SHG == "" {
				assert.Empty(t, n.Members())
			}
		}
	}
}
