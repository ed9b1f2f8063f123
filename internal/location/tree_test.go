package location

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree_Validation(t *testing.T) {
	oneSHG := func(shg SHG) Districts {
		return Districts{"D": District{"B": Block{"G": GramPanchayat{"V": Village{SHGs: map[string]SHG{"S": shg}}}}}}
	}

	tests := []struct {
		name string
		raw  Districts
	}{
		{"blank district", Districts{" ": District{}}},
		{"blank block", Districts{"D": District{"": Block{}}}},
		{"blank gram panchayat", Districts{"D": District{"B": Block{"": GramPanchayat{}}}}},
		{"blank village", Districts{"D": District{"B": Block{"G": GramPanchayat{"": Village{}}}}}},
		{"blank shg", Districts{"D": District{"B": Block{"G": GramPanchayat{"V": Village{SHGs: map[string]SHG{"": {}}}}}}}},
		{"member without id", oneSHG(SHG{Members: []Member{{Name: "x"}}})},
		{"duplicate member id", oneSHG(SHG{Members: []Member{{ID: "1"}, {ID: "1"}}})},
		{"negative savings", oneSHG(SHG{Members: []Member{{ID: "1", Savings: -1}}})},
		{"negative age", oneSHG(SHG{Members: []Member{{ID: "1", Age: -3}}})},
		{"negative total", oneSHG(SHG{TotalSavings: -10})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := NewTree(tt.raw)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, ErrInvalidTree)
		})
	}
}

func TestNewTree_DerivesTotalSavings(t *testing.T) {
	tree, err := NewTree(Districts{"D": District{"B": Block{"G": GramPanchayat{"V": Village{SHGs: map[string]SHG{
		"S": {Members: []Member{{ID: "1", Savings: 100}, {ID: "2", Savings: 250.5}}},
	}}}}}})
	require.NoError(t, err)

	shg, ok := tree.SHG(Path{District: "D", Block: "B", GramPanchayat: "G", Village: "V", SHG: "S"})
	require.True(t, ok)
	assert.InDelta(t, 350.5, shg.TotalSavings, 0.001)
}

func TestNewTree_CopiesInput(t *testing.T) {
	members := []Member{{ID: "1", Name: "before"}}
	raw := Districts{"D": District{"B": Block{"G": GramPanchayat{"V": Village{SHGs: map[string]SHG{
		"S": {Members: members},
	}}}}}}
	tree, err := NewTree(raw)
	require.NoError(t, err)

	members[0].Name = "after"
	raw["E"] = District{}

	shg, _ := tree.SHG(Path{District: "D", Block: "B", GramPanchayat: "G", Village: "V", SHG: "S"})
	assert.Equal(t, "before", shg.Members[0].Name)
	assert.Equal(t, []string{"D"}, tree.Districts())
}

func TestTree_LookupsNeedAncestors(t *testing.T) {
	tree := testTree(t)
	assert.Empty(t, tree.Blocks(""))
	assert.Empty(t, tree.GramPanchayats("DHALAI", ""))
	assert.Empty(t, tree.Villages("", "Ambassa", "Ambassa GP"))
	assert.Empty(t, tree.SHGs("DHALAI", "Ambassa", "Ambassa GP", ""))
	assert.Equal(t, []string{"Maa Durga SHG"}, tree.SHGs("DHALAI", "Ambassa", "Ambassa GP", "Ambassa Village"))

	_, ok := tree.SHG(Path{District: "DHALAI", Block: "Ambassa"})
	assert.False(t, ok)
}

func TestTree_Walk(t *testing.T) {
	tree, err := EmbeddedSeed()
	require.NoError(t, err)

	var all []Path
	tree.Walk(Path{}, func(p Path, _ SHG) { all = append(all, p) })
	assert.Len(t, all, 8)

	var dhalai []string
	tree.Walk(Path{District: "DHALAI", Block: "Ambassa"}, func(p Path, _ SHG) { dhalai = append(dhalai, p.SHG) })
	assert.Equal(t, []string{"Lakshmi SHG", "Maa Durga SHG", "Jagriti SHG", "Ujjwala SHG"}, dhalai)

	var none int
	tree.Walk(Path{District: "NOWHERE"}, func(Path, SHG) { none++ })
	assert.Zero(t, none)
}

func TestEmbeddedSeed_ContainsDhalaiExample(t *testing.T) {
	tree, err := EmbeddedSeed()
	require.NoError(t, err)

	n := NewNavigator(tree)
	n.SelectDistrict("DHALAI")
	n.SelectBlock("Ambassa")
	n.SelectGramPanchayat("Ambassa GP")
	n.SelectVillage("Ambassa Village")
	n.SelectSHG("Maa Durga SHG")

	members := n.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "Sunita Devi", members[0].Name)
	assert.Equal(t, "Kamala Rani", members[1].Name)
}

func TestParseSeed_RejectsUnknownFields(t *testing.T) {
	doc := `
D:
  B:
    G:
      V:
        shgs:
          S:
            members: []
            colour: red
`
	_, err := ParseSeed(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestEmbeddedSeed_RejectsUnknownFields(t *testing.T) {
	orig := embeddedSeed
	t.Cleanup(func() { embeddedSeed = orig })

	embeddedSeed = []byte(`
D:
  B:
    G:
      V:
        shgs:
          S:
            members: []
            total_saving: 100
`)
	_, err := EmbeddedSeed()
	assert.Error(t, err)
}

func TestParseSeed_Valid(t *testing.T) {
	doc := `
D:
  B:
    G:
      V:
        shgs:
          S:
            members:
              - {id: "1", name: "A", age: 30, occupation: "x", savings: 10}
            products: ["p"]
`
	tree, err := ParseSeed(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"S"}, tree.SHGs("D", "B", "G", "V"))
}

func TestTree_WalkLevelsVisitsEmptyBranches(t *testing.T) {
	var got []Path
	testTree(t).WalkLevels(func(p Path) { got = append(got, p) })

	assert.Equal(t, []Path{
		{District: "DHALAI"},
		{District: "DHALAI", Block: "Ambassa"},
		{District: "DHALAI", Block: "Ambassa", GramPanchayat: "Ambassa GP"},
		{District: "DHALAI", Block: "Ambassa", GramPanchayat: "Ambassa GP", Village: "Ambassa Village"},
		{District: "DHALAI", Block: "Ambassa", GramPanchayat: "Ambassa GP", Village: "Kulai Village"},
		{District: "DHALAI", Block: "Ambassa", GramPanchayat: "Dhalai GP"},
		{District: "DHALAI", Block: "Salema"},
		{District: "GOMATI"},
		{District: "GOMATI", Block: "Udaipur"},
	}, got)
}
