package service_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shgportal/internal/domain"
	"shgportal/internal/location"
	"shgportal/internal/service"
)

func TestNavigatorService_FullPath(t *testing.T) {
	svc := service.NewNavigatorService(seedTree(t))
	user := uuid.New()

	state := svc.SelectDistrict(user, "DHALAI")
	assert.ElementsMatch(t, []string{"Ambassa", "Salema"}, state.Blocks)

	state, err := svc.SelectBlock(user, "Ambassa")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ambassa GP", "Dhalai GP"}, state.GramPanchayats)

	_, err = svc.SelectGramPanchayat(user, "Ambassa GP")
	require.NoError(t, err)
	_, err = svc.SelectVillage(user, "Ambassa Village")
	require.NoError(t, err)
	state, err = svc.SelectSHG(user, "Maa Durga SHG")
	require.NoError(t, err)

	require.Len(t, state.Members, 2)
	assert.Equal(t, "Sunita Devi", state.Members[0].Name)
	assert.Equal(t, "Kamala Rani", state.Members[1].Name)
	require.NotNil(t, state.SHGDetail)
	assert.Equal(t, 12500.0, state.SHGDetail.TotalSavings)
	assert.Equal(t, []string{"Handloom Saree", "Risa"}, state.SHGDetail.Products)
}

func TestNavigatorService_OutOfOrderSelect(t *testing.T) {
	svc := service.NewNavigatorService(seedTree(t))
	user := uuid.New()

	state, err := svc.SelectVillage(user, "Ambassa Village")

	assert.ErrorIs(t, err, domain.ErrSelectionOrder)
	assert.Equal(t, location.Selection{}, state.Selection)
	assert.Empty(t, state.Members)
}

func TestNavigatorService_SessionsAreIsolated(t *testing.T) {
	svc := service.NewNavigatorService(seedTree(t))
	alice, bob := uuid.New(), uuid.New()

	svc.SelectDistrict(alice, "GOMATI")
	svc.SelectDistrict(bob, "WEST TRIPURA")

	assert.Equal(t, "GOMATI", svc.State(alice).Selection.District)
	assert.Equal(t, "WEST TRIPURA", svc.State(bob).Selection.District)

	state := svc.Reset(alice)
	assert.Equal(t, location.Selection{}, state.Selection)
	assert.Equal(t, "WEST TRIPURA", svc.State(bob).Selection.District)
}

func TestNavigatorService_ReselectDistrictClearsDescendants(t *testing.T) {
	svc := service.NewNavigatorService(seedTree(t))
	user := uuid.New()

	svc.SelectDistrict(user, "GOMATI")
	_, _ = svc.SelectBlock(user, "Udaipur")
	_, _ = svc.SelectGramPanchayat(user, "Matabari GP")

	state := svc.SelectDistrict(user, "DHALAI")
	assert.Equal(t, location.Selection{District: "DHALAI"}, state.Selection)
	assert.Empty(t, state.GramPanchayats)
	assert.Empty(t, state.Villages)
	assert.Nil(t, state.SHGDetail)
}

func TestNavigatorService_ConcurrentUse(t *testing.T) {
	svc := service.NewNavigatorService(seedTree(t))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := uuid.New()
			svc.SelectDistrict(user, "DHALAI")
			_, _ = svc.SelectBlock(user, "Salema")
			_, _ = svc.SelectGramPanchayat(user, "Salema GP")
			_, _ = svc.SelectVillage(user, "Salema Village")
			state, err := svc.SelectSHG(user, "Sangini SHG")
			assert.NoError(t, err)
			assert.Len(t, state.Members, 2)
		}()
	}
	wg.Wait()
}

func TestNavigatorService_ResetDropsSession(t *testing.T) {
	svc := service.NewNavigatorService(seedTree(t))
	user := uuid.New()

	svc.SelectDistrict(user, "DHALAI")
	_, err := svc.SelectBlock(user, "Ambassa")
	require.NoError(t, err)
	require.Equal(t, 1, service.NavigatorSessions(svc))

	state := svc.Reset(user)
	assert.Equal(t, location.Selection{}, state.Selection)
	assert.Empty(t, state.Blocks)
	assert.NotEmpty(t, state.Districts)
	assert.Equal(t, 0, service.NavigatorSessions(svc))

	assert.Equal(t, location.Selection{}, svc.State(user).Selection)
	assert.Equal(t, 0, service.NavigatorSessions(svc))
}

func TestNavigatorService_Discard(t *testing.T) {
	svc := service.NewNavigatorService(seedTree(t))
	alice, bob := uuid.New(), uuid.New()

	svc.SelectDistrict(alice, "GOMATI")
	svc.SelectDistrict(bob, "DHALAI")
	svc.Discard(alice)

	assert.Equal(t, 1, service.NavigatorSessions(svc))
	assert.Empty(t, svc.State(alice).Selection.District)
	assert.Equal(t, "DHALAI", svc.State(bob).Selection.District)
}
