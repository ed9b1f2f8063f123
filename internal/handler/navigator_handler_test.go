package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shgportal/internal/domain"
	"shgportal/internal/handler"
	"shgportal/internal/location"
	"shgportal/internal/service"
	"shgportal/mocks"
)

func newNavigatorHandler() (*handler.NavigatorHandler, *mocks.MockNavigatorService) {
	mockSvc := new(mocks.MockNavigatorService)
	return handler.NewNavigatorHandler(mockSvc), mockSvc
}

func decodeState(t *testing.T, body []byte) service.NavigatorState {
	t.Helper()
	var resp struct {
		Data service.NavigatorState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Data
}

func TestNavigatorHandler_SelectDistrict(t *testing.T) {
	h, mockSvc := newNavigatorHandler()

	userID := uuid.New()
	mockSvc.On("SelectDistrict", userID, "DHALAI").Return(service.NavigatorState{
		Selection: location.Selection{District: "DHALAI"},
		Blocks:    []string{"Ambassa", "Salema"},
	})

	c, w := newContext(http.MethodPut, "/api/v1/navigator/district", handler.SelectRequest{Name: "DHALAI"})
	setAuthContext(c, userID, domain.RoleNIC, "", "")
	h.SelectDistrict(c)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w.Body.Bytes())
	assert.Equal(t, "DHALAI", state.Selection.District)
	assert.Equal(t, []string{"Ambassa", "Salema"}, state.Blocks)
	mockSvc.AssertExpectations(t)
}

func TestNavigatorHandler_SelectBlock_OutOfOrder(t *testing.T) {
	h, mockSvc := newNavigatorHandler()

	userID := uuid.New()
	mockSvc.On("SelectBlock", userID, "Ambassa").Return(service.NavigatorState{}, domain.ErrSelectionOrder)

	c, w := newContext(http.MethodPut, "/api/v1/navigator/block", handler.SelectRequest{Name: "Ambassa"})
	setAuthContext(c, userID, domain.RoleNIC, "", "")
	h.SelectBlock(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SELECTION_ORDER", decode(t, w).Error.Code)
}

func TestNavigatorHandler_SelectSHG(t *testing.T) {
	h, mockSvc := newNavigatorHandler()

	userID := uuid.New()
	mockSvc.On("SelectSHG", userID, "Jagaran SHG").Return(service.NavigatorState{
		Selection: location.Selection{District: "DHALAI", Block: "Ambassa", GramPanchayat: "Ambassa GP", Village: "Kulai", SHG: "Jagaran SHG"},
		Members:   []location.Member{{ID: "M001", Name: "Rina Debbarma"}},
		SHGDetail: &service.SHGDetail{Products: []string{"Bamboo Basket"}, TotalSavings: 5000, MemberCount: 1},
	}, nil)

	c, w := newContext(http.MethodPut, "/api/v1/navigator/shg", handler.SelectRequest{Name: "Jagaran SHG"})
	setAuthContext(c, userID, domain.RoleBMMU, "DHALAI", "Ambassa")
	h.SelectSHG(c)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w.Body.Bytes())
	require.Len(t, state.Members, 1)
	require.NotNil(t, state.SHGDetail)
	assert.Equal(t, 1, state.SHGDetail.MemberCount)
}

func TestNavigatorHandler_State_NoAuth(t *testing.T) {
	h, _ := newNavigatorHandler()

	c, w := newContext(http.MethodGet, "/api/v1/navigator", nil)
	h.State(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNavigatorHandler_Reset(t *testing.T) {
	h, mockSvc := newNavigatorHandler()

	userID := uuid.New()
	mockSvc.On("Reset", userID).Return(service.NavigatorState{Districts: []string{"DHALAI", "GOMATI", "WEST TRIPURA"}})

	c, w := newContext(http.MethodDelete, "/api/v1/navigator", nil)
	setAuthContext(c, userID, domain.RoleNIC, "", "")
	h.Reset(c)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w.Body.Bytes())
	assert.Empty(t, state.Selection.District)
	assert.Len(t, state.Districts, 3)
}
