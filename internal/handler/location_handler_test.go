package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"shgportal/internal/domain"
	"shgportal/internal/handler"
	"shgportal/internal/location"
	"shgportal/internal/service"
	"shgportal/mocks"
)

func TestLocationHandler_Blocks(t *testing.T) {
	mockSvc := new(mocks.MockLocationService)
	h := handler.NewLocationHandler(mockSvc)

	mockSvc.On("Blocks", "DHALAI").Return([]string{"Ambassa", "Salema"})

	c, w := newContext(http.MethodGet, "/api/v1/locations/blocks?district=DHALAI", nil)
	h.Blocks(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"Ambassa", "Salema"}, decode(t, w).Data)
}

func TestLocationHandler_Villages_UnknownParent(t *testing.T) {
	mockSvc := new(mocks.MockLocationService)
	h := handler.NewLocationHandler(mockSvc)

	mockSvc.On("Villages", "DHALAI", "Nowhere", "").Return([]string{})

	c, w := newContext(http.MethodGet, "/api/v1/locations/villages?district=DHALAI&block=Nowhere", nil)
	h.Villages(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestLocationHandler_SHG(t *testing.T) {
	mockSvc := new(mocks.MockLocationService)
	h := handler.NewLocationHandler(mockSvc)

	p := location.Path{District: "DHALAI", Block: "Ambassa", GramPanchayat: "Ambassa GP", Village: "Kulai", SHG: "Jagaran SHG"}
	mockSvc.On("SHG", p).Return(&service.SHGView{Path: p, TotalSavings: 5000}, nil)

	c, w := newContext(http.MethodGet,
		"/api/v1/locations/shg?district=DHALAI&block=Ambassa&gram_panchayat=Ambassa+GP&village=Kulai&shg=Jagaran+SHG", nil)
	h.SHG(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestLocationHandler_SHG_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockLocationService)
	h := handler.NewLocationHandler(mockSvc)

	mockSvc.On("SHG", location.Path{District: "DHALAI"}).Return(nil, domain.ErrNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/locations/shg?district=DHALAI", nil)
	h.SHG(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
