package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"shgportal/internal/handler"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		db     handler.Pinger
		status int
	}{
		{"no database", nil, http.StatusOK},
		{"database up", stubPinger{}, http.StatusOK},
		{"database down", stubPinger{err: errors.New("refused")}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHealthHandler(tt.db)
			c, w := newContext(http.MethodGet, "/readyz", nil)
			h.Readiness(c)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
