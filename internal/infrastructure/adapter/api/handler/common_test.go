package handler

import (
	"errors"
	"net/http"
	"testing"

	domainerr "github.com/tonsuimining/platform/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestHttpStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation failure", domainerr.ErrInvalidAmount, http.StatusBadRequest},
		{"insufficient balance", domainerr.NewInsufficientBalanceError(7, "100.00", "50.00"), http.StatusBadRequest},
		{"missing token", domainerr.ErrUnauthenticated, http.StatusUnauthorized},
		{"bad credentials", domainerr.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrong role", domainerr.ErrForbidden, http.StatusForbidden},
		{"missing user", domainerr.ErrUserNotFound, http.StatusNotFound},
		{"missing plan", domainerr.ErrPlanNotFound, http.StatusNotFound},
		{"double processing", domainerr.ErrAlreadyProcessed, http.StatusConflict},
		{"used pin", domainerr.ErrPinUsed, http.StatusConflict},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httpStatus(tc.err))
		})
	}
}
