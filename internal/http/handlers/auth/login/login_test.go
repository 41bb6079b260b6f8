package login

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(m *MockService)
		wantStatus   int
		wantContains string
	}{
		{
			name: "success",
			body: `{"username":"ana","password":"secret"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "ana", "secret").Return("acc", "ref", nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: `"access":"acc"`,
		},
		{
			name:         "invalid json",
			body:         `{"username":`,
			setupMock:    func(_ *MockService) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: `"error":"JSON inválido."`,
		},
		{
			name:         "missing password",
			body:         `{"username":"ana"}`,
			setupMock:    func(_ *MockService) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: `"password":"Este campo é obrigatório."`,
		},
		{
			name: "wrong credentials",
			body: `{"username":"ana","password":"nope"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "ana", "nope").
					Return("", "", fmt.Errorf("services.auth.Login: %w", models.ErrInvalidCredentials)).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			body: `{"username":"ana","password":"secret"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "ana", "secret").Return("", "", errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/token", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			New(sl.Discard(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantContains != "" {
				assert.Contains(t, w.Body.String(), tt.wantContains)
			}
			if tt.wantStatus == http.StatusOK {
				var resp Response
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, Response{Access: "acc", Refresh: "ref"}, resp)
			}
			svc.AssertExpectations(t)
		})
	}
}
