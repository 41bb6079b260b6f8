package create

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, tenant *models.Tenant, req models.PaymentRequest) (*models.Payment, error) {
	args := m.Called(ctx, tenant, req)
	res, _ := args.Get(0).(*models.Payment)
	return res, args.Error(1)
}

func (m *MockService) Today() models.Date {
	return models.NewDate(2024, time.February, 1)
}

func TestCreateHandler(t *testing.T) {
	tenant := &models.Tenant{ID: 1}
	due := models.NewDate(2024, time.January, 10)

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *MockService)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "created and overdue on read",
			body: `{"descricao":"Conta de luz","valor":"150.00","data_competencia":"2024-01-01","data_vencimento":"2024-01-10"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, tenant, mock.MatchedBy(func(r models.PaymentRequest) bool {
					return r.Description == "Conta de luz" && r.Amount.Equal(decimal.RequireFromString("150")) &&
						r.CompetenceOn.String() == "2024-01-01" && r.DueOn.String() == "2024-01-10"
				})).Return(&models.Payment{
					ID: 11, TenantID: 1, Description: "Conta de luz", Amount: decimal.RequireFromString("150"),
					CompetenceOn: models.NewDate(2024, time.January, 1), DueOn: &due, Status: models.StatusPending,
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody: []string{
				`"id":11`, `"valor":"150.00"`, `"status":"Pendente"`, `"status_display":"Atrasado"`,
				`"data_pagamento":null`, `"categoria":null`,
			},
		},
		{
			name: "business rule rejected",
			body: `{"descricao":"Conta","valor":10,"data_competencia":"2024-01-01","status":"Pendente"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, tenant, mock.Anything).Return(nil,
					models.NewValidationError("data_vencimento", "A data de vencimento é obrigatória para pagamentos pendentes.")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"data_vencimento":"A data de vencimento é obrigatória para pagamentos pendentes."`},
		},
		{
			name:       "bad date format",
			body:       `{"descricao":"Conta","valor":10,"data_competencia":"01/01/2024"}`,
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"status":"Error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/pagamentos", strings.NewReader(tt.body))
			req = req.WithContext(middlewarectx.WithTenant(req.Context(), tenant))
			w := httptest.NewRecorder()

			New(sl.Discard(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, w.Body.String(), s)
			}
			svc.AssertExpectations(t)
		})
	}
}
