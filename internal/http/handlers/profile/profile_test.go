package profile

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

func TestProfileHandler(t *testing.T) {
	tenantID := int64(4)
	tests := []struct {
		name       string
		principal  *models.Principal
		wantStatus int
		wantBody   string
	}{
		{
			name:       "with tenant",
			principal:  &models.Principal{UserID: 1, Username: "ana", Email: "ana@x.com", TenantID: &tenantID},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"username":"ana","email":"ana@x.com","is_superuser":false,"cliente_id":4}`,
		},
		{
			name:       "without tenant",
			principal:  &models.Principal{UserID: 2, Username: "root", IsSuperuser: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":2,"username":"root","email":"","is_superuser":true,"cliente_id":null}`,
		},
		{
			name:       "anonymous",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"status":"Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.principal != nil {
				req = req.WithContext(middlewarectx.WithPrincipal(req.Context(), tt.principal))
			}
			w := httptest.NewRecorder()

			New(sl.Discard()).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
