package request

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"15", 15, false},
		{"abc", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := ID(withID(httptest.NewRequest(http.MethodGet, "/", nil), tt.raw))
			if tt.wantErr {
				assert.True(t, errors.Is(err, models.ErrNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestDecode(t *testing.T) {
	var req models.CategoryRequest
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Aluguel"}`))
	require.NoError(t, Decode(r, &req))
	assert.Equal(t, "Aluguel", req.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":`))
	err := Decode(r, &req)
	assert.True(t, errors.Is(err, models.ErrInvalidBody))
}

func TestUnmarshal_KeepsMissingFields(t *testing.T) {
	desc := "fixas"
	req := models.CategoryRequest{Name: "Aluguel", Description: &desc}

	require.NoError(t, Unmarshal([]byte(`{"nome":"Moradia"}`), &req))
	assert.Equal(t, "Moradia", req.Name)
	require.NotNil(t, req.Description)
	assert.Equal(t, "fixas", *req.Description)

	require.NoError(t, Unmarshal([]byte(`{"descricao":null}`), &req))
	assert.Nil(t, req.Description)
}
