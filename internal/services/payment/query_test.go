package payment

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		check     func(t *testing.T, q Query)
		wantField string
		wantErr   error
	}{
		{
			name: "defaults",
			raw:  "",
			check: func(t *testing.T, q Query) {
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, DefaultPageSize, q.PageSize)
				assert.Equal(t, models.PaymentFilter{}, q.Filter)
			},
		},
		{
			name: "all filters",
			raw:  "data_competencia_inicio=2024-01-01&data_competencia_fim=2024-01-31&descricao=luz&categoria=3&status=Atrasado&ordering=-valor,descricao&page=2&page_size=10",
			check: func(t *testing.T, q Query) {
				assert.Equal(t, "2024-01-01", q.Filter.CompetenceFrom.String())
				assert.Equal(t, "2024-01-31", q.Filter.CompetenceTo.String())
				assert.Equal(t, "luz", q.Filter.DescriptionContains)
				assert.Equal(t, int64(3), *q.Filter.CategoryID)
				assert.Equal(t, models.ComputedOverdue, q.Filter.Status)
				assert.Equal(t, []models.Ordering{
					{Key: models.SortAmount, Desc: true},
					{Key: models.SortDescription},
				}, q.Filter.Ordering)
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 10, q.PageSize)
			},
		},
		{
			name: "unknown status is ignored",
			raw:  "status=Cancelado",
			check: func(t *testing.T, q Query) {
				assert.Equal(t, models.ComputedStatus(""), q.Filter.Status)
			},
		},
		{
			name: "page size is capped",
			raw:  "page_size=5000",
			check: func(t *testing.T, q Query) {
				assert.Equal(t, MaxPageSize, q.PageSize)
			},
		},
		{
			name: "invalid page size falls back to default",
			raw:  "page_size=abc",
			check: func(t *testing.T, q Query) {
				assert.Equal(t, DefaultPageSize, q.PageSize)
			},
		},
		{
			name:      "unknown ordering key",
			raw:       "ordering=cliente",
			wantField: "ordering",
		},
		{
			name:      "invalid date",
			raw:       "data_competencia_inicio=01/02/2024",
			wantField: "data_competencia_inicio",
		},
		{
			name:      "invalid category",
			raw:       "categoria=abc",
			wantField: "categoria",
		},
		{
			name:    "invalid page",
			raw:     "page=0",
			wantErr: models.ErrInvalidPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			q, err := ParseQuery(values)
			switch {
			case tt.wantField != "":
				ve, ok := models.AsValidationError(err)
				require.True(t, ok)
				assert.Contains(t, ve.Fields, tt.wantField)
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr))
			default:
				require.NoError(t, err)
				tt.check(t, q)
			}
		})
	}
}
