// Package request разбирает параметры пути и тела JSON-запросов.
package request

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// maxBodySize ограничивает размер тела запроса.
const maxBodySize = 1 << 20

// ID разбирает параметр пути {id}. Нечисловой id означает, что записи нет.
func ID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("request.ID: %w", models.ErrNotFound)
	}
	return id, nil
}

// Body читает тело запроса целиком.
func Body(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("request.Body: %w: %v", models.ErrInvalidBody, err)
	}
	return data, nil
}

// Unmarshal накладывает JSON из data на v. Отсутствующие в JSON поля v не меняются,
// поэтому тот же вызов подходит и для PUT, и для PATCH.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidBody, err)
	}
	return nil
}

// Decode читает тело запроса и разбирает его в v.
func Decode(r *http.Request, v any) error {
	data, err := Body(r)
	if err != nil {
		return err
	}
	return Unmarshal(data, v)
}
