package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound - запись не найдена в пределах клиента текущего запроса.
	ErrNotFound = errors.New("not found")
	// ErrNoTenant - у пользователя нет клиента, запись невозможна.
	ErrNoTenant = errors.New("no tenant bound to user")
	// ErrInvalidPage - запрошена несуществующая страница.
	ErrInvalidPage = errors.New("invalid page")
	// ErrInvalidCredentials - неверное имя пользователя или пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken - токен отсутствует, просрочен, неверного типа или пользователь неактивен.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidBody - тело запроса не разбирается как JSON нужной структуры.
	ErrInvalidBody = errors.New("invalid request body")
)

// ValidationError - ошибка валидации с сообщениями по полям.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError создает ошибку валидации для одного поля.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsValidationError извлекает *ValidationError из цепочки ошибок.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
