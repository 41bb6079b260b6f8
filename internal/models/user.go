// Package models содержит доменные структуры сервиса учета платежей:
// клиентов, пользователей, категории, платежи и параметры фильтрации.
package models

import "time"

// User представляет учетную запись, под которой выполняются запросы.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsSuperuser  bool
	IsActive     bool
	DateJoined   time.Time
}

// Profile связывает пользователя ровно с одним клиентом.
// После создания не меняется.
type Profile struct {
	UserID   int64
	TenantID int64
}

// Principal - аутентифицированный пользователь текущего запроса.
// TenantID равен nil, если у пользователя нет профиля.
type Principal struct {
	UserID      int64
	Username    string
	Email       string
	IsSuperuser bool
	TenantID    *int64
}

// BootstrapParams - администратор и клиент первичной настройки.
type BootstrapParams struct {
	Username     string
	Email        string
	PasswordHash string
	TenantName   string
}
