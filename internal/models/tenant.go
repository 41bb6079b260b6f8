package models

import "time"

// Tenant - клиент системы (Cliente). Все категории и платежи принадлежат ровно одному клиенту.
type Tenant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome_empresa"`
	CreatedAt time.Time `json:"-"`
}
