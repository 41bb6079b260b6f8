package models

// Category - категория платежей клиента.
type Category struct {
	ID          int64   `json:"id"`
	TenantID    int64   `json:"-"`
	Name        string  `json:"nome"`
	Description *string `json:"descricao"`
}

// CategoryRequest - тело запроса на создание или изменение категории.
type CategoryRequest struct {
	Name        string  `json:"nome" validate:"required,max=100"`
	Description *string `json:"descricao"`
}
