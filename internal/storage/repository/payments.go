package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

const paymentSelect = `SELECT p.id, p.cliente_id, p.descricao, p.valor, p.data_competencia,
		p.data_vencimento, p.data_pagamento, p.status, p.numero_nota_fiscal,
		p.categoria_id, c.nome, p.data_criacao
	FROM pagamentos p
	LEFT JOIN categorias c ON c.id = p.categoria_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanPayment(row scanner) (*models.Payment, error) {
	var (
		p          models.Payment
		due, paid  sql.NullTime
		invoice    sql.NullString
		categoryID sql.NullInt64
		category   sql.NullString
		status     string
	)
	if err := row.Scan(&p.ID, &p.TenantID, &p.Description, &p.Amount, &p.CompetenceOn,
		&due, &paid, &status, &invoice, &categoryID, &category, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Status = models.StoredStatus(status)
	p.DueOn = dateFromNull(due)
	p.PaidOn = dateFromNull(paid)
	if invoice.Valid {
		p.InvoiceNumber = &invoice.String
	}
	if categoryID.Valid {
		p.CategoryID = &categoryID.Int64
	}
	if category.Valid {
		p.CategoryName = &category.String
	}
	return &p, nil
}

// CreatePayment вставляет платеж и возвращает его в том виде, как он сохранен.
func (s *Storage) CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	const op = "storage.CreatePayment"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO pagamentos (cliente_id, descricao, valor, data_competencia, data_vencimento,
			data_pagamento, status, numero_nota_fiscal, categoria_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		p.TenantID, p.Description, p.Amount.StringFixed(2), p.CompetenceOn.String(),
		nullableDate(p.DueOn), nullableDate(p.PaidOn), string(p.Status),
		nullableString(p.InvoiceNumber), nullableInt64(p.CategoryID)).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.GetPayment(ctx, p.TenantID, id)
}

// GetPayment возвращает платеж клиента по id.
func (s *Storage) GetPayment(ctx context.Context, tenantID, id int64) (*models.Payment, error) {
	const op = "storage.GetPayment"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	row := s.DB.QueryRowContext(ctx, paymentSelect+` WHERE p.id = $1 AND p.cliente_id = $2`, id, tenantID)
	p, err := scanPayment(row)
	if err != nil {
		return nil, notFound(op, err)
	}
	return p, nil
}

// UpdatePayment перезаписывает все изменяемые поля платежа клиента.
func (s *Storage) UpdatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	const op = "storage.UpdatePayment"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE pagamentos SET descricao = $1, valor = $2, data_competencia = $3,
			data_vencimento = $4, data_pagamento = $5, status = $6,
			numero_nota_fiscal = $7, categoria_id = $8
		 WHERE id = $9 AND cliente_id = $10`,
		p.Description, p.Amount.StringFixed(2), p.CompetenceOn.String(),
		nullableDate(p.DueOn), nullableDate(p.PaidOn), string(p.Status),
		nullableString(p.InvoiceNumber), nullableInt64(p.CategoryID),
		p.ID, p.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := expectAffected(op, res); err != nil {
		return nil, err
	}
	return s.GetPayment(ctx, p.TenantID, p.ID)
}

// DeletePayment удаляет платеж клиента.
func (s *Storage) DeletePayment(ctx context.Context, tenantID, id int64) error {
	const op = "storage.DeletePayment"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM pagamentos WHERE id = $1 AND cliente_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return expectAffected(op, res)
}

// ListPayments возвращает страницу отфильтрованных платежей.
func (s *Storage) ListPayments(ctx context.Context, f models.PaymentFilter, today models.Date, limit, offset int) ([]*models.Payment, error) {
	const op = "storage.ListPayments"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	b := paymentWhere(f, today)
	order, err := orderBy(f.Ordering)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	query := paymentSelect + " " + b.where() + " " + order +
		" LIMIT " + b.arg(limit) + " OFFSET " + b.arg(offset)
	return s.queryPayments(ctx, op, query, b.args)
}

// ExportPayments возвращает все отфильтрованные платежи по возрастанию даты компетенции.
func (s *Storage) ExportPayments(ctx context.Context, f models.PaymentFilter, today models.Date) ([]*models.Payment, error) {
	const op = "storage.ExportPayments"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	b := paymentWhere(f, today)
	order, _ := orderBy([]models.Ordering{{Key: models.SortCompetence}})
	return s.queryPayments(ctx, op, paymentSelect+" "+b.where()+" "+order, b.args)
}

func (s *Storage) queryPayments(ctx context.Context, op, query string, args []any) ([]*models.Payment, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]*models.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AggregatePayments считает количество отфильтрованных платежей и суммы
// по трем вычисляемым статусам для всей выборки.
func (s *Storage) AggregatePayments(ctx context.Context, f models.PaymentFilter, today models.Date) (int, models.Totals, error) {
	const op = "storage.AggregatePayments"
	var totals models.Totals
	if err := checkCtx(ctx, op); err != nil {
		return 0, totals, err
	}

	b := paymentWhere(f, today)
	todayParam := b.arg(today.String())
	query := `SELECT COUNT(*),
			COALESCE(SUM(p.valor) FILTER (WHERE ` + statusPredicate(models.ComputedPaid, todayParam) + `), 0),
			COALESCE(SUM(p.valor) FILTER (WHERE ` + statusPredicate(models.ComputedPending, todayParam) + `), 0),
			COALESCE(SUM(p.valor) FILTER (WHERE ` + statusPredicate(models.ComputedOverdue, todayParam) + `), 0)
		FROM pagamentos p ` + b.where()

	var count int
	if err := s.DB.QueryRowContext(ctx, query, b.args...).
		Scan(&count, &totals.Paid, &totals.Pending, &totals.Overdue); err != nil {
		return 0, totals, fmt.Errorf("%s: %w", op, err)
	}
	return count, totals, nil
}

