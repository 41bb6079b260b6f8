package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/payments-tracker/internal/migrations"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateTenant создает клиента и возвращает его id.
func (f *TestDataFactory) CreateTenant(t *testing.T, name string) int64 {
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO clientes (nome_empresa) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateUser создает пользователя; если tenantID не nil, создает и профиль.
func (f *TestDataFactory) CreateUser(t *testing.T, username string, superuser bool, tenantID *int64) int64 {
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO users (username, email, password_hash, is_superuser)
		VALUES ($1, $2, 'hash', $3) RETURNING id`, username, username+"@example.com", superuser).Scan(&id)
	require.NoError(t, err)
	if tenantID != nil {
		_, err = f.storage.DB.Exec(`INSERT INTO perfis_usuario (user_id, cliente_id) VALUES ($1, $2)`, id, *tenantID)
		require.NoError(t, err)
	}
	return id
}

// CreateCategory создает категорию клиента.
func (f *TestDataFactory) CreateCategory(t *testing.T, tenantID int64, name string) int64 {
	c, err := f.storage.CreateCategory(context.Background(), models.Category{TenantID: tenantID, Name: name})
	require.NoError(t, err)
	return c.ID
}

// CreatePayment создает платеж клиента.
func (f *TestDataFactory) CreatePayment(t *testing.T, p models.Payment) *models.Payment {
	if p.Status == "" {
		p.Status = models.StatusPending
	}
	if p.CompetenceOn.IsZero() {
		p.CompetenceOn = models.NewDate(2024, time.January, 1)
	}
	created, err := f.storage.CreatePayment(context.Background(), p)
	require.NoError(t, err)
	return created
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func datePtr(y int, m time.Month, d int) *models.Date {
	v := models.NewDate(y, m, d)
	return &v
}

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	root, err := filepath.Abs("../../..")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, filepath.Join(root, "migrations")))
	require.NoError(t, CheckDatabaseReady(ctx, storage))

	return storage
}
