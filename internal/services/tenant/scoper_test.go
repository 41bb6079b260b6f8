package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payments-tracker/internal/cache"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockRepository) GetTenant(ctx context.Context, id int64) (*models.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockRepository) ListTenants(ctx context.Context) ([]*models.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tenant), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetProfile(ctx context.Context, userID int64) (*models.Profile, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetProfile(ctx context.Context, p *models.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func ptr(v int64) *int64 { return &v }

func TestScoper_Resolve(t *testing.T) {
	own := &models.Tenant{ID: 1, Name: "Admin"}
	other := &models.Tenant{ID: 2, Name: "Clinica"}

	tests := []struct {
		name      string
		principal *models.Principal
		override  string
		setup     func(r *MockRepository)
		want      *models.Tenant
	}{
		{
			name:      "user without profile gets no tenant",
			principal: &models.Principal{UserID: 10},
			setup:     func(_ *MockRepository) {},
			want:      nil,
		},
		{
			name:      "regular user gets bound tenant",
			principal: &models.Principal{UserID: 10, TenantID: ptr(1)},
			setup: func(r *MockRepository) {
				r.On("GetTenant", mock.Anything, int64(1)).Return(own, nil).Once()
			},
			want: own,
		},
		{
			name:      "regular user override is ignored",
			principal: &models.Principal{UserID: 10, TenantID: ptr(1)},
			override:  "2",
			setup: func(r *MockRepository) {
				r.On("GetTenant", mock.Anything, int64(1)).Return(own, nil).Once()
			},
			want: own,
		},
		{
			name:      "superuser override to existing tenant",
			principal: &models.Principal{UserID: 1, IsSuperuser: true, TenantID: ptr(1)},
			override:  "2",
			setup: func(r *MockRepository) {
				r.On("GetTenant", mock.Anything, int64(2)).Return(other, nil).Once()
			},
			want: other,
		},
		{
			name:      "superuser override to missing tenant falls back",
			principal: &models.Principal{UserID: 1, IsSuperuser: true, TenantID: ptr(1)},
			override:  "999",
			setup: func(r *MockRepository) {
				r.On("GetTenant", mock.Anything, int64(999)).Return(nil, models.ErrNotFound).Once()
				r.On("GetTenant", mock.Anything, int64(1)).Return(own, nil).Once()
			},
			want: own,
		},
		{
			name:      "superuser non-numeric override falls back",
			principal: &models.Principal{UserID: 1, IsSuperuser: true, TenantID: ptr(1)},
			override:  "abc",
			setup: func(r *MockRepository) {
				r.On("GetTenant", mock.Anything, int64(1)).Return(own, nil).Once()
			},
			want: own,
		},
		{
			name:      "superuser without profile gets no tenant despite override",
			principal: &models.Principal{UserID: 1, IsSuperuser: true},
			override:  "2",
			setup:     func(*MockRepository) {},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setup(repo)
			s := NewScoper(repo, cache.Noop{}, sl.Discard())

			got, err := s.Resolve(context.Background(), tt.principal, tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestScoper_Resolve_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetTenant", mock.Anything, int64(2)).Return(nil, errors.New("db down")).Once()
	s := NewScoper(repo, cache.Noop{}, sl.Discard())

	_, err := s.Resolve(context.Background(), &models.Principal{IsSuperuser: true, TenantID: ptr(1)}, "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestScoper_Principal(t *testing.T) {
	user := &models.User{ID: 7, Username: "fin", Email: "fin@example.com"}

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(MockRepository)
		c := new(MockCache)
		c.On("GetProfile", mock.Anything, int64(7)).Return(&models.Profile{UserID: 7, TenantID: 3}, true, nil).Once()

		p, err := NewScoper(repo, c, sl.Discard()).Principal(context.Background(), user)
		require.NoError(t, err)
		require.NotNil(t, p.TenantID)
		assert.Equal(t, int64(3), *p.TenantID)
		assert.Equal(t, "fin", p.Username)
		repo.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	})

	t.Run("cache miss loads and stores profile", func(t *testing.T) {
		repo := new(MockRepository)
		c := new(MockCache)
		profile := &models.Profile{UserID: 7, TenantID: 3}
		c.On("GetProfile", mock.Anything, int64(7)).Return(nil, false, nil).Once()
		repo.On("GetProfile", mock.Anything, int64(7)).Return(profile, nil).Once()
		c.On("SetProfile", mock.Anything, profile).Return(nil).Once()

		p, err := NewScoper(repo, c, sl.Discard()).Principal(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, int64(3), *p.TenantID)
		c.AssertExpectations(t)
	})

	t.Run("cache failure falls through to repository", func(t *testing.T) {
		repo := new(MockRepository)
		c := new(MockCache)
		profile := &models.Profile{UserID: 7, TenantID: 3}
		c.On("GetProfile", mock.Anything, int64(7)).Return(nil, false, errors.New("redis down")).Once()
		repo.On("GetProfile", mock.Anything, int64(7)).Return(profile, nil).Once()
		c.On("SetProfile", mock.Anything, profile).Return(errors.New("redis down")).Once()

		p, err := NewScoper(repo, c, sl.Discard()).Principal(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, int64(3), *p.TenantID)
	})

	t.Run("no profile", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProfile", mock.Anything, int64(7)).Return(nil, models.ErrNotFound).Once()

		p, err := NewScoper(repo, cache.Noop{}, sl.Discard()).Principal(context.Background(), user)
		require.NoError(t, err)
		assert.Nil(t, p.TenantID)
	})
}

func TestScoper_ListAndGet(t *testing.T) {
	repo := new(MockRepository)
	tenants := []*models.Tenant{{ID: 2, Name: "A"}, {ID: 1, Name: "B"}}
	repo.On("ListTenants", mock.Anything).Return(tenants, nil).Once()
	repo.On("GetTenant", mock.Anything, int64(5)).Return(nil, models.ErrNotFound).Once()

	s := NewScoper(repo, cache.Noop{}, sl.Discard())
	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tenants, got)

	_, err = s.Get(context.Background(), 5)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
