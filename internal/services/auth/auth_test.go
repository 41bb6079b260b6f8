package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customjwt "github.com/magabrotheeeer/payments-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/password"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
	"github.com/magabrotheeeer/payments-tracker/internal/services/auth"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateTokenPair(userID int64, username string) (string, string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *JwtMakerMock) GenerateAccessToken(userID int64, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string, want customjwt.TokenType) (*customjwt.CustomClaims, error) {
	args := m.Called(token, want)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func TestService_Login(t *testing.T) {
	hash, err := password.GetHash("correct")
	require.NoError(t, err)

	active := &models.User{ID: 1, Username: "admin", PasswordHash: hash, IsActive: true}
	inactive := &models.User{ID: 2, Username: "old", PasswordHash: hash, IsActive: false}

	tests := []struct {
		name        string
		username    string
		password    string
		setupMocks  func(r *UserRepoMock, j *JwtMakerMock)
		wantAccess  string
		wantRefresh string
		wantErr     error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "correct",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "admin").Return(active, nil).Once()
				j.On("GenerateTokenPair", int64(1), "admin").Return("access", "refresh", nil).Once()
			},
			wantAccess:  "access",
			wantRefresh: "refresh",
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "correct",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, models.ErrNotFound).Once()
			},
			wantErr: models.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "wrong",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "admin").Return(active, nil).Once()
			},
			wantErr: models.ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			username: "old",
			password: "correct",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "old").Return(inactive, nil).Once()
			},
			wantErr: models.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			tt.setupMocks(repo, jwtMock)
			svc := auth.NewService(repo, jwtMock, sl.Discard())

			access, refresh, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, access)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAccess, access)
				assert.Equal(t, tt.wantRefresh, refresh)
			}
			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestService_Refresh(t *testing.T) {
	claims := &customjwt.CustomClaims{UserID: 5, Username: "fin", TokenType: customjwt.RefreshToken}

	t.Run("issues new access token", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		jwtMock.On("ParseToken", "refresh", customjwt.RefreshToken).Return(claims, nil).Once()
		repo.On("GetUser", mock.Anything, int64(5)).Return(&models.User{ID: 5, Username: "fin", IsActive: true}, nil).Once()
		jwtMock.On("GenerateAccessToken", int64(5), "fin").Return("new-access", nil).Once()

		svc := auth.NewService(repo, jwtMock, sl.Discard())
		access, err := svc.Refresh(context.Background(), "refresh")
		require.NoError(t, err)
		assert.Equal(t, "new-access", access)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		jwtMock := new(JwtMakerMock)
		jwtMock.On("ParseToken", "bad", customjwt.RefreshToken).Return(nil, errors.New("token is expired")).Once()

		svc := auth.NewService(new(UserRepoMock), jwtMock, sl.Discard())
		_, err := svc.Refresh(context.Background(), "bad")
		assert.True(t, errors.Is(err, models.ErrInvalidToken))
	})

	t.Run("user deactivated after issue", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		jwtMock.On("ParseToken", "refresh", customjwt.RefreshToken).Return(claims, nil).Once()
		repo.On("GetUser", mock.Anything, int64(5)).Return(&models.User{ID: 5, IsActive: false}, nil).Once()

		svc := auth.NewService(repo, jwtMock, sl.Discard())
		_, err := svc.Refresh(context.Background(), "refresh")
		assert.True(t, errors.Is(err, models.ErrInvalidToken))
	})
}

func TestService_Authenticate(t *testing.T) {
	claims := &customjwt.CustomClaims{UserID: 1, Username: "admin", TokenType: customjwt.AccessToken}

	tests := []struct {
		name       string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantErr    error
		wantOther  bool
	}{
		{
			name: "valid token",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "tok", customjwt.AccessToken).Return(claims, nil).Once()
				r.On("GetUser", mock.Anything, int64(1)).Return(&models.User{ID: 1, IsActive: true}, nil).Once()
			},
		},
		{
			name: "user deleted",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "tok", customjwt.AccessToken).Return(claims, nil).Once()
				r.On("GetUser", mock.Anything, int64(1)).Return(nil, models.ErrNotFound).Once()
			},
			wantErr: models.ErrInvalidToken,
		},
		{
			name: "refresh token used as access",
			setupMocks: func(_ *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "tok", customjwt.AccessToken).Return(nil, customjwt.ErrWrongTokenType).Once()
			},
			wantErr: models.ErrInvalidToken,
		},
		{
			name: "database error is not a token error",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "tok", customjwt.AccessToken).Return(claims, nil).Once()
				r.On("GetUser", mock.Anything, int64(1)).Return(nil, errors.New("db down")).Once()
			},
			wantOther: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			tt.setupMocks(repo, jwtMock)
			svc := auth.NewService(repo, jwtMock, sl.Discard())

			user, err := svc.Authenticate(context.Background(), "tok")
			switch {
			case tt.wantOther:
				require.Error(t, err)
				assert.False(t, errors.Is(err, models.ErrInvalidToken))
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(1), user.ID)
			}
		})
	}
}
