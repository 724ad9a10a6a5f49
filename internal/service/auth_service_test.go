package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"sipengawas/internal/auth"
	"sipengawas/internal/errors"
	"sipengawas/internal/model"
)

// MockStore is a mock implementation of store.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockStore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockStore) GetSchools(ctx context.Context, userID string) ([]model.School, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.School), args.Error(1)
}

func (m *MockStore) CreateSchool(ctx context.Context, school *model.School) (*model.School, error) {
	args := m.Called(ctx, school)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.School), args.Error(1)
}

func (m *MockStore) DeleteSchool(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) GetTasks(ctx context.Context, userID string) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockStore) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockStore) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (*model.Task, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockStore) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) GetSupervisions(ctx context.Context, userID string) ([]model.Supervision, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Supervision), args.Error(1)
}

func (m *MockStore) GetSupervisionsBySchool(ctx context.Context, userID, schoolID string) ([]model.Supervision, error) {
	args := m.Called(ctx, userID, schoolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Supervision), args.Error(1)
}

func (m *MockStore) CreateSupervision(ctx context.Context, sup *model.Supervision) (*model.Supervision, error) {
	args := m.Called(ctx, sup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Supervision), args.Error(1)
}

func (m *MockStore) DeleteSupervision(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) GetAdditionalTasks(ctx context.Context, userID string) ([]model.AdditionalTask, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdditionalTask), args.Error(1)
}

func (m *MockStore) CreateAdditionalTask(ctx context.Context, task *model.AdditionalTask) (*model.AdditionalTask, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdditionalTask), args.Error(1)
}

func (m *MockStore) DeleteAdditionalTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) GetMonthlyStats(ctx context.Context, userID string, year, month int) (*model.MonthlyStats, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MonthlyStats), args.Error(1)
}

func (m *MockStore) GetYearlyStats(ctx context.Context, userID string, year int) (*model.YearlyStats, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.YearlyStats), args.Error(1)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, role string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, role, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		fullName      string
		role          string
		setupMock     func(*MockStore, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "budi",
			password: "rahasia1",
			fullName: "Budi Santoso",
			setupMock: func(mStore *MockStore, mToken *MockTokenStore) {
				mStore.On("GetUserByUsername", mock.Anything, "budi").Return(nil, errors.ErrUserNotFound)
				mStore.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).Return(&model.User{
					ID:       "user-1",
					Username: "budi",
					FullName: "Budi Santoso",
					Role:     model.RolePengawas,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, "user-1", model.RolePengawas, mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "username already taken",
			username: "budi",
			password: "rahasia1",
			fullName: "Budi Santoso",
			setupMock: func(mStore *MockStore, mToken *MockTokenStore) {
				mStore.On("GetUserByUsername", mock.Anything, "budi").Return(&model.User{Username: "budi"}, nil)
			},
			expectedError: errors.ErrUsernameTaken,
		},
		{
			name:          "reserved username",
			username:      "admin",
			password:      "rahasia1",
			fullName:      "Pretender",
			setupMock:     func(mStore *MockStore, mToken *MockTokenStore) {},
			expectedError: errors.ErrUsernameReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockStore)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockStore, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockStore, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Register(context.Background(), tt.username, tt.password, tt.fullName, tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}

			mockStore.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	mockStore := new(MockStore)
	mockTokenStore := new(MockTokenStore)

	mockStore.On("GetUserByUsername", mock.Anything, "budi").Return(nil, errors.ErrUserNotFound)
	mockStore.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// The stored password must be a valid bcrypt hash, never plaintext.
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("rahasia1")) == nil
	})).Return(&model.User{ID: "user-1", Username: "budi"}, nil)
	mockTokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, "user-1", "", mock.Anything).Return(nil)

	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(mockStore, jwtService, mockTokenStore)

	_, _, _, err := service.Register(context.Background(), "budi", "rahasia1", "Budi Santoso", "")
	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("rahasia1"), 10)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockStore, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "budi",
			password: "rahasia1",
			setupMock: func(mStore *MockStore, mToken *MockTokenStore) {
				mStore.On("GetUserByUsername", mock.Anything, "budi").Return(&model.User{
					ID:       "user-1",
					Username: "budi",
					Password: string(hashedPassword),
					Role:     model.RolePengawas,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, "user-1", model.RolePengawas, mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "rahasia1",
			setupMock: func(mStore *MockStore, mToken *MockTokenStore) {
				mStore.On("GetUserByUsername", mock.Anything, "nobody").Return(nil, errors.ErrUserNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "budi",
			password: "salah",
			setupMock: func(mStore *MockStore, mToken *MockTokenStore) {
				mStore.On("GetUserByUsername", mock.Anything, "budi").Return(&model.User{
					ID:       "user-1",
					Username: "budi",
					Password: string(hashedPassword),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockStore)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockStore, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockStore, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}

			mockStore.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken("user-1", model.RolePengawas)
	assert.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		setupMock     func(*MockTokenStore)
		expectedError error
	}{
		{
			name:  "valid refresh token",
			token: refreshToken,
			setupMock: func(mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("user-1", model.RolePengawas, nil)
			},
			expectedError: nil,
		},
		{
			name:          "malformed token",
			token:         "not-a-token",
			setupMock:     func(mToken *MockTokenStore) {},
			expectedError: errors.ErrInvalidRefreshToken,
		},
		{
			name:  "token unknown to the store",
			token: refreshToken,
			setupMock: func(mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("", "", assert.AnError)
			},
			expectedError: errors.ErrInvalidRefreshToken,
		},
		{
			name:  "stored identity does not match claims",
			token: refreshToken,
			setupMock: func(mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("someone-else", model.RolePengawas, nil)
			},
			expectedError: errors.ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockTokenStore)

			service := NewAuthService(new(MockStore), jwtService, mockTokenStore)
			accessToken, err := service.Refresh(context.Background(), tt.token)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
			}

			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken("user-1", model.RolePengawas)
	assert.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	service := NewAuthService(new(MockStore), jwtService, mockTokenStore)

	assert.NoError(t, service.Logout(context.Background(), refreshToken))
	assert.ErrorIs(t, service.Logout(context.Background(), "garbage"), errors.ErrInvalidRefreshToken)

	mockTokenStore.AssertExpectations(t)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	t.Run("creates admin when missing", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("GetUserByUsername", mock.Anything, "admin").Return(nil, errors.ErrUserNotFound)
		mockStore.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "admin" && u.Role == model.RoleAdmin
		})).Return(&model.User{ID: "admin-1", Username: "admin", Role: model.RoleAdmin}, nil)

		service := NewAuthService(mockStore, auth.NewJWTService("test-secret"), new(MockTokenStore))
		assert.NoError(t, service.EnsureAdmin(context.Background()))
		mockStore.AssertExpectations(t)
	})

	t.Run("noop when admin exists", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("GetUserByUsername", mock.Anything, "admin").Return(&model.User{Username: "admin"}, nil)

		service := NewAuthService(mockStore, auth.NewJWTService("test-secret"), new(MockTokenStore))
		assert.NoError(t, service.EnsureAdmin(context.Background()))
		mockStore.AssertExpectations(t)
	})
}
