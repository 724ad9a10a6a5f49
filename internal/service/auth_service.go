package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"sipengawas/internal/auth"
	"sipengawas/internal/errors"
	"sipengawas/internal/model"
	"sipengawas/internal/store"
)

const bcryptCost = 10

// reservedUsernames cannot be taken through self-registration.
var reservedUsernames = map[string]bool{"admin": true}

// AuthService handles registration, login and token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password, fullName, role string) (accessToken, refreshToken string, user *model.User, err error)
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, user *model.User, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	GetUser(ctx context.Context, userID string) (*model.User, error)
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	store      store.Store
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(st store.Store, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		store:      st,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register creates a new user with a hashed password and returns a signed-in
// session. Username uniqueness is enforced here, not in the store.
func (s *authService) Register(ctx context.Context, username, password, fullName, role string) (string, string, *model.User, error) {
	if reservedUsernames[username] {
		return "", "", nil, errors.ErrUsernameReserved
	}

	existing, err := s.store.GetUserByUsername(ctx, username)
	if err == nil && existing != nil {
		return "", "", nil, errors.ErrUsernameTaken
	}
	if err != nil && !stderrors.Is(err, errors.ErrUserNotFound) {
		return "", "", nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", "", nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, &model.User{
		Username: username,
		Password: string(hashed),
		FullName: fullName,
		Role:     role,
	})
	if err != nil {
		return "", "", nil, err
	}

	return s.issueTokens(ctx, user)
}

// Login authenticates a user and returns access and refresh tokens. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, string, *model.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (string, string, *model.User, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Role, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return "", errors.ErrInvalidRefreshToken
	}

	storedUserID, storedRole, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}
	if storedUserID != claims.UserID || storedRole != claims.Role {
		return "", errors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return errors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, claims.ID)
}

// GetUser returns the user behind an authenticated session.
func (s *authService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.GetUser(ctx, userID)
}

// EnsureAdmin seeds the default administrator account on first start.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if _, err := s.store.GetUserByUsername(ctx, "admin"); err == nil {
		return nil
	} else if !stderrors.Is(err, errors.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.store.CreateUser(ctx, &model.User{
		Username: "admin",
		Password: string(hashed),
		FullName: "Administrator",
		Role:     model.RoleAdmin,
	}); err != nil {
		return err
	}
	log.Println("admin user created")
	return nil
}
