package auth

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

type Service struct {
	repo       *Repository
	jwtService *JWTService
}

// NewService creates a new auth service
func NewService(db *gorm.DB, jwtSecret string) *Service {
	return &Service{
		repo:       NewRepository(db),
		jwtService: NewJWTService(jwtSecret),
	}
}

// Register creates a new user account
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	// Check if email already exists
	exists, err := s.repo.EmailExists(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email already registered")
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("✅ User registered: %s (%s)", user.Email, user.ID.String())

	return s.generateAuthResponse(user)
}

// Login authenticates user with email and password
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	_ = s.repo.UpdateLastLogin(user.ID.String())

	return s.generateAuthResponse(user)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *Service) Refresh(refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	user, err := s.repo.GetUserByRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh token not recognized")
	}
	if user.ID.String() != userID {
		return nil, fmt.Errorf("refresh token mismatch")
	}

	return s.generateAuthResponse(user)
}

// GetUser returns user info for the /auth/me endpoint
func (s *Service) GetUser(userID string) (*UserInfo, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return &UserInfo{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// ValidateToken validates an access token (used by middleware)
func (s *Service) ValidateToken(token string) (*TokenClaims, error) {
	return s.jwtService.ValidateAccessToken(token)
}

func (s *Service) generateAuthResponse(user *User) (*AuthResponse, error) {
	claims := &TokenClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
	}

	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.repo.UpdateRefreshToken(user.ID.String(), refreshToken, refreshExpiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User: &UserInfo{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}
