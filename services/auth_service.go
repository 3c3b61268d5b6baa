package services

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
	"golang.org/x/crypto/bcrypt"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = time.Hour

// AuthService handles registration, login and token revocation
type AuthService struct {
	users    repositories.UserRepository
	denylist *TokenDenylist
}

// NewAuthService creates a new auth service instance
func NewAuthService(users repositories.UserRepository, denylist *TokenDenylist) *AuthService {
	return &AuthService{users: users, denylist: denylist}
}

// Register creates a new account with the default RegisterUser role
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
	existing, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	existing, err = s.users.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleRegisterUser,
	}

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login authenticates by username or email and returns a signed token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.users.GetByEmail(req.Username)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := GenerateToken(user)
	if err != nil {
		return nil, err
	}

	// Clear password from response
	responseUser := *user
	responseUser.Password = ""

	return &dto.AuthResponse{
		Token:     token,
		User:      responseUser,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		// An invalid or expired token needs no revocation.
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.denylist.Revoke(ctx, claims.ID, ttl)
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(user *models.User) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	now := time.Now()
	expiresAt := now.Add(TokenLifetime)

	claims := dto.TokenClaims{
		Username: user.Username,
		Email:    user.Email,
		Roles:    []string{string(user.Role)},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			Issuer:    os.Getenv("JWT_ISSUER"),
			Audience:  jwt.ClaimStrings{os.Getenv("JWT_AUDIENCE")},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	opts := []jwt.ParserOption{}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience := os.Getenv("JWT_AUDIENCE"); audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	}, opts...)

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
