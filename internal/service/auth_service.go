package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"poke_explorer/internal/models"
	"poke_explorer/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long an issued session token stays valid.
const DefaultTokenTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// AuthService handles registration, login and token verification.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(users repository.Users, signingKey []byte, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		users:      users,
		signingKey: signingKey,
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Register creates a user with a bcrypt hash of password and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.AuthResult{}, validationErr(msgCredentialsRequired)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.AuthResult{}, infraErr(msgServerError, err)
	}
	if existing != nil {
		return models.AuthResult{}, conflictErr(msgUserExists)
	}

	u := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: s.now().UTC(),
	}
	if u.PasswordHash, err = hashPassword(password); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.AuthResult{}, validationErr(msgPasswordTooLong)
		}
		return models.AuthResult{}, infraErr(msgServerError, err)
	}

	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return models.AuthResult{}, conflictErr(msgUserExists)
		}
		return models.AuthResult{}, infraErr(msgServerError, err)
	}

	return s.result(u)
}

// Login verifies credentials. Unknown users and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.AuthResult{}, validationErr(msgCredentialsRequired)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.AuthResult{}, infraErr(msgServerError, err)
	}
	if u == nil {
		return models.AuthResult{}, authErr(msgInvalidCredentials)
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.AuthResult{}, authErr(msgInvalidCredentials)
	}

	return s.result(*u)
}

// ParseToken parses JWT and returns userID
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// ResolveUser loads the user a token points at, without its hash.
// Returns (nil, nil) when the account no longer exists.
func (s *AuthService) ResolveUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, infraErr(msgServerError, err)
	}
	if u == nil {
		return nil, nil
	}
	pub := u.Public()
	return &pub, nil
}

func (s *AuthService) result(u models.User) (models.AuthResult, error) {
	token, err := s.issueToken(u.ID)
	if err != nil {
		return models.AuthResult{}, infraErr(msgServerError, err)
	}
	return models.AuthResult{ID: u.ID, Username: u.Username, Token: token}, nil
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
