// Package auth implements registration, login, and bearer token
// issue/verify/revoke. Tokens are HS256 JWTs that are additionally persisted,
// so deleting the row revokes a token before its signature expires.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blogapi/apperr"
	"blogapi/models"
	"blogapi/repository"
)

// Claims carries the identity encoded in every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// Result is the payload returned by register/login: the signed token plus a
// user summary with the password hash stripped.
type Result struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

type AuthService struct {
	users      repository.UserRepository
	tokens     repository.TokenRepository
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository,
	secret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register creates a user and logs them straight in.
func (s *AuthService) Register(email, password, name string) (*Result, error) {
	var details []string
	if email == "" {
		details = append(details, "email is required")
	}
	if password == "" {
		details = append(details, "password is required")
	}
	if name == "" {
		details = append(details, "name is required")
	}
	if len(details) > 0 {
		return nil, apperr.Validation("Validation Error", details...)
	}

	existing, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		Role:         models.RoleUser,
		PasswordHash: string(hashed),
	}
	// A concurrent registration can still slip past the lookup above; the
	// unique constraint on email resolves that race as a Conflict.
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}

	return s.GenerateToken(user)
}

// Login verifies credentials. The failure message is identical for unknown
// email and wrong password so accounts cannot be enumerated.
func (s *AuthService) Login(email, password string) (*Result, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Validation Error", "email and password are required")
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	return s.GenerateToken(user)
}

// GenerateToken signs a token for the user and persists the matching record.
func (s *AuthService) GenerateToken(user *models.User) (*Result, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.CreateToken(&models.Token{
		Token:     signed,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	return &Result{Token: signed, User: user.Summary()}, nil
}

// VerifyToken accepts a token only when the signature checks out, a matching
// record still exists, and the record has not expired. A valid signature
// alone is not enough: logout deletes the record and must take effect
// immediately.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	record, err := s.tokens.GetToken(tokenString)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	if !time.Now().Before(record.ExpiresAt) {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	return claims, nil
}

// Logout revokes the token by deleting its record. Unknown tokens are a no-op.
func (s *AuthService) Logout(tokenString string) error {
	return s.tokens.DeleteToken(tokenString)
}
