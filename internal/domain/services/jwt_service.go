package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/internal/infrastructure/config"
)

// Claims are the JWT claims carried by a dashboard session token
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// InterfaceJWTService issues and validates session tokens
type InterfaceJWTService interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// JWTService implements InterfaceJWTService
type JWTService struct {
	secretKey []byte
	expiry    time.Duration
}

// NewJWTService creates a JWTService
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: []byte(cfg.JWTSecretKey),
		expiry:    24 * time.Hour,
	}
}

// GenerateToken issues a signed token for a user
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "gateapp-http-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken parses and verifies a token, returning its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
