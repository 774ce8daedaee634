package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification: bad
// signature, malformed structure, or expiry. Callers must not distinguish
// these cases to the end user.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies signed bearer tokens
type TokenService struct {
	secretKey []byte
	issuer    string
	tokenTTL  time.Duration
}

// TokenConfig holds token service configuration
type TokenConfig struct {
	// Secret is the signing key. When empty, a random key is generated once
	// and persisted via the settings store.
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// DefaultTokenConfig returns default token configuration
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		Issuer:   "fittrackd",
		TokenTTL: 30 * time.Minute,
	}
}

// SettingsStore persists generated secrets across restarts
type SettingsStore interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// generateSecretKey generates a random 256-bit secret key
func generateSecretKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// NewTokenService creates a token service. A secret configured explicitly
// wins; otherwise an existing persisted secret is reused, and a new one is
// generated and persisted on first start.
func NewTokenService(cfg TokenConfig, settings SettingsStore) (*TokenService, error) {
	secret := cfg.Secret
	if secret == "" && settings != nil {
		stored, err := settings.GetSetting("jwt_secret")
		if err == nil && stored != "" {
			secret = stored
		}
	}
	if secret == "" {
		generated, err := generateSecretKey()
		if err != nil {
			return nil, err
		}
		secret = generated
		if settings != nil {
			if err := settings.SetSetting("jwt_secret", secret); err != nil {
				return nil, fmt.Errorf("failed to persist secret key: %w", err)
			}
		}
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenConfig().TokenTTL
	}

	return &TokenService{
		secretKey: []byte(secret),
		issuer:    cfg.Issuer,
		tokenTTL:  ttl,
	}, nil
}

// GenerateToken generates a signed token for the given user id, expiring
// after the configured TTL.
func (s *TokenService) GenerateToken(userID int64) (string, error) {
	now := time.Now().UTC()

	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Issuer:    s.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken verifies the token's signature and expiry and returns the
// user id it was issued for. Every failure mode collapses into
// ErrInvalidToken.
func (s *TokenService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

// TokenTTL returns the configured token lifetime
func (s *TokenService) TokenTTL() time.Duration {
	return s.tokenTTL
}
