package security

import (
	"fmt"
	"strings"
	"time"

	"fitastic/internal/common"
	"fitastic/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// GenerateAccessToken signs a short-lived token carrying the username as
// subject. TTLs come from configuration, never hardcoded.
func GenerateAccessToken(username string) (string, error) {
	return generateToken(username, TokenTypeAccess, config.AppConfig.AccessTokenTTL)
}

func GenerateRefreshToken(username string) (string, error) {
	return generateToken(username, TokenTypeRefresh, config.AppConfig.RefreshTokenTTL)
}

func generateToken(username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"typ": tokenType,
		"jti": uuid.NewString(), // tokens issued within the same second must still differ
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// ExtractSubject verifies the signature and expiry of a raw token and returns
// the username it was issued for. A token that fails signature, structure or
// expiry checks is rejected as unauthorized.
func ExtractSubject(raw string) (string, error) {
	token, err := jwtauth.VerifyToken(TokenAuth, raw)
	if err != nil {
		return "", fmt.Errorf("malformed token: %w", common.ErrUnauthorized)
	}
	subject := token.Subject()
	if subject == "" {
		return "", fmt.Errorf("token has no subject: %w", common.ErrUnauthorized)
	}
	return subject, nil
}

// BearerToken strips the "Bearer " scheme from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return raw, raw != ""
}
