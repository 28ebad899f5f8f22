package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog-list/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerScheme = "Bearer"

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrEmptyTokenIdentity = errors.New("token carries no user id")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the identity.
//
// The token carries the identity (id, username) together with the issuer,
// the subject (= id) and the issue time. An expiry claim is added only when
// tokenDuration is positive; zero issues a token that never expires.
func GenerateJWTToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" || identity.IsZero() || tokenDuration < 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  identity.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID:   identity.ID,
		Username: identity.Username,
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature (HS256 only), the issuer
// and, when present, the expiry of tokenString, and returns the decoded
// token. jwt sentinel errors (jwt.ErrTokenExpired, jwt.ErrTokenMalformed,
// jwt.ErrTokenSignatureInvalid, ...) are preserved in the error chain.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, ErrEmptyTokenIdentity
	}

	return models.Token{Token: token, TokenClaims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
//
// ok is false when the header does not use the Bearer scheme (including an
// empty header); such requests are anonymous. When ok is true the returned
// token may still be empty, which callers must treat as an invalid token.
func ParseBearerToken(authorizationHeader string) (token string, ok bool) {
	if authorizationHeader == bearerScheme {
		return "", true
	}

	rest, found := strings.CutPrefix(authorizationHeader, bearerScheme+" ")
	if !found {
		return "", false
	}

	return strings.TrimSpace(rest), true
}
