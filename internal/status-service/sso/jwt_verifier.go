package sso

import (
	apperrors "VCS_Status_Monitor/internal/status-service/errors"
	"context"
	"fmt"

	"github.com/golang-jwt/jwt"
)

type jwtVerifier struct {
	secretKey []byte
}

// Verify checks an HS256 token signed with the secret shared with the issuer.
func (j *jwtVerifier) Verify(_ context.Context, tokenString string) (User, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil || !parsedToken.Valid {
		return User{}, fmt.Errorf("jwtVerifier.Verify: %w", apperrors.ErrInvalidToken)
	}
	user := User{
		Subject:           stringClaim(claims, "sub"),
		Name:              stringClaim(claims, "name"),
		PreferredUsername: stringClaim(claims, "preferred_username"),
		Email:             stringClaim(claims, "email"),
		Role:              stringClaim(claims, "role"),
	}
	if exp, ok := claims["exp"].(float64); ok {
		user.ExpiresAt = int64(exp)
	}
	if user.Subject == "" {
		user.Subject = stringClaim(claims, "user_id")
	}
	if user.Subject == "" {
		return User{}, fmt.Errorf("jwtVerifier.Verify: %w: missing subject", apperrors.ErrInvalidToken)
	}
	return user, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

func NewJWTVerifier(secretKey string) Verifier {
	return &jwtVerifier{secretKey: []byte(secretKey)}
}
