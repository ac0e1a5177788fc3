package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plateful/restaurant-admin/internal/httperr"
	"github.com/plateful/restaurant-admin/internal/models"
)

// Claims is what a resolved bearer token proves: who the subject is and
// which role they carry.
type Claims struct {
	Email string
	Role  models.Role
}

func IssueToken(secret, email string, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ResolveToken verifies signature and expiry and extracts the subject
// claims. Any failure collapses into invalid_credentials.
func ResolveToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	email, ok := mapClaims["sub"].(string)
	if !ok || email == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	role, _ := mapClaims["role"].(string)

	return &Claims{Email: email, Role: models.Role(role)}, nil
}
