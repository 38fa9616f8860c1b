package util

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT creates a token for a vendor account. The admin flag rides in
// the claims so middleware does not need a vendor lookup.
func GenerateJWT(vendorID, vendorName string, isAdmin bool, secret string) (string, error) {
	claims := jwt.MapClaims{
		"vendor_id":   vendorID,
		"vendor_name": vendorName,
		"is_admin":    isAdmin,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT validates a token and extracts the vendor id and admin flag.
func ParseJWT(tokenStr, secret string) (string, bool, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", false, err
	}

	if !token.Valid {
		return "", false, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false, jwt.ErrTokenMalformed
	}

	vendorID, ok := claims["vendor_id"].(string)
	if !ok || vendorID == "" {
		return "", false, jwt.ErrTokenMalformed
	}

	isAdmin, _ := claims["is_admin"].(bool)
	return vendorID, isAdmin, nil
}

func ExtractToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}
