package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs a session token carrying the user id.
func GenerateJWT(userID string, secret string, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT returns the user id from the token string if valid.
// Expired, tampered or non-HMAC tokens all fail.
func ParseJWT(tokenStr string, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenMalformed
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", jwt.ErrTokenMalformed
	}
	return userID, nil
}
