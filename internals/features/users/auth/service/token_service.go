package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"timetable_backend/internals/configs"
	"timetable_backend/internals/features/users/auth/model"
)

const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// CreateAccessToken signs an HS256 access token carrying the
// identity and staff claims the middleware hydrates from.
func CreateAccessToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserName,
		"is_staff":  u.UserIsStaff,
		"typ":       "access",
		"exp":       time.Now().Add(AccessTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func CreateRefreshToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":  u.UserID.String(),
		"typ": "refresh",
		"exp": time.Now().Add(RefreshTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken validates a refresh token and returns the user id claim.
func ParseRefreshToken(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid refresh token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid refresh claims")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", errors.New("not a refresh token")
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return "", errors.New("refresh token without id")
	}
	return id, nil
}

// TokenExpiry extracts exp from a raw (already verified) token so the
// blacklist knows how long a revoked token must be remembered.
func TokenExpiry(raw string) time.Time {
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Now().Add(AccessTTL)
	}
	if claims, ok := tok.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(AccessTTL)
}
