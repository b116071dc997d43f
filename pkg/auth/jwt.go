package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/appdotbuilder/hacker-chat/config"
	appErrors "github.com/appdotbuilder/hacker-chat/pkg/errors"
)

// Claims is the payload stored inside access and refresh tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateJWTToken issues a signed access token and a longer-lived refresh
// token for the user. Lifetimes come from the JWT section of the config.
func GenerateJWTToken(userID, username string, cfg *config.Config) (token string, refreshToken string, err error) {
	token, err = sign(userID, username, cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiredIn)*time.Minute)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = sign(userID, username, cfg.JWT.Secret,
		time.Duration(cfg.JWT.RefreshExpiredIn)*time.Minute)
	if err != nil {
		return "", "", err
	}

	return token, refreshToken, nil
}

func sign(userID, username, secret string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "hacker-chat",
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateToken parses and validates the signature and expiration of a JWT.
func ValidateToken(tokenString string, cfg *config.Config) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.ErrInvalidToken
	}
	return claims, nil
}
