package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL matches the 7-day client-side persistence of the login payload.
const TokenTTL = 7 * 24 * time.Hour

type Claims struct {
	Profile struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"profile"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// NewToken signs an HS256 token for the user and returns it with its
// expiry unix timestamp.
func NewToken(key []byte, userID, name, email string) (string, int64, error) {
	expiresAt := time.Now().Add(TokenTTL)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	claims.Profile.Name = name
	claims.Profile.Email = email

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt.Unix(), nil
}
