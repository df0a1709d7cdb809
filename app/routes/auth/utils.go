package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccountClaims is the payload of a device token minted for a mobile
// client. The service only validates these tokens; issuing them is a
// provisioning concern (see cmd/add_account).
type AccountClaims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "penn-mobile-secret-key" // Default for development
	}
	return []byte(secret)
}

func GenerateAccountToken(accountID string) (string, error) {
	claims := AccountClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "penn-mobile-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

func ValidateAccountToken(tokenString string) (*AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AccountClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}
