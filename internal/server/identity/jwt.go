package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"photofolio/internal/common"
)

// Claims carries the registered claims plus the avatar URL the identity
// provider attaches to its session tokens. The principal id lives in Subject.
type Claims struct {
	jwt.RegisteredClaims
	AvatarURL string `json:"avatar_url,omitempty"`
}

// GenerateToken mints an HS256 session token. Used by tests and local
// tooling; production tokens come from the identity provider.
func GenerateToken(principal *Principal, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		AvatarURL: principal.AvatarURL,
	})
	return token.SignedString(secretKey)
}

// PrincipalFromToken verifies a session token and extracts the principal.
func PrincipalFromToken(tokenString string, secretKey []byte) (*Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return &Principal{ID: claims.Subject, AvatarURL: claims.AvatarURL}, nil
}
