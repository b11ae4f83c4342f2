package crypto

import (
	"fmt"
	"time"

	"github.com/MKhiriev/my-gram/internal/utils"
	"github.com/MKhiriev/my-gram/models"
)

// JWTTokenManager implements TokenManager with HS256-signed JWTs.
type JWTTokenManager struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewJWTTokenManager builds a token manager from the signing secret, the
// expected "iss" claim and the token lifetime.
func NewJWTTokenManager(signKey, issuer string, duration time.Duration) *JWTTokenManager {
	return &JWTTokenManager{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
	}
}

// Sign issues a token carrying userID as its only custom claim.
func (m *JWTTokenManager) Sign(userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(m.issuer, userID, m.duration, m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing token: %w", err)
	}
	return token, nil
}

// Verify validates tokenString; all failures collapse into ErrInvalidToken
// with the cause attached.
func (m *JWTTokenManager) Verify(tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrInvalidToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, m.signKey, m.issuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token, nil
}
