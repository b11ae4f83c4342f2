package crypto

import "github.com/MKhiriev/my-gram/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plain-text passwords into one-way hashes and checks
// candidates against stored hashes.
//
// Hashes are salted: hashing the same password twice yields different values,
// so the only way to check a password is Compare.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash.
	// A mismatch returns ErrPasswordMismatch; any other error means the hash
	// itself is unusable.
	Compare(hash, password string) error
}

// TokenManager issues and verifies access tokens.
//
// Issued tokens embed only the user id; verification checks the signature,
// issuer and expiry before handing the claims back.
type TokenManager interface {
	// Sign issues a token for the user with the given id.
	Sign(userID int64) (models.Token, error)

	// Verify parses and validates a raw token string.
	// Every failure is reported as ErrInvalidToken.
	Verify(tokenString string) (models.Token, error)
}
