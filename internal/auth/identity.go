package auth

import (
	"crypto/subtle"

	"github.com/spec-kit/bank-ledger-service/internal/config"
)

// IdentityVerifier reports whether a username/password pair belongs to a
// known identity. Swapping in a multi-user backend only requires a new
// implementation; the token and middleware layers stay untouched.
type IdentityVerifier interface {
	Verify(username, password string) bool
}

// StaticIdentity verifies against the single configured identity. The
// password is held either in plaintext (compared constant-time) or as a
// bcrypt hash.
type StaticIdentity struct {
	username     string
	password     string
	passwordHash string
}

// NewStaticIdentity builds the verifier from auth configuration.
func NewStaticIdentity(cfg config.AuthConfig) *StaticIdentity {
	return &StaticIdentity{
		username:     cfg.Username,
		password:     cfg.Password,
		passwordHash: cfg.PasswordBcrypt,
	}
}

// Verify checks both fields before returning so a mismatch on one does not
// shortcut the comparison of the other.
func (s *StaticIdentity) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	if s.passwordHash != "" {
		passOK = ComparePassword(s.passwordHash, password) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	return userOK && passOK
}
