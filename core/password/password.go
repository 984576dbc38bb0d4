package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashingFailed is returned when the underlying hash primitive fails,
// which in practice only happens for passwords above the bcrypt input limit.
var ErrHashingFailed = errors.New("failed to hash password")

// dummyHash is a valid bcrypt hash of a random value. Verifying against it
// when a user lookup fails keeps login timing independent of account
// existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash produces a self-describing salted bcrypt hash of the password.
// The salt is random, so hashing the same password twice never yields the
// same output.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash.
// Malformed hashes return false rather than an error: a corrupt stored
// hash must read as "wrong password", never as a recoverable condition.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDummy burns a bcrypt comparison against a throwaway hash.
// Call it on the no-such-user path so login failures take the same time
// whether or not the account exists.
func VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
