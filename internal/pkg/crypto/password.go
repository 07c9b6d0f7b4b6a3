// Package crypto wraps password hashing so the rest of the codebase never
// touches bcrypt directly.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way hash from a plaintext password.
// bcrypt embeds a random per-call salt, so two hashes of the same input
// differ.
func HashPassword(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. The
// comparison inside bcrypt is constant-time. A malformed stored hash fails
// closed: the function returns false, never an error.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
