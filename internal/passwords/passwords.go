package passwords

import "golang.org/x/crypto/bcrypt"

// Hash generates a salted bcrypt digest for the given plaintext. The same
// plaintext yields a different digest on every call.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

// Verify reports whether plain matches the stored digest. A malformed digest
// simply fails verification rather than surfacing an error.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
