package service

import "golang.org/x/crypto/bcrypt"

// hashPassword returns the one-way bcrypt digest stored in place of the
// plaintext.
func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether plain matches the stored digest. bcrypt's
// comparison is constant-time over the digest.
func verifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
