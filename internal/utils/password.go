package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the rest of the deployment was
// provisioned for; raising it invalidates no stored hashes but slows login.
const bcryptCost = 10

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored bcrypt digest.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
