package util

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt cost parameter. 12 is a good default for production.
const BcryptCost = 12

// HashPasswordBcrypt returns a bcrypt hash of the given plaintext password.
// Store the returned string in your DB (it already includes salt).
func HashPasswordBcrypt(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePasswordBcrypt returns nil if the plaintext password matches the bcrypt hash.
func ComparePasswordBcrypt(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateOTP returns a numeric one-time code used by the password-reset flow.
func GenerateOTP(digits int) (string, error) {
	if digits <= 0 {
		digits = 6
	}
	b := make([]byte, digits)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	otp := ""
	for _, v := range b {
		otp += fmt.Sprintf("%d", int(v)%10)
	}
	return otp, nil
}
