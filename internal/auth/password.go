package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword returns ErrWrongPassword on mismatch, including rows whose
// stored value is not a bcrypt hash.
func ComparePassword(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || !IsHash(hash) {
		return ErrWrongPassword
	}
	return err
}

func IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
