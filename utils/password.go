package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a password into its stored form and checks a
// candidate against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// PlainHasher stores passwords verbatim. It is the default because existing
// rows and clients expect plaintext; switch to bcrypt with PASSWORD_SCHEME.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (PlainHasher) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// MaxBcryptPasswordBytes is the longest input bcrypt accepts.
const MaxBcryptPasswordBytes = 72

// ErrPasswordTooLong is returned by hashers that cannot store the given password.
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxBcryptPasswordBytes {
		return "", ErrPasswordTooLong
	}
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (BcryptHasher) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewPasswordHasher returns the hasher for a PASSWORD_SCHEME value.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case "", "plain":
		return PlainHasher{}, nil
	case "bcrypt":
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}
