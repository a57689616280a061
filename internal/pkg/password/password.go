package password

import (
	"foodshare/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is the longest input bcrypt accepts.
const MaxBytes = 72

const DefaultCost = bcrypt.DefaultCost

var (
	ErrEmpty    = errs.Mark(errs.New("password is required"), errs.ErrValidation)
	ErrTooLong  = errs.Mark(errs.New("password must be at most 72 bytes"), errs.ErrValidation)
	ErrMismatch = errs.New("password does not match")
)

func Hash(plain string) (string, error) {
	return HashWithCost(plain, DefaultCost)
}

// HashWithCost lets fixtures use bcrypt.MinCost.
func HashWithCost(plain string, cost int) (string, error) {
	if err := checkLength(plain); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(hashed), nil
}

// Compare returns ErrMismatch for a wrong password and a wrapped error for a
// stored hash bcrypt cannot read.
func Compare(hashed, plain string) error {
	if hashed == "" {
		return errs.New("stored password hash is empty")
	}
	if err := checkLength(plain); err != nil {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "bcrypt compare")
	}
}

func checkLength(plain string) error {
	switch {
	case plain == "":
		return ErrEmpty
	case len(plain) > MaxBytes:
		return ErrTooLong
	default:
		return nil
	}
}
