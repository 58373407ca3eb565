// Package auth carries the admin principal through a request context.
package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type ctxKey struct{}

// WithAdmin marks ctx as belonging to an authenticated admin session.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, true)
}

func IsAdmin(ctx context.Context) bool {
	ok, _ := ctx.Value(ctxKey{}).(bool)
	return ok
}

var ErrNoPasswordConfigured = errors.New("admin password hash is not configured")

// PasswordVerifier checks the admin password against a bcrypt hash.
type PasswordVerifier struct {
	hash []byte
}

func NewPasswordVerifier(hash string) *PasswordVerifier {
	return &PasswordVerifier{hash: []byte(hash)}
}

func (v *PasswordVerifier) Verify(password string) (bool, error) {
	if len(v.hash) == 0 {
		return false, ErrNoPasswordConfigured
	}

	err := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
