package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"photoGallery/internal/auth"
)

func TestAdminContext(t *testing.T) {
	ctx := context.Background()
	require.False(t, auth.IsAdmin(ctx))
	require.True(t, auth.IsAdmin(auth.WithAdmin(ctx)))
}

func TestPasswordVerifier(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	v := auth.NewPasswordVerifier(hash)

	ok, err := v.Verify("s3cret")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = v.Verify("wrong")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = auth.NewPasswordVerifier("").Verify("s3cret")
	require.ErrorIs(t, err, auth.ErrNoPasswordConfigured)
}
