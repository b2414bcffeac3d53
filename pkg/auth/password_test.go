package auth_test

import (
	"testing"

	"janseva/pkg/auth"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, auth.CheckPasswordHash("s3cret-pass", hash))
	require.False(t, auth.CheckPasswordHash("wrong-pass", hash))
}
