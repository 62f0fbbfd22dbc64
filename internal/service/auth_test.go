package service

import (
	"context"
	"testing"

	"fittrack/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthService(store.NewMem())

	u, err := auth.Register(ctx, "mara", "s3cret", "Mara")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "s3cret", u.Password)

	got, err := auth.Login(ctx, "mara", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = auth.Login(ctx, "mara", "wrong")
	assert.Error(t, err)
	_, err = auth.Login(ctx, "nobody", "s3cret")
	assert.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthService(store.NewMem())

	_, err := auth.Register(ctx, "", "pw", "")
	assert.ErrorIs(t, err, store.ErrInvalidArgument)

	_, err = auth.Register(ctx, "mara", "pw", "")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "mara", "pw2", "")
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}
