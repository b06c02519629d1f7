package users_test

import (
	"context"
	"testing"

	mem "vet-clinic-api/internal/adapters/storage/memory"
	"vet-clinic-api/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create_HashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := users.NewService(mem.NewUserRepo())

	u, err := svc.Create(ctx, users.CreateInput{
		Username: "drgarcia",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
	assert.True(t, users.CheckPassword(u, "s3cret-pass"))
	assert.False(t, users.CheckPassword(u, "wrong-pass"))
}

func TestService_Create_RejectsShortPassword(t *testing.T) {
	ctx := context.Background()
	svc := users.NewService(mem.NewUserRepo())

	_, err := svc.Create(ctx, users.CreateInput{
		Username: "drgarcia",
		Password: "short",
	})
	assert.ErrorIs(t, err, users.ErrInvalidInput)
}

func TestService_Create_UsernameUnique(t *testing.T) {
	ctx := context.Background()
	svc := users.NewService(mem.NewUserRepo())

	_, err := svc.Create(ctx, users.CreateInput{
		Username: "drgarcia",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, users.CreateInput{
		Username: "  drgarcia  ", // mismo username tras trim
		Password: "otro-pass-123",
	})
	assert.ErrorIs(t, err, users.ErrUsernameTaken)
}
