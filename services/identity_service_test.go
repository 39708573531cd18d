package services

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewIdentityService(newTestDB(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, " bob ", "Bob@Example.com", "hunter2")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "bob@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "hunter2", user.PasswordHash)

	got, err := svc.Authenticate(ctx, "bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := NewIdentityService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob", "bob@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob", "other@example.com", "pw")
	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "username", dup.Field)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	_, err = svc.Register(ctx, "robert", "BOB@example.com", "pw")
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "email", dup.Field)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewIdentityService(newTestDB(t))
	ctx := context.Background()

	for field, args := range map[string][3]string{
		"username": {"", "a@example.com", "pw"},
		"email":    {"a", " ", "pw"},
		"password": {"a", "a@example.com", ""},
	} {
		_, err := svc.Register(ctx, args[0], args[1], args[2])
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestLoadMissingUser(t *testing.T) {
	svc := NewIdentityService(newTestDB(t))
	_, err := svc.Load(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	svc := NewIdentityService(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "root", "root@example.com", "pw"))
	require.NoError(t, svc.EnsureAdmin(ctx, "root2", "root2@example.com", "pw"))

	admin, err := svc.Authenticate(ctx, "root", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	_, err = svc.Authenticate(ctx, "root2", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDuplicateFieldIgnoresUsernameCase(t *testing.T) {
	existing := &models.User{Username: "alice", Email: "alice@example.com"}
	assert.Equal(t, "username", duplicateField(existing, "alice"))
	assert.Equal(t, "username", duplicateField(existing, "Alice"))
	assert.Equal(t, "email", duplicateField(existing, "bob"))
}
