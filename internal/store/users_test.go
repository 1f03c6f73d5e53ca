// ABOUTME: Tests for user persistence
// ABOUTME: Covers creation, duplicate emails, and lookup by id/email

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := &User{
		Name:         "Al",
		Email:        "a@b.com",
		PasswordHash: "$2a$10$fakehash",
	}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &User{Name: "Al", Email: "a@b.com", PasswordHash: "hash1"}
	require.NoError(t, s.CreateUser(ctx, first))

	second := &User{Name: "Other Al", Email: "a@b.com", PasswordHash: "hash2"}
	err := s.CreateUser(ctx, second)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetUserByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := &User{Name: "Al", Email: "a@b.com", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Al", got.Name)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}
