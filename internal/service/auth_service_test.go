package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_qa_backend/internal/config"
	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

func testAuthService(t *testing.T) (*AuthService, *config.Config) {
	t.Helper()
	db := setupTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg), cfg
}

func TestRegisterAndLogin(t *testing.T) {
	svc, cfg := testAuthService(t)

	user, err := svc.Register(RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Name:     "Alice Liang",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.RoleStudent), user.Roles)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	token, err := svc.Login("alice", "secret123")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleStudent, claims.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Register(RegisterRequest{Username: "alice", Password: "secret123", Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterRequest{Username: "alice", Password: "other456", Name: "B", Email: "b@example.com"})
	assert.ErrorIs(t, err, util.ErrConflict)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Register(RegisterRequest{Username: "alice", Password: "secret123", Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	assert.True(t, svc.CheckCredentials("alice", "secret123"))
	assert.False(t, svc.CheckCredentials("alice", "wrong"))
}
