package auth

import (
	"testing"

	"fraudguard/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testCredential(t *testing.T, password string) Credential {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return Credential{
		Email:        "ops@example.com",
		PasswordHash: string(hash),
		Role:         "operator",
	}
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(testCredential(t, "correct horse"))

	t.Run("valid credentials", func(t *testing.T) {
		access, refresh, err := svc.Login("ops@example.com", "correct horse")
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		_, claims, err := utils.ParseToken(access)
		require.NoError(t, err)
		assert.Equal(t, "ops@example.com", claims.Email)
		assert.Equal(t, "operator", claims.Role)
		assert.True(t, claims.HasPermission("score:write"))
		assert.False(t, claims.HasPermission("admin:write"))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("ops@example.com", "wrong")
		assert.Error(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login("intruder@example.com", "correct horse")
		assert.Error(t, err)
	})
}

func TestService_Refresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(testCredential(t, "correct horse"))

	_, refresh, err := svc.Login("ops@example.com", "correct horse")
	require.NoError(t, err)

	access, newRefresh, err := svc.Refresh(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)

	_, _, err = svc.Refresh("not-a-token")
	assert.Error(t, err)
}

func TestNewService_DefaultRole(t *testing.T) {
	svc := NewService(Credential{Email: "x@example.com", PasswordHash: "hash"})
	assert.NotNil(t, svc)
}
