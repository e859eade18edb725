package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func passwordManager() *PasswordManager {
	return NewPasswordManager(&config.Config{
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	})
}

func TestPasswordManager_HashAndVerify(t *testing.T) {
	manager := passwordManager()

	hash, err := manager.HashPassword("Sungg1ngAman")
	require.NoError(t, err)
	assert.NotEqual(t, "Sungg1ngAman", hash)

	assert.NoError(t, manager.VerifyPassword("Sungg1ngAman", hash))
	assert.Error(t, manager.VerifyPassword("wrong-password", hash))
}

func TestPasswordManager_ValidatePassword(t *testing.T) {
	manager := passwordManager()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Sungg1ngAman", false},
		{"too short", "Ab1", true},
		{"no uppercase", "sungg1ngaman", true},
		{"no lowercase", "SUNGG1NGAMAN", true},
		{"no number", "SunggingAman", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := manager.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
