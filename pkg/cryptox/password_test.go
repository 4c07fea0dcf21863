package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-pepper")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.Equal(t, "m=19456,t=2,p=1", parts[3])

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("samepassword")
	require.NoError(t, err)
	hash2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	argonHash, err := HashPassword("correct-password")
	require.NoError(t, err)
	bcryptHash, err := HashPasswordBcrypt("correct-password", bcrypt.MinCost)
	require.NoError(t, err)

	for name, hash := range map[string]string{"argon2id": argonHash, "bcrypt": bcryptHash} {
		t.Run(name, func(t *testing.T) {
			for _, wrong := range []string{"wrong-password", "Correct-Password", "correct-password ", ""} {
				err := VerifyPassword(wrong, hash)
				require.ErrorIs(t, err, ErrPasswordMismatch)
				require.Equal(t, "password does not match", err.Error())
			}
		})
	}
}

func TestVerifyPassword_Bcrypt(t *testing.T) {
	hash, err := HashPasswordBcrypt("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2a$"))

	require.NoError(t, VerifyPassword("admin123", hash))

	t.Run("other bcrypt prefixes", func(t *testing.T) {
		// $2y$ is what PHP and some Java libraries emit; the digest is identical.
		require.NoError(t, VerifyPassword("admin123", "$2y$"+strings.TrimPrefix(hash, "$2a$")))
		require.NoError(t, VerifyPassword("admin123", "$2b$"+strings.TrimPrefix(hash, "$2a$")))
	})

	t.Run("not affected by the pepper", func(t *testing.T) {
		require.NoError(t, ReloadPepper())
		require.NoError(t, VerifyPassword("admin123", hash))
	})
}

func TestVerifyPassword_InvalidHashFormat(t *testing.T) {
	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"unknown algorithm", "$scrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"truncated bcrypt", "$2a$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword("test-password", tt.invalidHash)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}

func TestPasswordVerifier(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	v := PasswordVerifier{}
	require.True(t, v.Verify("s3cret", hash))
	require.False(t, v.Verify("nope", hash))
	require.False(t, v.Verify("s3cret", "garbage"))
}

func TestGeneratePassword(t *testing.T) {
	seen := make(map[string]bool)
	for range 20 {
		password, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, password, 12)
		require.NotContains(t, seen, password, "duplicate password generated")
		seen[password] = true

		for _, char := range password {
			valid := (char >= 'a' && char <= 'z') ||
				(char >= 'A' && char <= 'Z') ||
				(char >= '0' && char <= '9')
			require.True(t, valid, "password should only contain alphanumeric characters")
		}
	}
}

func TestPepper_PersistedAcrossReload(t *testing.T) {
	first, err := GetPepper()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	require.NoError(t, ReloadPepper())

	second, err := GetPepper()
	require.NoError(t, err)
	require.Equal(t, first, second)
}
