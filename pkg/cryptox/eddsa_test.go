package cryptox_test

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/inkpass/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateEd25519Key(t *testing.T) {
	first, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	block, rest := pem.Decode(first)
	require.NotNil(t, block)
	require.Empty(t, rest)
	require.Equal(t, "PRIVATE KEY", block.Type)

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	require.IsType(t, ed25519.PrivateKey{}, parsed)

	second, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestWriteSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "signing.pem")

	require.NoError(t, cryptox.WriteSecretFile(path, []byte("one")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	require.Error(t, cryptox.WriteSecretFile(path, []byte("two")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one", string(got))
}
