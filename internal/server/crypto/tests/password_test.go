package tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/achola/yummy-recipes/internal/server/crypto"
)

func testArgon2Params() crypto.Argon2Params {
	// лёгкие параметры, чтобы тесты не тормозили
	return crypto.Argon2Params{
		Time:      1,
		MemoryKiB: 8 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

func TestHasher_Argon2id_OK(t *testing.T) {
	h := crypto.Hasher{Kind: "argon2id", Argon2: testArgon2Params()}

	hash, err := h.Hash("Passw0rd")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "argon2id$v=19$"))

	ok, err := h.Verify("Passw0rd", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Verify("wrong-password", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHasher_Bcrypt_OK(t *testing.T) {
	h := crypto.Hasher{Kind: "bcrypt", BcryptCost: 4}

	hash, err := h.Hash("Passw0rd")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2"))

	ok, err := h.Verify("Passw0rd", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Verify("wrong-password", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

// Verify определяет алгоритм по хэшу, а не по конфигу:
// после смены hasher в конфиге старые bcrypt-учётки продолжают работать.
func TestHasher_Verify_CrossAlgorithm(t *testing.T) {
	bcryptHasher := crypto.Hasher{Kind: "bcrypt", BcryptCost: 4}
	hash, err := bcryptHasher.Hash("Passw0rd")
	require.NoError(t, err)

	argonHasher := crypto.Hasher{Kind: "argon2id", Argon2: testArgon2Params()}
	ok, err := argonHasher.Verify("Passw0rd", hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHasher_Hash_EmptyPassword(t *testing.T) {
	h := crypto.Hasher{Kind: "argon2id", Argon2: testArgon2Params()}
	_, err := h.Hash("   ")
	require.Error(t, err)
}

func TestHasher_Verify_BadHashFormat(t *testing.T) {
	h := crypto.Hasher{Kind: "argon2id", Argon2: testArgon2Params()}
	_, err := h.Verify("Passw0rd", "garbage")
	require.Error(t, err)
}
