package cryptox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	k1 := DeriveKey([]byte("secret"), []byte("salt-1"))
	k2 := DeriveKey([]byte("secret"), []byte("salt-1"))
	k3 := DeriveKey([]byte("secret"), []byte("salt-2"))

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestSealOpen(t *testing.T) {
	plain := []byte("n1|Hello|alice\n")

	sealed, err := Seal(plain, []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, "NBK1", string(sealed[:4]))
	assert.NotContains(t, string(sealed), "Hello")

	got, err := Open(sealed, []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	again, err := Seal(plain, []byte("pass"))
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "salt and nonce must be fresh")
}

func TestOpen_Failures(t *testing.T) {
	sealed, err := Seal([]byte("data"), []byte("pass"))
	require.NoError(t, err)

	_, err = Open(sealed, []byte("wrong"))
	assert.Error(t, err)

	tampered := append([]byte(nil), sealed...)
	tampered[len(tampered)-1] ^= 0xff
	_, err = Open(tampered, []byte("pass"))
	assert.Error(t, err)

	_, err = Open([]byte("NBK1short"), []byte("pass"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Open(append([]byte("XXXX"), sealed[4:]...), []byte("pass"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestSeal_RandomFailure(t *testing.T) {
	orig := randRead
	t.Cleanup(func() { randRead = orig })
	randRead = func([]byte) (int, error) { return 0, errors.New("no entropy") }

	_, err := Seal([]byte("data"), []byte("pass"))
	assert.ErrorContains(t, err, "no entropy")
}
