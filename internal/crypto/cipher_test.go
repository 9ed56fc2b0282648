package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKey is a fixed low-entropy key so individual tests skip the KDF.
func testKey(b byte) SymmetricKey {
	return SymmetricKey(bytes.Repeat([]byte{b}, KeySize))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

// ── Encrypt / Decrypt ────────────────────────────────────────────────────────

func TestVaultCipher_RoundTrip(t *testing.T) {
	c := NewVaultCipher()
	key := testKey(0x11)

	for _, plaintext := range [][]byte{
		[]byte("[]"),
		[]byte(`[{"id":"1","type":"General","name":"mail"}]`),
		bytes.Repeat([]byte("x"), 1<<16),
		{},
	} {
		envelope, err := c.Encrypt(plaintext, key)
		require.NoError(t, err)

		got, err := c.Decrypt(envelope, key)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(plaintext, got), "plaintext of length %d must survive the round trip", len(plaintext))
	}
}

// TestVaultCipher_EnvelopeLayout verifies nonce‖ciphertext‖tag sizing.
func TestVaultCipher_EnvelopeLayout(t *testing.T) {
	c := NewVaultCipher()
	plaintext := []byte("hello vault")

	envelope, err := c.Encrypt(plaintext, testKey(0x22))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)
	assert.Len(t, raw, NonceSize+len(plaintext)+16)
}

// TestVaultCipher_FreshNonce verifies that encrypting the same plaintext
// twice never produces the same envelope or nonce.
func TestVaultCipher_FreshNonce(t *testing.T) {
	c := NewVaultCipher()
	key := testKey(0x33)
	seen := make(map[string]struct{})

	for i := 0; i < 256; i++ {
		envelope, err := c.Encrypt([]byte("same"), key)
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(envelope)
		require.NoError(t, err)

		nonce := string(raw[:NonceSize])
		_, dup := seen[nonce]
		require.False(t, dup, "nonce reused on iteration %d", i)
		seen[nonce] = struct{}{}
	}
}

func TestVaultCipher_WrongKey(t *testing.T) {
	c := NewVaultCipher()

	envelope, err := c.Encrypt([]byte("secret"), testKey(0x01))
	require.NoError(t, err)

	_, err = c.Decrypt(envelope, testKey(0x02))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.ErrorIs(t, err, app.ErrDecryption)
}

// TestVaultCipher_TamperAnyBit verifies that flipping any single bit of the
// decoded envelope makes decryption fail.
func TestVaultCipher_TamperAnyBit(t *testing.T) {
	c := NewVaultCipher()
	key := testKey(0x44)

	envelope, err := c.Encrypt([]byte(`[{"name":"bank"}]`), key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)

	for i := 0; i < len(raw)*8; i++ {
		tampered := append([]byte(nil), raw...)
		tampered[i/8] ^= 1 << (i % 8)

		_, err := c.Decrypt(base64.StdEncoding.EncodeToString(tampered), key)
		require.ErrorIs(t, err, ErrDecryption, "bit %d flipped but decryption succeeded", i)
	}
}

// TestVaultCipher_TamperEnvelopeString verifies the same property on the
// base64 text itself.
func TestVaultCipher_TamperEnvelopeString(t *testing.T) {
	c := NewVaultCipher()
	key := testKey(0x45)

	envelope, err := c.Encrypt([]byte("abc"), key)
	require.NoError(t, err)

	for i := 0; i < len(envelope)*8; i++ {
		tampered := []byte(envelope)
		tampered[i/8] ^= 1 << (i % 8)

		_, err := c.Decrypt(string(tampered), key)
		require.Error(t, err, "bit %d of the envelope string flipped but decryption succeeded", i)
	}
}

func TestVaultCipher_TruncatedOrMalformed(t *testing.T) {
	c := NewVaultCipher()
	key := testKey(0x55)

	envelope, err := c.Encrypt([]byte("payload"), key)
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)

	cases := map[string]string{
		"empty":            "",
		"not base64":       "###not-base64###",
		"shorter than iv":  base64.StdEncoding.EncodeToString(raw[:NonceSize-1]),
		"only iv":          base64.StdEncoding.EncodeToString(raw[:NonceSize]),
		"missing tag byte": base64.StdEncoding.EncodeToString(raw[:len(raw)-1]),
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.Decrypt(input, key)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestVaultCipher_InvalidKeyLength(t *testing.T) {
	c := NewVaultCipher()

	_, err := c.Encrypt([]byte("x"), SymmetricKey("short"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = c.Decrypt("AAAA", nil)
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestVaultCipher_NonceSourceFailure(t *testing.T) {
	c := &aesGCMCipher{random: failingReader{}}

	envelope, err := c.Encrypt([]byte("x"), testKey(0x66))
	assert.Empty(t, envelope)
	assert.ErrorIs(t, err, ErrNonceGeneration)
}

// ── Key ──────────────────────────────────────────────────────────────────────

func TestSymmetricKey_WipeAndClone(t *testing.T) {
	key := testKey(0x77)
	clone := key.Clone()

	key.Wipe()

	assert.Equal(t, make([]byte, KeySize), []byte(key))
	assert.Equal(t, testKey(0x77), clone, "clone must not share memory with the original")
	assert.Nil(t, SymmetricKey(nil).Clone())
}

// ── Fuzz / Bench ─────────────────────────────────────────────────────────────

func FuzzVaultCipher_RoundTrip(f *testing.F) {
	f.Add([]byte("[]"))
	f.Add([]byte(`[{"id":"a"}]`))

	c := NewVaultCipher()
	key := testKey(0x88)

	f.Fuzz(func(t *testing.T, plaintext []byte) {
		envelope, err := c.Encrypt(plaintext, key)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		got, err := c.Decrypt(envelope, key)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(plaintext, got) {
			t.Fatalf("round trip mismatch")
		}
	})
}

func FuzzVaultCipher_DecryptGarbage(f *testing.F) {
	f.Add("")
	f.Add("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")

	c := NewVaultCipher()
	key := testKey(0x99)

	f.Fuzz(func(t *testing.T, envelope string) {
		// Arbitrary input must never panic and never authenticate.
		if _, err := c.Decrypt(envelope, key); err == nil {
			t.Fatalf("garbage envelope %q decrypted", envelope)
		}
	})
}

func BenchmarkVaultCipher_Encrypt(b *testing.B) {
	c := NewVaultCipher()
	key := testKey(0xAA)
	plaintext := bytes.Repeat([]byte("v"), 4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encrypt(plaintext, key); err != nil {
			b.Fatal(err)
		}
	}
}
