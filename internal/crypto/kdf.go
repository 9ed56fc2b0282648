package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KDFIterations is the fixed PBKDF2 iteration count.
	KDFIterations = 100_000

	// StaticSalt is the salt shared by every account. Envelopes written by
	// the browser client were derived with it, so it stays the default.
	StaticSalt = "a-secure-static-salt-for-demo"
)

// pbkdf2Deriver is the PBKDF2-HMAC-SHA256 implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	iterations int
	keyLen     int
}

// NewKeyDeriver returns a [KeyDeriver] using PBKDF2 with HMAC-SHA-256,
// [KDFIterations] iterations and a [KeySize]-byte output.
func NewKeyDeriver() KeyDeriver {
	return &pbkdf2Deriver{
		iterations: KDFIterations,
		keyLen:     KeySize,
	}
}

// DeriveKey implements [KeyDeriver].
func (d *pbkdf2Deriver) DeriveKey(masterSecret, salt string) SymmetricKey {
	return pbkdf2.Key([]byte(masterSecret), []byte(salt), d.iterations, d.keyLen, sha256.New)
}
