package crypto

// KeySize is the length of every symmetric key in bytes (AES-256).
const KeySize = 32

// SymmetricKey is raw key material. It lives only in client memory for the
// lifetime of a session.
type SymmetricKey []byte

// Valid reports whether k has the expected length.
func (k SymmetricKey) Valid() bool {
	return len(k) == KeySize
}

// Clone returns an independent copy of k. A nil key clones to nil.
func (k SymmetricKey) Clone() SymmetricKey {
	if k == nil {
		return nil
	}
	out := make(SymmetricKey, len(k))
	copy(out, k)
	return out
}

// Wipe overwrites the key bytes with zeros in place.
func (k SymmetricKey) Wipe() {
	for i := range k {
		k[i] = 0
	}
}
