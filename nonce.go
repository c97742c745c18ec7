package ascon

import "crypto/rand"

// NewNonce returns a fresh 16-byte nonce read from the operating
// system's cryptographically secure random source. Seal and Open never
// generate nonces themselves; callers are responsible for never reusing
// a nonce with the same key.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}
