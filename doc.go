/*
Package ascon implements the Ascon v1.2 family of authenticated ciphers
with associated data (AEAD), the winner of the NIST lightweight
cryptography competition.

Ascon is a permutation-based (sponge/duplex) AEAD: a 320-bit state is
initialized from the key and nonce, associated data and message blocks
are absorbed through a fixed permutation, and a 128-bit authentication
tag is squeezed out after a final key injection. The tag authenticates
both the ciphertext and the associated data.

Supported variants:
  - Ascon-128 (New): 16-byte key, 8-byte rate, 6 intermediate rounds
  - Ascon-128a (New128a): 16-byte key, 16-byte rate, 8 intermediate rounds
  - Ascon-80pq (New80pq): 20-byte key, 8-byte rate, 6 intermediate rounds

All variants use a 16-byte nonce and produce a 16-byte tag. The nonce
must never be reused with the same key; generating it with NewNonce
satisfies this requirement with overwhelming probability.

Basic Usage:

	key := make([]byte, ascon.KeySize128)
	// Fill key with random bytes...

	aead, err := ascon.New(key)
	if err != nil {
		panic(err)
	}

	nonce, err := ascon.NewNonce()
	if err != nil {
		panic(err)
	}

	plaintext := []byte("secret message")
	ad := []byte("additional authenticated data")

	// Encrypt
	ciphertext := aead.Seal(nil, nonce, plaintext, ad)

	// Decrypt
	decrypted, err := aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		panic("authentication failed")
	}

The one-shot Encrypt and Decrypt functions cover the common case of a
single message per key, selecting Ascon-128 or Ascon-80pq from the key
length.

The ciphertext is exactly 16 bytes (128 bits) longer than the
plaintext: the encrypted message followed by the authentication tag.
When authentication fails, Open returns ErrOpen and no plaintext.
*/
package ascon
