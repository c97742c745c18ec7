// Package ascon implements the Ascon v1.2 authenticated ciphers
// (Ascon-128, Ascon-128a, Ascon-80pq) as selected by the NIST
// lightweight cryptography competition.
package ascon

import (
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

const (
	// KeySize128 is the key size of Ascon-128 and Ascon-128a in bytes.
	KeySize128 = 16

	// KeySize80pq is the key size of Ascon-80pq in bytes.
	KeySize80pq = 20

	// NonceSize is the size of the nonce in bytes, for all variants.
	NonceSize = 16

	// TagSize is the size of the authentication tag in bytes.
	TagSize = 16

	// fullRounds is the permutation round count used for
	// initialization and finalization.
	fullRounds = 12
)

var (
	// ErrInvalidKeySize is returned when the key size does not match the variant.
	ErrInvalidKeySize = errors.New("ascon: invalid key size")

	// ErrOpen is returned when decryption fails (authentication error).
	ErrOpen = errors.New("ascon: message authentication failed")

	// ErrCiphertextTooShort is returned when the ciphertext is shorter than the tag.
	ErrCiphertextTooShort = errors.New("ascon: ciphertext too short")
)

// AEAD implements one variant of the Ascon AEAD construction.
// It implements the cipher.AEAD interface. A single instance is safe
// for concurrent use: every Seal/Open call works on its own state.
type AEAD struct {
	key      []byte
	rate     int
	pbRounds int
}

var _ cipher.AEAD = (*AEAD)(nil)

// New creates an Ascon-128 instance. The key must be 16 bytes long.
func New(key []byte) (*AEAD, error) {
	return newAEAD(key, KeySize128, 8, 6)
}

// New128a creates an Ascon-128a instance, the double-rate variant.
// The key must be 16 bytes long.
func New128a(key []byte) (*AEAD, error) {
	return newAEAD(key, KeySize128, 16, 8)
}

// New80pq creates an Ascon-80pq instance, the extended-key variant.
// The key must be 20 bytes long.
func New80pq(key []byte) (*AEAD, error) {
	return newAEAD(key, KeySize80pq, 8, 6)
}

func newAEAD(key []byte, keySize, rate, pbRounds int) (*AEAD, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKeySize
	}

	k := make([]byte, keySize)
	copy(k, key)

	return &AEAD{
		key:      k,
		rate:     rate,
		pbRounds: pbRounds,
	}, nil
}

// initialize derives the starting state from the key, the nonce, and
// the variant parameters: a 40-byte block holding the parameter header,
// the zero-padded key and the nonce is loaded as five big-endian words,
// run through the full permutation, and XORed with the zero-left-padded
// key block.
func (a *AEAD) initialize(s *state, nonce []byte) {
	var iv [40]byte
	iv[0] = byte(len(a.key) * 8)
	iv[1] = byte(a.rate * 8)
	iv[2] = fullRounds
	iv[3] = byte(a.pbRounds)
	copy(iv[24-len(a.key):], a.key)
	copy(iv[24:], nonce)

	for i := range s {
		s[i] = binary.BigEndian.Uint64(iv[8*i:])
	}
	s.permute(fullRounds)

	var zk [40]byte
	copy(zk[40-len(a.key):], a.key)
	for i := range s {
		s[i] ^= binary.BigEndian.Uint64(zk[8*i:])
	}
}

// absorb mixes the associated data into the state, one rate-sized block
// per intermediate permutation, then flips the domain separation bit.
// The flip happens even for empty associated data.
func (a *AEAD) absorb(s *state, additionalData []byte) {
	if len(additionalData) > 0 {
		ad := additionalData
		for len(ad) >= a.rate {
			s[0] ^= binary.BigEndian.Uint64(ad[0:8])
			if a.rate == 16 {
				s[1] ^= binary.BigEndian.Uint64(ad[8:16])
			}
			s.permute(a.pbRounds)
			ad = ad[a.rate:]
		}
		for i, b := range ad {
			s[i/8] ^= insertByte(b, i%8)
		}
		s[len(ad)/8] ^= insertByte(0x80, len(ad)%8)
		s.permute(a.pbRounds)
	}
	s[4] ^= 1
}

// encryptBlocks produces len(plaintext) bytes of ciphertext into dst.
// The final, possibly empty, partial block is always handled
// separately: the 0x80 padding marker is injected after it and no
// permutation follows it.
func (a *AEAD) encryptBlocks(s *state, dst, plaintext []byte) {
	p := plaintext
	for len(p) >= a.rate {
		s[0] ^= binary.BigEndian.Uint64(p[0:8])
		binary.BigEndian.PutUint64(dst[0:8], s[0])
		if a.rate == 16 {
			s[1] ^= binary.BigEndian.Uint64(p[8:16])
			binary.BigEndian.PutUint64(dst[8:16], s[1])
		}
		s.permute(a.pbRounds)
		p, dst = p[a.rate:], dst[a.rate:]
	}
	for i, b := range p {
		s[i/8] ^= insertByte(b, i%8)
		dst[i] = extractByte(s[i/8], i%8)
	}
	s[len(p)/8] ^= insertByte(0x80, len(p)%8)
}

// decryptBlocks recovers len(ciphertext) bytes of plaintext into dst.
// Full blocks replace the rate words with the raw ciphertext; the
// trailing partial block keeps the state bytes beyond the ciphertext
// length and reinjects the 0x80 padding marker, reproducing the exact
// state the encrypt direction would have reached.
func (a *AEAD) decryptBlocks(s *state, dst, ciphertext []byte) {
	c := ciphertext
	for len(c) >= a.rate {
		c0 := binary.BigEndian.Uint64(c[0:8])
		binary.BigEndian.PutUint64(dst[0:8], s[0]^c0)
		s[0] = c0
		if a.rate == 16 {
			c1 := binary.BigEndian.Uint64(c[8:16])
			binary.BigEndian.PutUint64(dst[8:16], s[1]^c1)
			s[1] = c1
		}
		s.permute(a.pbRounds)
		c, dst = c[a.rate:], dst[a.rate:]
	}
	for i, b := range c {
		dst[i] = extractByte(s[i/8], i%8) ^ b
		s[i/8] &^= insertByte(0xff, i%8)
		s[i/8] |= insertByte(b, i%8)
	}
	s[len(c)/8] ^= insertByte(0x80, len(c)%8)
}

// finalize reinjects the key after the rate words, applies the full
// permutation and writes the 16-byte tag.
func (a *AEAD) finalize(s *state, tag []byte) {
	r := a.rate / 8
	s[r+0] ^= binary.BigEndian.Uint64(a.key[0:8])
	s[r+1] ^= binary.BigEndian.Uint64(a.key[8:16])
	if len(a.key) == KeySize80pq {
		s[r+2] ^= uint64(binary.BigEndian.Uint32(a.key[16:20])) << 32
	}

	s.permute(fullRounds)

	k := a.key[len(a.key)-16:]
	binary.BigEndian.PutUint64(tag[0:8], s[3]^binary.BigEndian.Uint64(k[0:8]))
	binary.BigEndian.PutUint64(tag[8:16], s[4]^binary.BigEndian.Uint64(k[8:16]))
}

// Seal encrypts and authenticates plaintext with the given nonce and
// additional data, appending the ciphertext followed by the 16-byte
// authentication tag to dst. The nonce must be 16 bytes and must never
// repeat for the same key.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("ascon: invalid nonce size")
	}

	ret, out := sliceForAppend(dst, len(plaintext)+TagSize)

	var s state
	a.initialize(&s, nonce)
	a.absorb(&s, additionalData)
	a.encryptBlocks(&s, out[:len(plaintext)], plaintext)
	a.finalize(&s, out[len(plaintext):])

	return ret
}

// Open decrypts and authenticates ciphertext (which includes the
// trailing tag) with the given nonce and additional data, appending the
// plaintext to dst. It returns ErrOpen if authentication fails; no
// plaintext is ever returned in that case.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("ascon: invalid nonce size")
	}
	if len(ciphertext) < TagSize {
		return nil, ErrCiphertextTooShort
	}

	tag := ciphertext[len(ciphertext)-TagSize:]
	ciphertext = ciphertext[:len(ciphertext)-TagSize]

	ret, plaintext := sliceForAppend(dst, len(ciphertext))

	var s state
	a.initialize(&s, nonce)
	a.absorb(&s, additionalData)
	a.decryptBlocks(&s, plaintext, ciphertext)

	var computed [TagSize]byte
	a.finalize(&s, computed[:])

	if subtle.ConstantTimeCompare(tag, computed[:]) != 1 {
		clear(plaintext)
		return nil, ErrOpen
	}

	return ret, nil
}

// NonceSize returns the size of the nonce in bytes.
func (a *AEAD) NonceSize() int {
	return NonceSize
}

// Overhead returns the difference between plaintext and ciphertext lengths.
func (a *AEAD) Overhead() int {
	return TagSize
}

// Encrypt seals plaintext in one call, selecting Ascon-128 or
// Ascon-80pq from the key length (16 or 20 bytes).
func Encrypt(key, nonce, plaintext, additionalData []byte) ([]byte, error) {
	a, err := newForKey(key)
	if err != nil {
		return nil, err
	}
	return a.Seal(nil, nonce, plaintext, additionalData), nil
}

// Decrypt opens a sealed message in one call, selecting Ascon-128 or
// Ascon-80pq from the key length (16 or 20 bytes).
func Decrypt(key, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	a, err := newForKey(key)
	if err != nil {
		return nil, err
	}
	return a.Open(nil, nonce, ciphertext, additionalData)
}

func newForKey(key []byte) (*AEAD, error) {
	switch len(key) {
	case KeySize128:
		return New(key)
	case KeySize80pq:
		return New80pq(key)
	}
	return nil, ErrInvalidKeySize
}

// insertByte places b at big-endian byte position n of a 64-bit word.
func insertByte(b byte, n int) uint64 {
	return uint64(b) << (56 - 8*n)
}

// extractByte returns the byte at big-endian position n of u.
func extractByte(u uint64, n int) byte {
	return byte(u >> (56 - 8*n))
}

// sliceForAppend extends the input slice to accommodate n more bytes.
// Returns the extended slice and the n-byte slice to write to.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
