// Package cryptox seals the locally persisted session token so the durable
// slot is not readable as plain text. The key is derived from a machine
// fingerprint, which ties the stored token to the installation.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidBlob is returned by Open when the sealed blob is malformed or was
// produced under a different key.
var ErrInvalidBlob = errors.New("invalid sealed blob")

// DeriveSealKey derives a 32-byte AES key from a machine fingerprint and a
// per-install random salt using argon2id.
func DeriveSealKey(fingerprint string, salt []byte) []byte {
	return argon2.IDKey([]byte(fingerprint), salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-GCM under key. The random nonce is
// prepended to the ciphertext so the result is a single self-contained blob.
func Seal(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal. A blob that is too short or fails
// authentication yields ErrInvalidBlob.
func Open(blob, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(blob) < aesgcm.NonceSize() {
		return nil, ErrInvalidBlob
	}
	nonce, ciphertext := blob[:aesgcm.NonceSize()], blob[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidBlob
	}
	return plaintext, nil
}

// GenerateRandByteArray returns size cryptographically random bytes.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Useful for removing passwords from memory after use. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
