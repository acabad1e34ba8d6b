// Package cryptox seals backup snapshots with a key derived from a
// passphrase.
//
// A sealed blob is laid out as magic | salt | nonce | AES-GCM ciphertext, so
// it can be opened with nothing but the passphrase.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32
)

var magic = []byte("NBK1")

// ErrMalformed is returned by Open for blobs that were not produced by Seal.
var ErrMalformed = errors.New("malformed sealed data")

// randRead is replaced in tests that need deterministic output.
var randRead = rand.Read

// DeriveKey stretches passphrase into an AES-256 key with argon2id.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, keySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext under a fresh salt and nonce.
func Seal(plaintext, passphrase []byte) ([]byte, error) {
	head := make([]byte, len(magic)+saltSize+nonceSize)
	copy(head, magic)
	if _, err := randRead(head[len(magic):]); err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	salt := head[len(magic) : len(magic)+saltSize]
	nonce := head[len(magic)+saltSize:]

	gcm, err := newGCM(DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	return gcm.Seal(head, nonce, plaintext, magic), nil
}

// Open reverses Seal. A wrong passphrase and a tampered blob both fail.
func Open(sealed, passphrase []byte) ([]byte, error) {
	headSize := len(magic) + saltSize + nonceSize
	if len(sealed) < headSize || !bytes.Equal(sealed[:len(magic)], magic) {
		return nil, ErrMalformed
	}
	salt := sealed[len(magic) : len(magic)+saltSize]
	nonce := sealed[len(magic)+saltSize : headSize]

	gcm, err := newGCM(DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, sealed[headSize:], magic)
	if err != nil {
		return nil, fmt.Errorf("open sealed data: %w", err)
	}
	return plaintext, nil
}
