package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/calumh/ghostsnake/internal/model"
)

// KeySize is the required symmetric key length in bytes
const KeySize = chacha20poly1305.KeySize

// ErrMalformedCiphertext means the ciphertext is too short to contain a nonce
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// Cipher performs symmetric authenticated encryption with a single process-wide
// key. The same key must be used for Encrypt and Decrypt across the process
// lifetime; losing the key makes all stored ciphertexts unrecoverable.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher creates a Cipher from a KeySize-byte key.
// A wrong-sized key maps to model.ErrKeyUnavailable.
func NewCipher(key []byte) (*Cipher, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrKeyUnavailable, err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals the plaintext with a fresh random nonce.
// The nonce is prefixed to the returned ciphertext.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a ciphertext produced by Encrypt. Any tampering, truncation,
// or wrong-key use fails authentication and returns an error.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < c.aead.NonceSize() {
		return nil, ErrMalformedCiphertext
	}
	nonce, sealed := ciphertext[:c.aead.NonceSize()], ciphertext[c.aead.NonceSize():]
	return c.aead.Open(nil, nonce, sealed, nil)
}
