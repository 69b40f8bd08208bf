// Package keystore manages the symmetric key file backing the credential
// store. The key is generated once, on first run, and must be readable on
// every subsequent run.
package keystore

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/calumh/ghostsnake/internal/crypto"
	"github.com/calumh/ghostsnake/internal/model"
)

// LoadOrCreate returns the key stored at path, generating and persisting a
// fresh one if the file does not exist yet. A key file that exists but cannot
// be read, or that holds the wrong number of bytes, maps to
// model.ErrKeyUnavailable.
func LoadOrCreate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != crypto.KeySize {
			return nil, fmt.Errorf("%w: key file %s holds %d bytes, want %d",
				model.ErrKeyUnavailable, path, len(data), crypto.KeySize)
		}
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %v", model.ErrKeyUnavailable, err)
	}

	key := make([]byte, crypto.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrKeyUnavailable, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrKeyUnavailable, err)
	}
	if err := os.WriteFile(path, key, 0600); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrKeyUnavailable, err)
	}

	return key, nil
}
