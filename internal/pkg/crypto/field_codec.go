package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"diet-coach-be/internal/pkg/logger"
)

const (
	keyLength   = 32 // AES-256
	nonceLength = 16
	tagLength   = 16
)

// FieldCodec encrypts individual text fields before storage using AES-256-GCM.
// Envelope format: ivHex:tagHex:cipherHex. Values written before encryption
// was introduced are stored as plaintext; Decrypt passes them through
// unchanged so callers never need to know which generation a value is.
type FieldCodec struct {
	aead cipher.AEAD
	log  logger.ILogger
}

func NewFieldCodec(key string, log logger.ILogger) (*FieldCodec, error) {
	if len(key) != keyLength {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", keyLength, len(key))
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCMWithNonceSize(block, nonceLength)
	if err != nil {
		return nil, err
	}

	return &FieldCodec{aead: aead, log: log}, nil
}

// Encrypt returns the envelope for plaintext. Empty input is returned as-is:
// optional fields rely on round-trip stability of the zero value.
func (c *FieldCodec) Encrypt(plaintext string) string {
	if plaintext == "" {
		return plaintext
	}

	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		// rand.Read only fails when the OS entropy source is broken.
		c.log.Error("crypto", "nonce generation failed", map[string]interface{}{"error": err.Error()})
		return plaintext
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagLength]
	tag := sealed[len(sealed)-tagLength:]

	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(nonce),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	)
}

// Decrypt reverses Encrypt. Anything that does not parse as a 3-part envelope
// is treated as legacy plaintext and returned unchanged. A well-formed
// envelope that fails authentication (tampered, wrong key) is also returned
// unchanged; decryption failure is never fatal to the caller.
func (c *FieldCodec) Decrypt(envelope string) string {
	if envelope == "" {
		return envelope
	}

	parts := strings.Split(envelope, ":")
	if len(parts) != 3 {
		return envelope
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != nonceLength {
		return envelope
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagLength {
		return envelope
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return envelope
	}

	plaintext, err := c.aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		c.log.Warn("crypto", "decryption failed, returning stored value", map[string]interface{}{"error": err.Error()})
		return envelope
	}

	return string(plaintext)
}
