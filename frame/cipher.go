package frame

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// StreamCipher implements the protocol's AES-128 CFB-8 stream cipher: an
// 8-bit (one byte) feedback segment rather than the full 128-bit block
// stdlib's crypto/cipher.NewCFBEncrypter assumes, and the login shared
// secret used as both the key and the initialization vector. Neither
// property is expressible through stdlib's CFB helpers, so this builds
// the shift-register construction directly on crypto/aes's block
// primitive — the same level this protocol's own original Rust
// implementation (net/encryption.rs) and go-ethereum's RLPx framing
// (p2p/rlpx) both operate at when a standard mode doesn't fit.
type StreamCipher struct {
	enc *cfb8 // client -> server or server -> client, depending on role
	dec *cfb8
}

// NewStreamCipher builds the encrypt/decrypt pair from a 16-byte shared
// secret.
func NewStreamCipher(secret []byte) (*StreamCipher, error) {
	if len(secret) != 16 {
		return nil, fmt.Errorf("frame: encryption secret must be 16 bytes, got %d", len(secret))
	}
	block, err := aes.NewCipher(secret)
	if err != nil {
		return nil, err
	}
	return &StreamCipher{
		enc: newCFB8(block, secret),
		dec: newCFB8(block, secret),
	}, nil
}

// EncryptInPlace encrypts data in place.
func (s *StreamCipher) EncryptInPlace(data []byte) { s.enc.xorEncrypt(data) }

// DecryptInPlace decrypts data in place.
func (s *StreamCipher) DecryptInPlace(data []byte) { s.dec.xorDecrypt(data) }

// cfb8 is a one-byte-feedback CFB shift register over a single block
// cipher. It keeps a 16-byte shift register seeded with the IV; each
// byte is produced by encrypting the register and XORing its first byte
// against the plaintext (or ciphertext, for decryption), then shifting
// that byte into the register.
type cfb8 struct {
	block cipher.Block
	sr    [aes.BlockSize]byte
	tmp   [aes.BlockSize]byte
}

func newCFB8(block cipher.Block, iv []byte) *cfb8 {
	c := &cfb8{block: block}
	copy(c.sr[:], iv)
	return c
}

func (c *cfb8) xorEncrypt(data []byte) {
	for i, p := range data {
		c.block.Encrypt(c.tmp[:], c.sr[:])
		ct := p ^ c.tmp[0]
		data[i] = ct
		copy(c.sr[:aes.BlockSize-1], c.sr[1:])
		c.sr[aes.BlockSize-1] = ct
	}
}

func (c *cfb8) xorDecrypt(data []byte) {
	for i, ct := range data {
		c.block.Encrypt(c.tmp[:], c.sr[:])
		p := ct ^ c.tmp[0]
		copy(c.sr[:aes.BlockSize-1], c.sr[1:])
		c.sr[aes.BlockSize-1] = ct
		data[i] = p
	}
}
