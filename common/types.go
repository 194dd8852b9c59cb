package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/mr-tron/base58"
)

const (
	HashLength      = 32
	PublicKeyLength = 33
)

var (
	ErrInvalidHash      = errors.New("hash decode fail")
	ErrInvalidPublicKey = errors.New("public key decode fail")
)

// Hash represents the 32 byte keccak256 hash of arbitrary data.
type Hash [HashLength]byte

func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}
func HexToHash(s string) Hash { return BytesToHash(FromHex(s)) }

func (h Hash) Bytes() []byte { return h[:] }
func (h Hash) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h Hash) Hex() string   { return "0x" + hex.EncodeToString(h[:]) }

// String implements the stringer interface and is used also by the logger.
func (h Hash) String() string {
	return h.Hex()
}

// TerminalString formats the hash for console output during logging.
func (h Hash) TerminalString() string {
	return fmt.Sprintf("%x…%x", h[:3], h[29:])
}

// Sets the hash to the value of b. If b is larger than len(h), b will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// MarshalText returns the hex representation of h.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash) UnmarshalText(input []byte) error {
	b := FromHex(string(input))
	if len(b) != HashLength {
		return ErrInvalidHash
	}
	copy(h[:], b)
	return nil
}

// PublicKey is a compressed secp256k1 public key. It identifies a wallet.
type PublicKey [PublicKeyLength]byte

func BytesToPubKey(b []byte) PublicKey {
	var k PublicKey
	if len(b) > len(k) {
		b = b[len(b)-PublicKeyLength:]
	}
	copy(k[PublicKeyLength-len(b):], b)
	return k
}

// ParsePubKey decodes a base58 encoded public key.
func ParsePubKey(s string) (PublicKey, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, ErrInvalidPublicKey
	}
	if len(b) != PublicKeyLength {
		return PublicKey{}, ErrInvalidPublicKey
	}
	return BytesToPubKey(b), nil
}

func (k PublicKey) Bytes() []byte { return k[:] }

// String returns the base58 representation of the key.
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// TerminalString formats the key for console output during logging.
func (k PublicKey) TerminalString() string {
	s := k.String()
	if len(s) <= 8 {
		return s
	}
	return s[:8] + "…"
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PublicKey) UnmarshalText(input []byte) error {
	parsed, err := ParsePubKey(string(input))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// FromHex returns the bytes represented by the hexadecimal string s. s may be prefixed with "0x".
func FromHex(s string) []byte {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// ToHex encodes b as a hex string with 0x prefix.
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	copied := make([]byte, len(b))
	copy(copied, b)
	return copied
}
