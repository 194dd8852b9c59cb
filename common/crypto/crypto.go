// Package crypto bundles the cryptographic capabilities the ledger core
// consumes: secp256k1 keys and signatures, keccak256 hashing for
// transaction identities, and a 128-bit one-way digest for deriving
// asset identifiers.
package crypto

import (
	"errors"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/btcsuite/btcd/btcec"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

var (
	ErrSignFail = errors.New("sign digest fail")
)

// PrivateKey is a secp256k1 private key.
type PrivateKey = btcec.PrivateKey

// GenerateKeyPair returns a fresh keypair. The public key doubles as the
// wallet identity. Intended for tests and tooling, never for handler code.
func GenerateKeyPair() (common.PublicKey, *PrivateKey, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return common.PublicKey{}, nil, err
	}
	return common.BytesToPubKey(priv.PubKey().SerializeCompressed()), priv, nil
}

// PrivKeyFromBytes restores a private key from its 32 byte serialization.
func PrivKeyFromBytes(b []byte) (common.PublicKey, *PrivateKey) {
	priv, pub := btcec.PrivKeyFromBytes(btcec.S256(), b)
	return common.BytesToPubKey(pub.SerializeCompressed()), priv
}

// Sign produces a DER encoded secp256k1 signature over the given digest.
func Sign(digest common.Hash, priv *PrivateKey) ([]byte, error) {
	sig, err := priv.Sign(digest.Bytes())
	if err != nil {
		return nil, ErrSignFail
	}
	return sig.Serialize(), nil
}

// VerifySignature reports whether sig is a valid signature of digest by the
// holder of pub.
func VerifySignature(pub common.PublicKey, digest common.Hash, sig []byte) bool {
	pubKey, err := btcec.ParsePubKey(pub.Bytes(), btcec.S256())
	if err != nil {
		return false
	}
	signature, err := btcec.ParseDERSignature(sig, btcec.S256())
	if err != nil {
		return false
	}
	return signature.Verify(digest.Bytes(), pubKey)
}

// Keccak256 calculates the keccak256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash is Keccak256 returning a common.Hash.
func Keccak256Hash(data ...[]byte) common.Hash {
	return common.BytesToHash(Keccak256(data...))
}

// Hash128 derives a 16 byte one-way digest of the concatenation of data
// using the BLAKE3 XOF. It backs asset identifier derivation.
func Hash128(data ...[]byte) [16]byte {
	h := blake3.New()
	for _, b := range data {
		h.Write(b)
	}
	var out [16]byte
	h.Digest().Read(out[:])
	return out
}
