// Package keys derives per-session key material from a password.
//
// A password produces two things: a 32-byte AES-256 key via
// PBKDF2-HMAC-SHA256 and a 32-bit seed for the embedding permutation.
// Both derivations are fixed constants of the carrier format; changing
// either orphans every previously produced stego image.
package keys

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// EncryptionKeySize is the size of the derived AES-256 key in bytes.
	EncryptionKeySize = 32

	// Iterations is the PBKDF2 iteration count.
	Iterations = 100000
)

// Salt is the fixed, public PBKDF2 salt. It is not a secret: it binds
// every installation to the same derivation function while keeping
// brute-force key search iteration-costly.
var Salt = []byte("F5StegoSalt")

// Material holds everything derived from a password for one session.
type Material struct {
	// EncryptionKey is the AES-256 key for the payload envelope.
	EncryptionKey []byte
	// PermutationSeed seeds the slot permutation generator.
	PermutationSeed uint32
}

// Derive computes Material from a password. Any password, including the
// empty string, deterministically produces valid material.
func Derive(password string) Material {
	key := pbkdf2.Key([]byte(password), Salt, Iterations, EncryptionKeySize, sha256.New)

	sum := sha256.Sum256([]byte(password))
	seed64 := binary.BigEndian.Uint64(sum[:8])

	return Material{
		EncryptionKey: key,
		// Reduce modulo 2^32: the permutation generator's seed space
		// is 32 bits.
		PermutationSeed: uint32(seed64),
	}
}
