package derive

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/aegispass/aegispass/preset"
)

// SeedLen is the size of the master seed in bytes.
const SeedLen = 32

// Fixed KDF cost parameters. These are constants, not options: a preset
// must reproduce the same password on every machine, so the costs are
// pinned by the algorithm choice and changing any of them changes every
// password derived with that algorithm.
const (
	argon2Memory  uint32 = 19456 // KiB
	argon2Time    uint32 = 2
	argon2Threads uint8  = 1

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// canonicalInput builds the canonical byte string that is the single point
// of entropy mixing: a format tag plus version, platform id, length,
// secret, label, and the charset list as a compact JSON array. Field order
// and separators are frozen — any change breaks every previously derived
// password.
func canonicalInput(secret, label string, p preset.Preset) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "AegisPass_V%d:%s:%d:%s:%s:",
		p.Version, p.PlatformID, p.Length, secret, label)

	// The charset array must serialize byte-identically to the compact
	// JSON other implementations produce. encoding/json HTML-escapes
	// & < > by default, which would corrupt any charset containing them.
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(p.Charsets) // a []string cannot fail to encode

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// kdfSalt derives the salt for the memory-hard hash choices by hashing the
// platform id. The salt is derived, never random: determinism is the point.
func kdfSalt(platformID string) [SeedLen]byte {
	return sha256.Sum256([]byte(platformID))
}

// masterSeed maps the inputs to the fixed 32-byte master seed using the
// preset's hash algorithm. The fast digests cannot fail; the memory-hard
// KDFs surface internal failures as [ErrHashingFailed].
func masterSeed(secret, label string, p preset.Preset) ([SeedLen]byte, error) {
	data := canonicalInput(secret, label, p)

	switch p.HashAlgorithm {
	case preset.HashSHA256:
		return sha256.Sum256(data), nil

	case preset.HashSHA3_256:
		return sha3.Sum256(data), nil

	case preset.HashBLAKE3:
		return blake3.Sum256(data), nil

	case preset.HashArgon2id:
		salt := kdfSalt(p.PlatformID)
		var seed [SeedLen]byte
		copy(seed[:], argon2.IDKey(data, salt[:], argon2Time, argon2Memory, argon2Threads, SeedLen))
		return seed, nil

	case preset.HashScrypt:
		salt := kdfSalt(p.PlatformID)
		key, err := scrypt.Key(data, salt[:], scryptN, scryptR, scryptP, SeedLen)
		if err != nil {
			return [SeedLen]byte{}, fmt.Errorf("%w: scrypt: %v", ErrHashingFailed, err)
		}
		var seed [SeedLen]byte
		copy(seed[:], key)
		return seed, nil

	default:
		return [SeedLen]byte{}, fmt.Errorf("%w: hash algorithm %q", ErrUnsupportedAlgorithm, p.HashAlgorithm)
	}
}
