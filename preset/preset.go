package preset

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is the preset schema version this build understands.
// Presets declaring any other version are rejected at decode time.
const SchemaVersion = 1

// HashAlgorithm identifies a seed-derivation function.
// Using a named string type prevents accidental confusion with plain strings.
type HashAlgorithm string

const (
	// HashSHA256 selects the SHA-256 digest.
	HashSHA256 HashAlgorithm = "sha256"
	// HashBLAKE3 selects the BLAKE3 digest.
	HashBLAKE3 HashAlgorithm = "blake3"
	// HashSHA3_256 selects the SHA3-256 digest.
	HashSHA3_256 HashAlgorithm = "sha3_256"
	// HashArgon2id selects the Argon2id memory-hard KDF.
	HashArgon2id HashAlgorithm = "argon2id"
	// HashScrypt selects the scrypt memory-hard KDF.
	HashScrypt HashAlgorithm = "scrypt"
)

// RNGAlgorithm identifies a deterministic bit-stream generator.
type RNGAlgorithm string

const (
	// RNGChaCha20 selects the ChaCha20 keystream generator.
	RNGChaCha20 RNGAlgorithm = "chaCha20"
	// RNGHC128 selects the HC-128 keystream generator.
	RNGHC128 RNGAlgorithm = "hc128"
)

// ShuffleAlgorithm identifies the permutation applied to the finished
// character buffer. Only one scheme exists today; the field is an
// enumeration so that future schemes can be added without a schema change.
type ShuffleAlgorithm string

const (
	// ShuffleFisherYates selects the unbiased Fisher–Yates shuffle.
	ShuffleFisherYates ShuffleAlgorithm = "fisherYates"
)

// Preset is the complete configuration of one derivation run.
//
// Every field except Name participates in seed derivation, so two presets
// that differ in any of those fields produce unrelated passwords for the
// same secret and label. Presets are plain values: copy them freely, and
// pass them by value into the derivation core.
type Preset struct {
	// Name labels the preset for humans. It has no behavioural effect.
	Name string `json:"name"`

	// Version is the preset schema version. Must equal [SchemaVersion].
	Version int `json:"version"`

	// HashAlgorithm selects the seed-derivation function.
	HashAlgorithm HashAlgorithm `json:"hashAlgorithm"`

	// RNGAlgorithm selects the deterministic bit source used for filling
	// and shuffling.
	RNGAlgorithm RNGAlgorithm `json:"rngAlgorithm"`

	// ShuffleAlgorithm selects the final permutation scheme.
	ShuffleAlgorithm ShuffleAlgorithm `json:"shuffleAlgorithm"`

	// Length is the exact number of characters in the output.
	Length int `json:"length"`

	// PlatformID is an arbitrary deployment identifier folded into the
	// seed. For the memory-hard hash choices it also provides the salt
	// material.
	PlatformID string `json:"platformId"`

	// Charsets are the character groups the output must cover, in
	// declaration order. Order is significant: each group is assigned a
	// coverage slot by position. A character may appear in more than one
	// group; duplicates raise its weight during filling.
	Charsets []string `json:"charsets"`
}

// UnmarshalJSON enforces the closed set of hash algorithm names.
func (a *HashAlgorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch HashAlgorithm(s) {
	case HashSHA256, HashBLAKE3, HashSHA3_256, HashArgon2id, HashScrypt:
		*a = HashAlgorithm(s)
		return nil
	default:
		return fmt.Errorf("unsupported hash algorithm %q", s)
	}
}

// UnmarshalJSON enforces the closed set of RNG algorithm names.
func (a *RNGAlgorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch RNGAlgorithm(s) {
	case RNGChaCha20, RNGHC128:
		*a = RNGAlgorithm(s)
		return nil
	default:
		return fmt.Errorf("unsupported rng algorithm %q", s)
	}
}

// UnmarshalJSON enforces the closed set of shuffle algorithm names.
func (a *ShuffleAlgorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ShuffleAlgorithm(s) {
	case ShuffleFisherYates:
		*a = ShuffleAlgorithm(s)
		return nil
	default:
		return fmt.Errorf("unsupported shuffle algorithm %q", s)
	}
}

// Default returns the stock preset used when no configuration file is
// supplied: SHA-256 seed derivation, ChaCha20 bit source, Fisher–Yates
// shuffle, 16 characters drawn from digits, lowercase, uppercase, and
// symbols.
func Default() Preset {
	return Preset{
		Name:             "AegisPass - Default",
		Version:          SchemaVersion,
		HashAlgorithm:    HashSHA256,
		RNGAlgorithm:     RNGChaCha20,
		ShuffleAlgorithm: ShuffleFisherYates,
		Length:           16,
		PlatformID:       "aegispass.example",
		Charsets: []string{
			"0123456789",
			"abcdefghijklmnopqrstuvwxyz",
			"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			"!@#$%^&*()_+-=",
		},
	}
}
