package derive

import (
	"encoding/binary"
	"fmt"

	"github.com/aegispass/aegispass/preset"
)

const (
	// coverageChunk is the number of master-seed bytes that index the
	// coverage character of one charset group.
	coverageChunk = 4

	// MaxCharsetGroups is the largest number of charset groups a preset
	// may declare: each group consumes a disjoint 4-byte slice of the
	// 32-byte master seed.
	MaxCharsetGroups = SeedLen / coverageChunk
)

// Password derives the password for (secret, label) under preset p.
//
// The result is fully determined by the arguments: the same three inputs
// always yield the identical password, and the call keeps no state, so
// Password is safe for concurrent use. On failure the returned error is
// one of the package's sentinel errors; no partial password is ever
// returned.
func Password(secret, label string, p preset.Preset) (string, error) {
	// Cheap, input-only checks run before the (possibly memory-hard)
	// seed derivation.
	if secret == "" || label == "" {
		return "", ErrInputEmpty
	}
	if p.Length < len(p.Charsets) {
		return "", fmt.Errorf("%w: length %d cannot include a character from each of %d groups",
			ErrLengthTooShort, p.Length, len(p.Charsets))
	}
	for _, group := range p.Charsets {
		if group == "" {
			return "", ErrEmptyCharset
		}
	}

	seed, err := masterSeed(secret, label, p)
	if err != nil {
		return "", err
	}

	// The group budget is a property of the seed's fixed size, so it is
	// checked against the seed, not the raw inputs.
	if len(p.Charsets) > MaxCharsetGroups {
		return "", fmt.Errorf("%w: %d groups declared, at most %d supported",
			ErrTooManyGroups, len(p.Charsets), MaxCharsetGroups)
	}

	// Coverage injection: group i is indexed by seed[4i:4i+4] as a
	// little-endian word, reduced by plain modulo. The bounded bias of the
	// modulo here is accepted on purpose — these are fixed seed bytes, not
	// a renewable stream, so rejection sampling cannot apply. The shuffle
	// below may move these characters but never removes them.
	out := make([]rune, 0, p.Length)
	for i, group := range p.Charsets {
		runes := []rune(group)
		idx := binary.LittleEndian.Uint32(seed[i*coverageChunk:]) % uint32(len(runes))
		out = append(out, runes[idx])
	}

	src, err := NewWordSource(p.RNGAlgorithm, seed)
	if err != nil {
		return "", err
	}

	// Fill: the union keeps declaration order and duplicates. A character
	// declared in two groups is drawn twice as often — intended weighting,
	// not an oversight.
	var union []rune
	for _, group := range p.Charsets {
		union = append(union, []rune(group)...)
	}
	for len(out) < p.Length {
		out = append(out, union[UniformUint32(src, uint32(len(union)))])
	}

	// Unbiased Fisher–Yates over the whole buffer. This is the canonical
	// scheme: swapping in a plain-modulo variant would change every
	// previously derived password.
	for i := len(out) - 1; i >= 1; i-- {
		j := UniformUint32(src, uint32(i+1))
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}
