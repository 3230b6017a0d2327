package derive

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/aegispass/aegispass/preset"
)

// WordSource is the single capability the filler and shuffler need from a
// deterministic generator: the next 32-bit word of its stream. The
// generator-specific state stays hidden behind this interface.
//
// A WordSource is stateful and not safe for concurrent use; each
// derivation call creates its own.
type WordSource interface {
	// Next returns the next 32-bit word of the stream.
	Next() uint32
}

// NewWordSource creates the deterministic bit source selected by algo,
// seeded from the 32-byte master seed. The same algorithm and seed always
// yield the identical word sequence — determinism, not unpredictability,
// is the contract.
func NewWordSource(algo preset.RNGAlgorithm, seed [SeedLen]byte) (WordSource, error) {
	switch algo {
	case preset.RNGChaCha20:
		return newChaChaSource(seed)
	case preset.RNGHC128:
		return newHC128Source(seed), nil
	default:
		return nil, fmt.Errorf("%w: rng algorithm %q", ErrUnsupportedAlgorithm, algo)
	}
}

// chachaSource yields the ChaCha20 keystream for key=seed, nonce=0,
// counter starting at 0, read as little-endian 32-bit words. This matches
// the construction the pinned golden vectors were minted against.
type chachaSource struct {
	stream *chacha20.Cipher
	buf    [64]byte // one keystream block
	off    int
}

func newChaChaSource(seed [SeedLen]byte) (*chachaSource, error) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("derive: chacha20 init: %w", err)
	}
	return &chachaSource{stream: c, off: 64}, nil // buffer starts empty
}

func (s *chachaSource) Next() uint32 {
	if s.off == len(s.buf) {
		clear(s.buf[:])
		s.stream.XORKeyStream(s.buf[:], s.buf[:]) // XOR with zeros = raw keystream
		s.off = 0
	}
	w := binary.LittleEndian.Uint32(s.buf[s.off:])
	s.off += 4
	return w
}
