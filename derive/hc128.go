package derive

import (
	"encoding/binary"
	"math/bits"
)

// hc128Source implements the eSTREAM HC-128 stream cipher as a word
// source. No maintained Go implementation exists, so the cipher is
// implemented here from the eSTREAM specification; hc128_test.go pins the
// published key-0/iv-0 test vector.
//
// The 32-byte seed splits into key = seed[0:16] and iv = seed[16:32].
type hc128Source struct {
	p, q [512]uint32
	ctr  uint32 // step counter, mod 1024
}

// HC-128 auxiliary functions. Rotations are right rotations in the
// specification, written here as negative left rotations.
func hcF1(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func hcF2(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

func hcG1(x, y, z uint32) uint32 {
	return (bits.RotateLeft32(x, -10) ^ bits.RotateLeft32(z, -23)) + bits.RotateLeft32(y, -8)
}

func hcG2(x, y, z uint32) uint32 {
	return (bits.RotateLeft32(x, 10) ^ bits.RotateLeft32(z, 23)) + bits.RotateLeft32(y, 8)
}

func (s *hc128Source) hcH1(x uint32) uint32 {
	return s.q[x&0xff] + s.q[256+((x>>16)&0xff)]
}

func (s *hc128Source) hcH2(x uint32) uint32 {
	return s.p[x&0xff] + s.p[256+((x>>16)&0xff)]
}

// newHC128Source runs the HC-128 key/iv setup: expand key and iv into
// 1280 words, load the P and Q tables, then run 1024 update steps with the
// outputs discarded.
func newHC128Source(seed [SeedLen]byte) *hc128Source {
	var w [1280]uint32
	for i := 0; i < 4; i++ {
		k := binary.LittleEndian.Uint32(seed[i*4:])
		w[i], w[i+4] = k, k
	}
	for i := 0; i < 4; i++ {
		iv := binary.LittleEndian.Uint32(seed[16+i*4:])
		w[i+8], w[i+12] = iv, iv
	}
	for i := 16; i < len(w); i++ {
		w[i] = hcF2(w[i-2]) + w[i-7] + hcF1(w[i-15]) + w[i-16] + uint32(i)
	}

	s := &hc128Source{}
	copy(s.p[:], w[256:768])
	copy(s.q[:], w[768:1280])

	// Table indices below are taken mod 512; the &511 masks rely on
	// uint32 wraparound for the negative offsets.
	for i := uint32(0); i < 512; i++ {
		s.p[i] = (s.p[i] + hcG1(s.p[(i-3)&511], s.p[(i-10)&511], s.p[(i-511)&511])) ^ s.hcH1(s.p[(i-12)&511])
	}
	for i := uint32(0); i < 512; i++ {
		s.q[i] = (s.q[i] + hcG2(s.q[(i-3)&511], s.q[(i-10)&511], s.q[(i-511)&511])) ^ s.hcH2(s.q[(i-12)&511])
	}
	return s
}

// Next generates one keystream word: steps 0–511 of each 1024-step cycle
// update and read the P table, steps 512–1023 the Q table.
func (s *hc128Source) Next() uint32 {
	j := s.ctr & 511
	var out uint32
	if s.ctr&1023 < 512 {
		s.p[j] += hcG1(s.p[(j-3)&511], s.p[(j-10)&511], s.p[(j-511)&511])
		out = s.hcH1(s.p[(j-12)&511]) ^ s.p[j]
	} else {
		s.q[j] += hcG2(s.q[(j-3)&511], s.q[(j-10)&511], s.q[(j-511)&511])
		out = s.hcH2(s.q[(j-12)&511]) ^ s.q[j]
	}
	s.ctr = (s.ctr + 1) & 1023
	return out
}
