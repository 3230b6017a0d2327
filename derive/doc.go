// Package derive implements deterministic password derivation: a pure
// function from (secret, label, preset) to a fixed-length password.
//
// # Pipeline
//
// [Password] runs a strictly sequential pipeline with no retry or
// partial-result path:
//
//  1. Validate the inputs (empty secret/label, length vs. group count,
//     empty groups).
//  2. Derive a 32-byte master seed from a canonical concatenation of the
//     inputs and preset fields, using the preset's hash algorithm.
//  3. Check the charset group count against the seed's 4-byte-per-group
//     coverage budget (at most [MaxCharsetGroups] groups).
//  4. Inject one character per charset group, indexed by disjoint 4-byte
//     slices of the seed, guaranteeing coverage of every group.
//  5. Seed a deterministic [WordSource] from the same master seed and fill
//     the remaining slots from the union of all groups, sampling without
//     modulo bias via [UniformUint32].
//  6. Shuffle the whole buffer with an unbiased Fisher–Yates pass.
//
// The master seed is consumed twice on purpose — sliced directly for
// coverage injection and used whole to seed the bit source. The goal is
// reproducibility, not unpredictability against someone who already holds
// the secret, so the double use is a documented property of the scheme,
// not a weakness being papered over.
//
// # Determinism and compatibility
//
// The canonical seed input, the coverage slicing, the rejection sampler,
// and the shuffle order are all frozen. Any deviation — a different field
// separator, HTML-escaped JSON, a plain-modulo shuffle — silently changes
// every password ever derived, which is the one failure mode a
// deterministic generator must never have. The test suite pins golden
// outputs and primitive-level vectors (RFC 8439 ChaCha20, eSTREAM HC-128)
// to hold that line.
//
// # Thread safety
//
// The package keeps no state. Every call allocates only call-local
// buffers, so [Password] is safe for concurrent use without locks. The
// memory-hard hash choices (Argon2id, scrypt) re-run their full cost on
// every call; batch callers pay that cost per item by design.
package derive
