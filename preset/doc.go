// Package preset models the external configuration of the password
// derivation pipeline: which algorithms to run, how long the output is,
// and which character groups it must draw from.
//
// A [Preset] is an immutable value loaded once per invocation, normally
// from a JSON file via [Decode] or [DecodeFile]. The algorithm fields are
// closed enumerations — decoding rejects any value outside the supported
// set, so a Preset that decodes successfully names only algorithms this
// build can execute. Unknown top-level JSON fields are ignored for forward
// compatibility, but an unsupported schema version is rejected outright:
// a newer preset must never be silently reinterpreted, because every field
// of the preset participates in seed derivation and a drifting
// interpretation would change previously generated passwords.
//
// # Quick start
//
//	p, err := preset.DecodeFile("default.json")
//	if err != nil { log.Fatal(err) }
//
//	pw, err := derive.Password(secret, "example.com", p)
//
// [Default] returns the stock preset (SHA-256 seed, ChaCha20 stream,
// Fisher–Yates shuffle, 16 characters over four groups) for callers that
// ship no configuration file.
package preset
