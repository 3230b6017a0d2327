package preset

import "errors"

// Sentinel errors returned by preset decoding.
//
// Use [errors.Is] for comparisons:
//
//	_, err := preset.DecodeFile(path)
//	if errors.Is(err, preset.ErrDecode) {
//	    // the file is missing, malformed, or names an unknown algorithm
//	}
var (
	// ErrDecode is returned when preset configuration cannot be read or
	// parsed: unreadable file, malformed JSON, wrong field types, or an
	// algorithm name outside the supported set.
	ErrDecode = errors.New("preset: failed to decode preset")

	// ErrUnsupportedVersion is returned when a structurally valid preset
	// declares a schema version other than [SchemaVersion]. Version gating
	// happens at decode time so the derivation core never sees a preset it
	// might misinterpret.
	ErrUnsupportedVersion = errors.New("preset: unsupported preset version")
)
