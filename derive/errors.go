package derive

import "errors"

// Sentinel errors returned by the derivation pipeline.
//
// Every error is a deterministic function of the inputs — retrying with
// identical arguments cannot change the outcome — so callers should report
// and stop rather than retry. Use [errors.Is] for comparisons:
//
//	_, err := derive.Password(secret, label, p)
//	if errors.Is(err, derive.ErrLengthTooShort) {
//	    // the preset's length cannot cover its charset groups
//	}
var (
	// ErrInputEmpty is returned when the secret or the label is empty.
	ErrInputEmpty = errors.New("derive: secret and label must not be empty")

	// ErrLengthTooShort is returned when the preset's length is smaller
	// than its number of charset groups, making one-character-per-group
	// coverage impossible. The wrapped message carries both values.
	ErrLengthTooShort = errors.New("derive: password length is too short to cover every charset group")

	// ErrEmptyCharset is returned when any declared charset group contains
	// no characters.
	ErrEmptyCharset = errors.New("derive: every charset group must contain at least one character")

	// ErrTooManyGroups is returned when the preset declares more charset
	// groups than the master seed's coverage budget supports
	// ([MaxCharsetGroups]). The wrapped message carries both values.
	ErrTooManyGroups = errors.New("derive: too many charset groups")

	// ErrHashingFailed is returned when a memory-hard KDF rejects its
	// parameters or fails internally. The wrapped message carries the
	// underlying cause.
	ErrHashingFailed = errors.New("derive: seed derivation failed")

	// ErrUnsupportedAlgorithm is returned when a preset reaches the core
	// with an algorithm name outside the supported set. Presets decoded by
	// the preset package cannot trigger this; hand-built ones can.
	ErrUnsupportedAlgorithm = errors.New("derive: unsupported algorithm")
)
