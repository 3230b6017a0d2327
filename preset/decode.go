package preset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads one JSON preset from r.
//
// Unknown top-level fields are ignored (forward compatibility), but the
// algorithm enumerations are closed: a preset naming an algorithm this
// build does not implement fails with [ErrDecode]. A preset whose version
// is not [SchemaVersion] fails with [ErrUnsupportedVersion].
func Decode(r io.Reader) (Preset, error) {
	var p Preset
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if p.Version != SchemaVersion {
		return Preset{}, fmt.Errorf("%w: got version %d, this build supports version %d",
			ErrUnsupportedVersion, p.Version, SchemaVersion)
	}
	return p, nil
}

// DecodeFile reads a JSON preset from the file at path.
func DecodeFile(path string) (Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preset{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()
	return Decode(f)
}
