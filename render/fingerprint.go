package render

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint renders r into a scratch buffer and hashes the bytes. Hosts
// that redraw on every notification can compare fingerprints to skip frames
// whose output is identical to the previous one.
func Fingerprint(r Renderable) (uint64, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return 0, err
	}
	return xxhash.Sum64(buf.Bytes()), nil
}
