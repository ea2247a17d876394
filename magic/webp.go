package magic

import (
	"bytes"
	"encoding/binary"
)

var (
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

// IsWebP reports whether data starts with a RIFF container holding a WEBP
// payload: "RIFF" at 0, "WEBP" at 8, and a little-endian chunk size at 4 that
// is larger than 4.
func IsWebP(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	if !bytes.Equal(data[0:4], riffMagic) || !bytes.Equal(data[8:12], webpMagic) {
		return false
	}
	return binary.LittleEndian.Uint32(data[4:8]) > 4
}
