package filemagic

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ChecksumAlgorithm names a header fingerprint algorithm.
type ChecksumAlgorithm string

const (
	// ChecksumXXHash is xxHash64, the default
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
	// ChecksumSHA256 is SHA-256
	ChecksumSHA256 ChecksumAlgorithm = "sha256"
	// ChecksumCRC32 is CRC-32 (IEEE)
	ChecksumCRC32 ChecksumAlgorithm = "crc32"
	// ChecksumNone disables fingerprinting
	ChecksumNone ChecksumAlgorithm = "none"
)

// NewHasher creates a new hash.Hash for the given algorithm.
// Returns an error if the algorithm is not supported.
func NewHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case ChecksumSHA256:
		return sha256.New(), nil
	case ChecksumCRC32:
		return crc32.NewIEEE(), nil
	case ChecksumXXHash:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported checksum algorithm: %s", ErrNotSupported, algorithm)
	}
}

// CalculateChecksum reads from the reader and calculates the checksum using
// the specified algorithm. Returns the hex-encoded checksum string.
func CalculateChecksum(r io.Reader, algorithm ChecksumAlgorithm) (string, error) {
	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to calculate checksum: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// headerChecksum fingerprints an in-memory header. ChecksumNone and "" yield "".
func headerChecksum(header []byte, algorithm ChecksumAlgorithm) (string, error) {
	if algorithm == "" || algorithm == ChecksumNone {
		return "", nil
	}
	if algorithm == ChecksumXXHash {
		return fmt.Sprintf("%016x", xxhash.Sum64(header)), nil
	}

	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}
	h.Write(header)
	return hex.EncodeToString(h.Sum(nil)), nil
}
