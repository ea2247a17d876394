package magic

import "bytes"

// MatchFunc is a pure predicate over a header buffer.
// It must not retain or modify data.
type MatchFunc func(data []byte) bool

// Rule pairs match criteria with the Kind reported on a match.
//
// With a nil Match the rule uses the default strategy: it matches when any
// signature appears at any offset. With a non-nil Match, Signatures and Offsets
// are informational and the predicate alone decides.
type Rule struct {
	Signatures   [][]byte
	Offsets      []int
	MaxBytesRead int
	Kind         Kind
	Match        MatchFunc
}

// Matches reports whether data satisfies the rule. It never panics on short input.
func (r *Rule) Matches(data []byte) bool {
	if r.Match != nil {
		return r.Match(data)
	}
	return matchSignatures(data, r.Signatures, r.Offsets)
}

// matchSignatures is the default strategy shared by every tier: true iff some
// signature s and offset o satisfy len(data) >= o+len(s) and data[o:o+len(s)] == s.
func matchSignatures(data []byte, signatures [][]byte, offsets []int) bool {
	for _, sig := range signatures {
		for _, off := range offsets {
			if matchAt(data, sig, off) {
				return true
			}
		}
	}
	return false
}

func matchAt(data, sig []byte, off int) bool {
	if off < 0 || off+len(sig) > len(data) {
		return false
	}
	return bytes.Equal(data[off:off+len(sig)], sig)
}
