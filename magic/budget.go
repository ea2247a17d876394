package magic

// Read budget constants.
const (
	// DefaultMaxBytesRead is the header window used by rules whose signature
	// sits near the start of the file, and the fallback budget for an empty table.
	DefaultMaxBytesRead = 2048

	// DefaultOffset is where most signatures start.
	DefaultOffset = 0
)

var (
	// ISOOffsets are the positions of the ISO 9660 volume descriptor identifier.
	ISOOffsets = []int{32769, 34817, 36865}

	// TAROffsets is the position of the POSIX ustar magic.
	TAROffsets = []int{257}

	// ISOMaxBytesRead is the number of bytes needed to check every ISO offset.
	ISOMaxBytesRead = MaxBytesNeeded(ISOOffsets, isoSignature)

	// TARMaxBytesRead is the number of bytes needed to check the ustar magic.
	TARMaxBytesRead = MaxBytesNeeded(TAROffsets, tarSignature)
)

// MaxBytesNeeded returns max(offsets) + len(signature): the smallest buffer
// length at which signature can be checked at every offset.
// An empty offsets slice counts as a single offset of 0.
func MaxBytesNeeded(offsets []int, signature []byte) int {
	maxOffset := 0
	for _, off := range offsets {
		if off > maxOffset {
			maxOffset = off
		}
	}
	return maxOffset + len(signature)
}

// RecommendedReadSize returns how many header bytes a caller must read so that
// every rule of the built-in table is checkable.
//
// Reading less does not fail: formats whose signature lies past the end of the
// buffer (ISO 9660 at 32769+, for instance) silently come back as Unknown.
// Always size header reads with this value.
func RecommendedReadSize() int {
	return recommendedReadSize
}

// RecommendedReadSizeFor returns the largest MaxBytesRead of rules, or
// DefaultMaxBytesRead if rules is empty.
func RecommendedReadSizeFor(rules []Rule) int {
	if len(rules) == 0 {
		return DefaultMaxBytesRead
	}
	size := rules[0].MaxBytesRead
	for _, r := range rules[1:] {
		if r.MaxBytesRead > size {
			size = r.MaxBytesRead
		}
	}
	return size
}

// headerBudget is the MaxBytesRead of a table rule: the default header window,
// widened when the signature reaches past it.
func headerBudget(offsets []int, signatures ...[]byte) int {
	budget := DefaultMaxBytesRead
	for _, sig := range signatures {
		if n := MaxBytesNeeded(offsets, sig); n > budget {
			budget = n
		}
	}
	return budget
}
