// Package magic identifies binary formats by comparing header bytes against an
// ordered table of signatures, in the spirit of the classic file(1) utility.
//
// The package does no I/O and keeps no mutable state: every table is built once
// at package initialization and only read afterwards, so all functions are safe
// for concurrent use.
//
// # Built-in table
//
// Read a header sized with RecommendedReadSize and pass it to Match:
//
//	header, err := filemagic.ReadHeader("disk.iso", magic.RecommendedReadSize())
//	if err != nil {
//	    return err
//	}
//	kind := magic.Match(header) // magic.ISO
//
// Some formats keep their signature far from the start of the file (ISO 9660
// at 32769, TAR at 257). A short header does not produce an error for them, it
// produces Unknown. Size reads with RecommendedReadSize.
//
// When fewer bytes are available, MatchBounded only consults rules whose
// MaxBytesRead fits in the declared budget, and MatchIfLongEnough refuses to
// match buffers shorter than the budget.
//
// # Rule order
//
// Matching is first-match-wins in table order. Order is how overlapping
// signatures are resolved: no rule is preferred for being longer or more specific.
//
// # Custom rules
//
// CustomRule carries a caller-defined kind type and a Strategy:
//
//	rules := []magic.CustomRule[string]{{
//	    MaxBytesRead: 32,
//	    Kind:         "magical-girl",
//	    Strategy: magic.AnyOf(
//	        func(b []byte) bool { return bytes.HasPrefix(b, []byte("MagicalGirl")) },
//	        func(b []byte) bool { return bytes.HasPrefix(b, []byte("MahouShoujo")) },
//	    ),
//	}}
//	kind := magic.MatchCustom(data, rules, "unknown")
//
// Building with -tags magic_unsafe adds WithFnUnsafe, AnyOfUnsafe and
// AllOfUnsafe, whose predicates receive a raw pointer and no length.
//
// # Dynamic and async rules
//
// DynamicRule holds a closure and a kind of any type, recovered with KindAs or
// FirstMatchAs. AsyncRule is the same with a predicate that returns a channel;
// FirstMatchAsync and AllMatchesAsync await rules one after another, in order.
package magic
