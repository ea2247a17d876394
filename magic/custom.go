package magic

// CustomRule is a caller-defined rule whose Kind may be any type.
// A nil Strategy behaves as Default().
type CustomRule[K any] struct {
	Signatures   [][]byte
	Offsets      []int
	MaxBytesRead int
	Kind         K
	Strategy     Strategy
}

// Matches reports whether data satisfies the rule's strategy.
func (r *CustomRule[K]) Matches(data []byte) bool {
	if r.Strategy == nil {
		return matchSignatures(data, r.Signatures, r.Offsets)
	}
	return r.Strategy.matches(data, r.Signatures, r.Offsets)
}

// Strategy decides how a CustomRule is evaluated.
// The set of strategies is closed; build one with Default, WithFn, AnyOf or AllOf.
type Strategy interface {
	matches(data []byte, signatures [][]byte, offsets []int) bool
}

type defaultStrategy struct{}

func (defaultStrategy) matches(data []byte, signatures [][]byte, offsets []int) bool {
	return matchSignatures(data, signatures, offsets)
}

type fnStrategy struct {
	fn MatchFunc
}

func (s fnStrategy) matches(data []byte, _ [][]byte, _ []int) bool {
	return s.fn(data)
}

type anyStrategy struct {
	fns []MatchFunc
}

func (s anyStrategy) matches(data []byte, _ [][]byte, _ []int) bool {
	for _, fn := range s.fns {
		if fn(data) {
			return true
		}
	}
	return false
}

type allStrategy struct {
	fns []MatchFunc
}

func (s allStrategy) matches(data []byte, _ [][]byte, _ []int) bool {
	for _, fn := range s.fns {
		if !fn(data) {
			return false
		}
	}
	return true
}

// Default compares the rule's signatures at its offsets, like the built-in table.
func Default() Strategy {
	return defaultStrategy{}
}

// WithFn delegates the decision to fn; signatures and offsets are ignored.
func WithFn(fn MatchFunc) Strategy {
	return fnStrategy{fn: fn}
}

// AnyOf matches when at least one of the predicates returns true. Evaluation
// stops at the first true. At least one predicate is required.
func AnyOf(fn MatchFunc, more ...MatchFunc) Strategy {
	return anyStrategy{fns: append([]MatchFunc{fn}, more...)}
}

// AllOf matches when every one of the predicates returns true. Evaluation
// stops at the first false. At least one predicate is required.
func AllOf(fn MatchFunc, more ...MatchFunc) Strategy {
	return allStrategy{fns: append([]MatchFunc{fn}, more...)}
}

// MatchCustom returns the Kind of the first rule matching data, or fallback.
//
// MaxBytesRead is not enforced here; making sure data is long enough for the
// rules is up to the caller. Use MatchCustomBounded to have it enforced.
func MatchCustom[K any](data []byte, rules []CustomRule[K], fallback K) K {
	for i := range rules {
		if rules[i].Matches(data) {
			return rules[i].Kind
		}
	}
	return fallback
}

// MatchCustomBounded is MatchCustom restricted to rules whose MaxBytesRead does
// not exceed allowedMaxRead.
func MatchCustomBounded[K any](data []byte, rules []CustomRule[K], allowedMaxRead int, fallback K) K {
	for i := range rules {
		if rules[i].MaxBytesRead > allowedMaxRead {
			continue
		}
		if rules[i].Matches(data) {
			return rules[i].Kind
		}
	}
	return fallback
}
