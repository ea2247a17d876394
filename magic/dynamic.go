package magic

// DynamicRule is a rule built at runtime from a closure, with a kind of any type.
// It suits plugin-style or configuration-driven detection where neither the
// predicate nor the result type is known at compile time.
type DynamicRule struct {
	matcher      MatchFunc
	kind         any
	maxBytesRead int
}

// NewDynamicRule returns a rule that reports kind when matcher returns true.
// maxBytesRead is advisory; no engine enforces it.
func NewDynamicRule(matcher MatchFunc, kind any, maxBytesRead int) *DynamicRule {
	return &DynamicRule{
		matcher:      matcher,
		kind:         kind,
		maxBytesRead: maxBytesRead,
	}
}

// Matches invokes the rule's predicate.
func (r *DynamicRule) Matches(data []byte) bool {
	return r.matcher(data)
}

// Kind returns the stored kind with its concrete type erased.
func (r *DynamicRule) Kind() any {
	return r.kind
}

// MaxBytesRead returns the suggested header size for this rule.
func (r *DynamicRule) MaxBytesRead() int {
	return r.maxBytesRead
}

// KindAs recovers the rule's kind as a T. The second result is false when the
// stored kind is not a T.
func KindAs[T any](r *DynamicRule) (T, bool) {
	v, ok := r.kind.(T)
	return v, ok
}

// FirstMatch returns the kind of the first rule matching data.
func FirstMatch(data []byte, rules []*DynamicRule) (any, bool) {
	for _, r := range rules {
		if r.Matches(data) {
			return r.kind, true
		}
	}
	return nil, false
}

// FirstMatchAs is FirstMatch followed by a checked conversion to T.
// If the first matching rule holds some other type the result is false, even
// when a later matching rule holds a T.
func FirstMatchAs[T any](data []byte, rules []*DynamicRule) (T, bool) {
	kind, ok := FirstMatch(data, rules)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := kind.(T)
	return v, ok
}

// AllMatches returns the kind of every rule matching data, in rule order.
func AllMatches(data []byte, rules []*DynamicRule) []any {
	var kinds []any
	for _, r := range rules {
		if r.Matches(data) {
			kinds = append(kinds, r.kind)
		}
	}
	return kinds
}
