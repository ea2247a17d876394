package magic

import "context"

// AsyncMatchFunc starts evaluating data and returns a channel that yields the
// verdict. A channel closed without a value counts as no match.
// The predicate must copy data if it keeps using it after returning.
type AsyncMatchFunc func(data []byte) <-chan bool

// Async adapts a blocking predicate into an AsyncMatchFunc that runs it on its
// own goroutine.
func Async(fn MatchFunc) AsyncMatchFunc {
	return func(data []byte) <-chan bool {
		ch := make(chan bool, 1)
		go func() {
			ch <- fn(data)
		}()
		return ch
	}
}

// AsyncRule is the asynchronous counterpart of DynamicRule.
// Its kind may be shared by several goroutines and must be safe for concurrent reads.
type AsyncRule struct {
	matcher      AsyncMatchFunc
	kind         any
	maxBytesRead int
}

// NewAsyncRule returns a rule that reports kind when matcher resolves to true.
// maxBytesRead is advisory.
func NewAsyncRule(matcher AsyncMatchFunc, kind any, maxBytesRead int) *AsyncRule {
	return &AsyncRule{
		matcher:      matcher,
		kind:         kind,
		maxBytesRead: maxBytesRead,
	}
}

// Matches starts the predicate and waits for its verdict.
// The only error is ctx.Err() when ctx ends first; the predicate itself is not
// interrupted.
func (r *AsyncRule) Matches(ctx context.Context, data []byte) (bool, error) {
	select {
	case ok := <-r.matcher(data):
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Kind returns the stored kind with its concrete type erased.
func (r *AsyncRule) Kind() any {
	return r.kind
}

// MaxBytesRead returns the suggested header size for this rule.
func (r *AsyncRule) MaxBytesRead() int {
	return r.maxBytesRead
}

// AsyncKindAs recovers the rule's kind as a T.
func AsyncKindAs[T any](r *AsyncRule) (T, bool) {
	v, ok := r.kind.(T)
	return v, ok
}

// FirstMatchAsync awaits each rule in order and returns the kind of the first
// one resolving to true. Rules are never evaluated concurrently, so a rule
// pays the latency of every rule before it.
func FirstMatchAsync(ctx context.Context, data []byte, rules []*AsyncRule) (any, bool, error) {
	for _, r := range rules {
		ok, err := r.Matches(ctx, data)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return r.kind, true, nil
		}
	}
	return nil, false, nil
}

// FirstMatchAsyncAs is FirstMatchAsync followed by a checked conversion to T.
func FirstMatchAsyncAs[T any](ctx context.Context, data []byte, rules []*AsyncRule) (T, bool, error) {
	var zero T
	kind, ok, err := FirstMatchAsync(ctx, data, rules)
	if err != nil || !ok {
		return zero, false, err
	}
	v, ok := kind.(T)
	return v, ok, nil
}

// AllMatchesAsync awaits every rule in order and returns the kinds of those
// resolving to true.
func AllMatchesAsync(ctx context.Context, data []byte, rules []*AsyncRule) ([]any, error) {
	var kinds []any
	for _, r := range rules {
		ok, err := r.Matches(ctx, data)
		if err != nil {
			return nil, err
		}
		if ok {
			kinds = append(kinds, r.kind)
		}
	}
	return kinds, nil
}
