package magic

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) record(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func loggedRule(log *callLog, name string, result bool) *AsyncRule {
	return NewAsyncRule(Async(func([]byte) bool {
		log.record(name)
		return result
	}), name, 64)
}

func TestAsyncRule(t *testing.T) {
	ctx := context.Background()
	rule := NewAsyncRule(Async(func(b []byte) bool {
		time.Sleep(5 * time.Millisecond)
		return bytes.HasPrefix(b, []byte("Magical"))
	}), "Magical_File", 128)

	ok, err := rule.Matches(ctx, []byte("Magical"))
	if err != nil || !ok {
		t.Fatalf("Matches() = %v, %v; want true, nil", ok, err)
	}
	ok, err = rule.Matches(ctx, []byte("Mundane"))
	if err != nil || ok {
		t.Fatalf("Matches() = %v, %v; want false, nil", ok, err)
	}
	if rule.MaxBytesRead() != 128 {
		t.Errorf("MaxBytesRead() = %d, want 128", rule.MaxBytesRead())
	}
	if name, ok := AsyncKindAs[string](rule); !ok || name != "Magical_File" {
		t.Errorf("AsyncKindAs[string]() = %q, %v", name, ok)
	}
	if _, ok := AsyncKindAs[int](rule); ok {
		t.Error("AsyncKindAs[int]() should be false")
	}
}

func TestFirstMatchAsyncSequential(t *testing.T) {
	log := &callLog{}
	rules := []*AsyncRule{
		loggedRule(log, "a", false),
		loggedRule(log, "b", true),
		loggedRule(log, "c", true),
	}

	kind, ok, err := FirstMatchAsync(context.Background(), []byte("x"), rules)
	if err != nil || !ok || kind != "b" {
		t.Fatalf("FirstMatchAsync() = %v, %v, %v; want b, true, nil", kind, ok, err)
	}

	calls := log.get()
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("evaluation order = %v, want [a b]", calls)
	}
}

func TestFirstMatchAsyncAs(t *testing.T) {
	rules := []*AsyncRule{
		NewAsyncRule(Async(func([]byte) bool { return true }), "text", 8),
	}
	ctx := context.Background()

	s, ok, err := FirstMatchAsyncAs[string](ctx, []byte("x"), rules)
	if err != nil || !ok || s != "text" {
		t.Errorf("FirstMatchAsyncAs[string]() = %q, %v, %v", s, ok, err)
	}
	n, ok, err := FirstMatchAsyncAs[int](ctx, []byte("x"), rules)
	if err != nil || ok || n != 0 {
		t.Errorf("FirstMatchAsyncAs[int]() = %d, %v, %v; want 0, false, nil", n, ok, err)
	}
}

func TestFirstMatchAsyncNoMatch(t *testing.T) {
	log := &callLog{}
	rules := []*AsyncRule{loggedRule(log, "a", false), loggedRule(log, "b", false)}

	kind, ok, err := FirstMatchAsync(context.Background(), []byte("x"), rules)
	if err != nil || ok || kind != nil {
		t.Errorf("FirstMatchAsync() = %v, %v, %v; want nil, false, nil", kind, ok, err)
	}
	if got := log.get(); len(got) != 2 {
		t.Errorf("evaluated %v, want both rules", got)
	}
}

func TestAllMatchesAsync(t *testing.T) {
	log := &callLog{}
	rules := []*AsyncRule{
		loggedRule(log, "a", true),
		loggedRule(log, "b", false),
		loggedRule(log, "c", true),
	}

	kinds, err := AllMatchesAsync(context.Background(), []byte("x"), rules)
	if err != nil {
		t.Fatalf("AllMatchesAsync() error = %v", err)
	}
	if len(kinds) != 2 || kinds[0] != "a" || kinds[1] != "c" {
		t.Errorf("AllMatchesAsync() = %v, want [a c]", kinds)
	}
	if calls := log.get(); len(calls) != 3 || calls[0] != "a" || calls[1] != "b" || calls[2] != "c" {
		t.Errorf("evaluation order = %v, want [a b c]", calls)
	}
}

func TestAsyncClosedChannelIsNoMatch(t *testing.T) {
	closed := func([]byte) <-chan bool {
		ch := make(chan bool)
		close(ch)
		return ch
	}
	rule := NewAsyncRule(closed, "never", 8)

	ok, err := rule.Matches(context.Background(), []byte("x"))
	if err != nil || ok {
		t.Errorf("Matches() = %v, %v; want false, nil", ok, err)
	}
}

func TestAsyncContextEndsHungPredicate(t *testing.T) {
	hung := func([]byte) <-chan bool { return make(chan bool) }
	rules := []*AsyncRule{NewAsyncRule(hung, "hung", 8)}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, ok, err := FirstMatchAsync(ctx, []byte("x"), rules)
	if ok || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("FirstMatchAsync() = %v, %v; want false, deadline exceeded", ok, err)
	}

	kinds, err := AllMatchesAsync(ctx, []byte("x"), rules)
	if kinds != nil || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("AllMatchesAsync() = %v, %v; want nil, deadline exceeded", kinds, err)
	}
}
