package magic

import (
	"bytes"
	"testing"
)

type pluginFormat struct {
	Name    string
	Version int
}

func hasPrefix(prefix string) MatchFunc {
	return func(data []byte) bool {
		return bytes.HasPrefix(data, []byte(prefix))
	}
}

func TestDynamicRule(t *testing.T) {
	rule := NewDynamicRule(hasPrefix("MAGIC"), "MyFormat", 32)

	if !rule.Matches([]byte("MAGIC_DATA")) {
		t.Error("Matches() = false, want true")
	}
	if rule.Matches([]byte("OTHER")) {
		t.Error("Matches() = true, want false")
	}
	if got := rule.MaxBytesRead(); got != 32 {
		t.Errorf("MaxBytesRead() = %d, want 32", got)
	}

	name, ok := KindAs[string](rule)
	if !ok || name != "MyFormat" {
		t.Errorf("KindAs[string]() = %q, %v", name, ok)
	}
	if n, ok := KindAs[int](rule); ok {
		t.Errorf("KindAs[int]() = %d, true; want no value", n)
	}
}

func TestDynamicRuleStructKind(t *testing.T) {
	rule := NewDynamicRule(hasPrefix("PLUG"), pluginFormat{Name: "plug", Version: 2}, 16)

	got, ok := KindAs[pluginFormat](rule)
	if !ok || got.Version != 2 {
		t.Errorf("KindAs[pluginFormat]() = %+v, %v", got, ok)
	}
	if _, ok := KindAs[*pluginFormat](rule); ok {
		t.Error("KindAs[*pluginFormat]() should not match a value kind")
	}
}

func TestFirstMatch(t *testing.T) {
	rules := []*DynamicRule{
		NewDynamicRule(hasPrefix("AAA"), "triple-a", 8),
		NewDynamicRule(hasPrefix("A"), 42, 8),
		NewDynamicRule(hasPrefix("B"), "b", 8),
	}

	tests := []struct {
		name     string
		data     string
		expected any
		ok       bool
	}{
		{"first rule", "AAAB", "triple-a", true},
		{"second rule", "ABBB", 42, true},
		{"third rule", "BBBB", "b", true},
		{"no match", "CCCC", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstMatch([]byte(tt.data), rules)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("FirstMatch() = %v, %v; want %v, %v", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestFirstMatchAs(t *testing.T) {
	rules := []*DynamicRule{
		NewDynamicRule(hasPrefix("A"), 42, 8),
		NewDynamicRule(hasPrefix("A"), "later", 8),
	}

	if n, ok := FirstMatchAs[int]([]byte("A"), rules); !ok || n != 42 {
		t.Errorf("FirstMatchAs[int]() = %d, %v; want 42, true", n, ok)
	}
	// The first match holds an int; a later string match is not consulted.
	if s, ok := FirstMatchAs[string]([]byte("A"), rules); ok {
		t.Errorf("FirstMatchAs[string]() = %q, true; want no value", s)
	}
	if _, ok := FirstMatchAs[int]([]byte("Z"), rules); ok {
		t.Error("FirstMatchAs[int]() on no match should be false")
	}
}

func TestAllMatches(t *testing.T) {
	rules := []*DynamicRule{
		NewDynamicRule(hasPrefix("A"), "one", 8),
		NewDynamicRule(hasPrefix("B"), "two", 8),
		NewDynamicRule(hasPrefix("AB"), "three", 8),
	}

	got := AllMatches([]byte("ABC"), rules)
	if len(got) != 2 || got[0] != "one" || got[1] != "three" {
		t.Errorf("AllMatches() = %v, want [one three]", got)
	}

	if got := AllMatches([]byte("zzz"), rules); len(got) != 0 {
		t.Errorf("AllMatches() = %v, want none", got)
	}
}

func TestDynamicRuleWithStaticEngine(t *testing.T) {
	// A dynamic rule can wrap the built-in engine.
	rule := NewDynamicRule(func(b []byte) bool { return Match(b) == PNG }, PNG, DefaultMaxBytesRead)

	kind, ok := FirstMatchAs[Kind]([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, []*DynamicRule{rule})
	if !ok || kind != PNG {
		t.Errorf("FirstMatchAs[Kind]() = %v, %v", kind, ok)
	}
}
