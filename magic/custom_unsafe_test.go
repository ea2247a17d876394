//go:build magic_unsafe

package magic

import (
	"bytes"
	"testing"
	"unsafe"
)

const magicalGirl = "MagicalGirl"

// The caller guarantees at least len(magicalGirl) bytes behind the pointer.
func isMagicalGirlUnsafe(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}
	data := unsafe.Slice((*byte)(p), len(magicalGirl))
	return bytes.Equal(data, []byte(magicalGirl))
}

func unsafeFalse(unsafe.Pointer) bool { return false }

func TestMatchCustomUnsafe(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		expected string
	}{
		{"single", WithFnUnsafe(isMagicalGirlUnsafe), "moe"},
		{"any of false, true", AnyOfUnsafe(unsafeFalse, isMagicalGirlUnsafe), "moe"},
		{"all of false, true", AllOfUnsafe(unsafeFalse, isMagicalGirlUnsafe), "fallback"},
		{"all of one", AllOfUnsafe(isMagicalGirlUnsafe), "moe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := []CustomRule[string]{{MaxBytesRead: 200, Kind: "moe", Strategy: tt.strategy}}
			if got := MatchCustom([]byte(magicalGirl), rules, "fallback"); got != tt.expected {
				t.Errorf("MatchCustom() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUnsafeEmptyBuffer(t *testing.T) {
	rules := []CustomRule[string]{{Kind: "moe", Strategy: WithFnUnsafe(isMagicalGirlUnsafe)}}
	if got := MatchCustom(nil, rules, "fallback"); got != "fallback" {
		t.Errorf("MatchCustom(nil) = %q, want fallback", got)
	}
}
