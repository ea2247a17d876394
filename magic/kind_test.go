package magic

import "testing"

func TestKindInfo(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		mime string
		ext  string
	}{
		{PNG, "png", "image/png", ".png"},
		{ISO, "iso9660", "application/x-iso9660-image", ".iso"},
		{Tar, "tar", "application/x-tar", ".tar"},
		{ELF, "elf", "application/x-executable", ""},
		{Unknown, "unknown", "application/octet-stream", ""},
		{Kind(-1), "unknown", "application/octet-stream", ""},
		{kindCount + 5, "unknown", "application/octet-stream", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.MIME(); got != tt.mime {
				t.Errorf("MIME() = %q, want %q", got, tt.mime)
			}
			if got := tt.kind.Extension(); got != tt.ext {
				t.Errorf("Extension() = %q, want %q", got, tt.ext)
			}
		})
	}
}

func TestIsUnknown(t *testing.T) {
	if !Unknown.IsUnknown() {
		t.Error("Unknown.IsUnknown() = false")
	}
	if PDF.IsUnknown() {
		t.Error("PDF.IsUnknown() = true")
	}
	if !Kind(1000).IsUnknown() {
		t.Error("out-of-range kind should be unknown")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("unknown"); ok {
		t.Error("ParseKind(unknown) should fail")
	}
	if _, ok := ParseKind("nope"); ok {
		t.Error("ParseKind(nope) should fail")
	}
}

func TestEveryKindHasARule(t *testing.T) {
	for _, k := range Kinds() {
		if _, ok := RuleFor(k); !ok {
			t.Errorf("no built-in rule reports %v", k)
		}
	}
	if _, ok := RuleFor(Unknown); ok {
		t.Error("Unknown must not have a rule")
	}
}

func TestKindNamesUnique(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		if prev, dup := seen[k.String()]; dup {
			t.Errorf("%v and %v share the name %q", prev, k, k.String())
		}
		seen[k.String()] = k
	}
}
