package magic

import "testing"

func TestIsWebP(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{"valid", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), true},
		{"exactly twelve bytes", []byte("RIFF\x05\x00\x00\x00WEBP"), true},
		{"size field too small", []byte("RIFF\x04\x00\x00\x00WEBP"), false},
		{"size field zero", []byte("RIFF\x00\x00\x00\x00WEBP"), false},
		{"large size field", []byte("RIFF\xff\xff\xff\xffWEBP"), true},
		{"WAVE payload", []byte("RIFF\x24\x00\x00\x00WAVE"), false},
		{"not RIFF", []byte("RIFX\x24\x00\x00\x00WEBP"), false},
		{"too short", []byte("RIFF\x24\x00\x00\x00WEB"), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWebP(tt.data); got != tt.expected {
				t.Errorf("IsWebP() = %v, want %v", got, tt.expected)
			}
		})
	}
}
