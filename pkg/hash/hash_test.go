package hash

import (
	"testing"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty store",
			input: "{}",
			want:  MD5Sum("{}")[:8],
		},
		{
			name:  "empty string",
			input: "",
			want:  "d41d8cd9",
		},
		{
			name:  "hello",
			input: "hello",
			want:  "5d41402a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fingerprint(tt.input)
			if len(got) != FingerprintLen {
				t.Errorf("Fingerprint() length = %d, want %d", len(got), FingerprintLen)
			}
			if got != tt.want {
				t.Errorf("Fingerprint(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFingerprintOrderSensitive(t *testing.T) {
	a := Fingerprint(`{"-a": "1", "-b": null}`)
	b := Fingerprint(`{"-b": null, "-a": "1"}`)
	if a == b {
		t.Errorf("Fingerprint() ignored order: both %s", a)
	}
}

func TestMD5Sum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name:  "hello",
			input: "hello",
			want:  "5d41402abc4b2a76b9719d911017c592",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MD5Sum(tt.input)
			if got != tt.want {
				t.Errorf("MD5Sum(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
