package util

import "testing"

func TestValidBSSID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase hex", input: "aa:bb:cc:dd:ee:ff", want: true},
		{name: "uppercase hex", input: "AA:BB:CC:DD:EE:FF", want: true},
		{name: "mixed case", input: "Aa:bB:CC:dd:EE:ff", want: true},
		{name: "digits", input: "00:11:22:33:44:55", want: true},
		{name: "dash separators", input: "aa-bb-cc-dd-ee-ff", want: false},
		{name: "dotted quad form", input: "aabb.ccdd.eeff", want: false},
		{name: "too few octets", input: "aa:bb:cc:dd:ee", want: false},
		{name: "too many octets", input: "aa:bb:cc:dd:ee:ff:00", want: false},
		{name: "non-hex digit", input: "aa:bb:cc:dd:ee:fg", want: false},
		{name: "single hex digit octet", input: "a:bb:cc:dd:ee:ff", want: false},
		{name: "empty", input: "", want: false},
		{name: "embedded whitespace", input: "aa:bb:cc:dd:ee:ff ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidBSSID(tt.input); got != tt.want {
				t.Errorf("ValidBSSID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeBSSID(t *testing.T) {
	if got := NormalizeBSSID("aa:bb:cc:dd:ee:0f"); got != "AA:BB:CC:DD:EE:0F" {
		t.Errorf("NormalizeBSSID = %q, want AA:BB:CC:DD:EE:0F", got)
	}
	if got := NormalizeBSSID(" AA:BB:CC:DD:EE:FF "); got != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("NormalizeBSSID with padding = %q", got)
	}
}
