package util

import (
	"regexp"
	"strings"
)

// bssidPattern matches the canonical colon-separated hardware address
// form: exactly six groups of two hex digits. Stricter than
// net.ParseMAC, which also accepts dashes, dots, and longer EUI forms.
var bssidPattern = regexp.MustCompile(`^[0-9A-Fa-f]{2}(:[0-9A-Fa-f]{2}){5}$`)

// ValidBSSID reports whether s is a well-formed hardware address.
func ValidBSSID(s string) bool {
	return bssidPattern.MatchString(s)
}

// NormalizeBSSID upper-cases a hardware address so that observations of
// the same radio always aggregate under one key. The input must already
// be a valid BSSID.
func NormalizeBSSID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
