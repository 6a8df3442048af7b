package utils

import "strings"

const maskLength = 8

// MaskKey hides a credential so request parameters can be logged.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	return strings.Repeat("*", maskLength)
}

// TrimTrailingDot normalizes a dns name,
// e.g. dns1.registrar-servers.com. => dns1.registrar-servers.com
func TrimTrailingDot(name string) string {
	return strings.TrimSuffix(name, ".")
}

// YesNo renders a boolean flag the way the report prints it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
