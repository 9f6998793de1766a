package strings

import (
	"strings"
)

// SupplySuffix returns text ending with suffix, appending it if missing.
func SupplySuffix(text, suffix string) string {
	if strings.HasSuffix(text, suffix) {
		return text
	}
	return text + suffix
}

// SplitIfNotEmpty works like strings.Split, but returns an empty slice for "".
//
// Each element is trimmed and empty elements are dropped.
func SplitIfNotEmpty(s string, sep string) []string {
	if s == "" {
		return []string{}
	}
	ret := []string{}
	for _, item := range strings.Split(s, sep) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		ret = append(ret, item)
	}
	return ret
}
