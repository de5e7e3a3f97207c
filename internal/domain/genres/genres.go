// Package genres encodes and decodes the comma-joined tag lists stored on
// venue and artist records. The delimiter is a plain comma with no escaping;
// tag names containing a comma are rejected before they reach the store.
package genres

import (
	"fmt"
	"strings"
)

const Delimiter = ","

// Join encodes a tag list for storage. An empty or nil list encodes to "".
func Join(list []string) string {
	return strings.Join(list, Delimiter)
}

// Split decodes a stored tag string. The empty string decodes to an empty
// list, never to [""]. Whitespace around tags is dropped so rows written
// with a ", " separator by older tooling still decode cleanly.
func Split(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, Delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// Validate rejects tag names that cannot round-trip through the encoding.
func Validate(list []string) error {
	for _, g := range list {
		if strings.Contains(g, Delimiter) {
			return fmt.Errorf("genre %q contains the reserved delimiter %q", g, Delimiter)
		}
	}
	return nil
}
