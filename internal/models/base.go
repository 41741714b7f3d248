// Package models holds the domain entities used by repositories, controllers
// and the derived-metrics engine. They are built from wire DTOs and never
// decoded from JSON directly.
package models

import "strings"

// parseEnum matches raw case-insensitively against the known values and
// returns fallback when nothing matches.
func parseEnum[T ~string](raw string, fallback T, known ...T) T {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	for _, k := range known {
		if string(k) == upper {
			return k
		}
	}
	return fallback
}
