// Package identity maps externally authenticated principals onto
// application profiles: it sanitizes handle candidates, probes the handle
// namespace, allocates a unique handle and reconciles a principal to
// exactly one profile row. Every profile-dependent surface funnels through
// here, so this package is the single source of truth for handles.
package identity

import "strings"

// FallbackHandle is returned when sanitization leaves nothing usable.
const FallbackHandle = "user"

// Sanitize turns an arbitrary display name or email local-part into a
// handle candidate: lowercased, whitespace becomes an underscore, every
// other character outside [a-z0-9_] is dropped, underscore runs collapse to
// one, and the result is truncated to maxLen. An empty result becomes
// FallbackHandle. Pure, never fails.
func Sanitize(raw string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 20
	}

	var b strings.Builder
	b.Grow(len(raw))
	lastUnderscore := false
	for _, r := range strings.ToLower(raw) {
		var c byte
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			c = byte(r)
		case r == '_' || r == ' ' || r == '\t' || r == '\n':
			c = '_'
		default:
			continue
		}

		if c == '_' {
			if lastUnderscore {
				continue
			}
			lastUnderscore = true
		} else {
			lastUnderscore = false
		}
		b.WriteByte(c)
		if b.Len() == maxLen {
			break
		}
	}

	if b.Len() == 0 {
		return FallbackHandle
	}
	return b.String()
}
