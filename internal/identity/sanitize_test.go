package identity

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		maxLen int
		want   string
	}{
		{"empty input falls back", "", 20, "user"},
		{"display name", "Jane Doe!!", 20, "jane_doe"},
		{"underscore runs collapse", "___a___b___", 20, "_a_b_"},
		{"already clean", "alice", 20, "alice"},
		{"uppercase folds", "ALICE", 20, "alice"},
		{"digits kept", "user2042", 20, "user2042"},
		{"symbols dropped", "p@ul.o'brien", 20, "pulobrien"},
		{"whitespace becomes underscore", "two  words here", 20, "two_words_here"},
		{"truncates to max length", "abcdefghijklmnopqrstuvwxyz", 20, "abcdefghijklmnopqrst"},
		{"only symbols falls back", "!!!???", 20, "user"},
		{"unicode stripped", "héllo wörld", 20, "hllo_wrld"},
		{"zero max length uses default", "abcdefghijklmnopqrstuvwxyz", 0, "abcdefghijklmnopqrst"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Sanitize(c.raw, c.maxLen)
			if got != c.want {
				t.Errorf("Sanitize(%q) = %q, want %q", c.raw, got, c.want)
			}
		})
	}
}
