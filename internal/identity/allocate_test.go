package identity

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"
)

type fakeProber struct {
	taken  map[string]bool
	err    error
	probes int
}

func (f *fakeProber) HandleTaken(_ context.Context, handle string) (bool, error) {
	f.probes++
	if f.err != nil {
		return false, f.err
	}
	return f.taken[strings.ToLower(handle)], nil
}

func TestAllocate(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		taken []string
		base  string
		dis   string
		want  string
	}{
		{"free base", nil, "alice", "ab01", "alice"},
		{"base sanitized first", nil, "Jane Doe!!", "ab01", "jane_doe"},
		{"base taken", []string{"alice"}, "alice", "ab01", "alice_ab01"},
		{"first suffix taken", []string{"alice", "alice_ab01"}, "alice", "ab01", "alice_ab012"},
		{"case insensitive probe", []string{"alice"}, "ALICE", "ab01", "alice_ab01"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prober := &fakeProber{taken: map[string]bool{}}
			for _, h := range c.taken {
				prober.taken[h] = true
			}

			got, err := NewAllocator(prober, 20).Allocate(ctx, c.base, c.dis)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != c.want {
				t.Errorf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestAllocateShortBaseIsSuffixed(t *testing.T) {
	// A two-character base would violate the minimum handle length, so the
	// bare candidate must never be offered.
	prober := &fakeProber{taken: map[string]bool{}}

	got, err := NewAllocator(prober, 20).Allocate(context.Background(), "Jo", "u1ab")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "jo_u1ab" {
		t.Errorf("expected suffixed candidate, got %q", got)
	}
	if prober.probes != 1 {
		t.Errorf("expected the bare candidate to be skipped, got %d probes", prober.probes)
	}
}

func TestAllocateCandidatesStayWithinMaxLen(t *testing.T) {
	base := "abcdefghijklmnopqrst" // fills all 20 characters
	prober := &fakeProber{taken: map[string]bool{base: true}}

	a := NewAllocator(prober, 20)
	a.now = func() time.Time { return time.UnixMilli(1700000012345) }

	got, err := a.Allocate(context.Background(), base, "ab01")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "abcdefghijklmno_ab01" {
		t.Errorf("expected base trimmed to make suffix room, got %q", got)
	}

	// Exhaust every bounded candidate; the timestamped fallback must also
	// respect the bound.
	for i := 1; i <= MaxAttempts; i++ {
		suffix := "_ab01"
		if i > 1 {
			suffix += strconv.Itoa(i)
		}
		prober.taken[a.withSuffix("abcdefghijklmnopqrst", suffix)] = true
	}
	got, err = a.Allocate(context.Background(), base, "ab01")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got) > 20 {
		t.Errorf("fallback %q exceeds the handle length bound", got)
	}
	if prober.taken[got] {
		t.Errorf("fallback %q collides with a taken handle", got)
	}
}

func TestAllocateExhaustedFallsBack(t *testing.T) {
	// Every bounded candidate is pre-taken: the allocator must still return
	// a fresh candidate instead of looping.
	prober := &fakeProber{taken: map[string]bool{"alice": true, "alice_ab01": true}}
	for i := 2; i <= MaxAttempts; i++ {
		prober.taken["alice_ab01"+strconv.Itoa(i)] = true
	}

	a := NewAllocator(prober, 20)
	a.now = func() time.Time { return time.UnixMilli(1700000012345) }

	got, err := a.Allocate(context.Background(), "alice", "ab01")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "alice_ab01_12345" {
		t.Errorf("expected timestamped fallback, got %q", got)
	}
	if prober.taken[got] {
		t.Errorf("fallback %q collides with a taken handle", got)
	}
	if prober.probes != MaxAttempts+1 {
		t.Errorf("expected %d probes, got %d", MaxAttempts+1, prober.probes)
	}
}

func TestAllocateStorageError(t *testing.T) {
	prober := &fakeProber{err: errors.New("connection refused")}

	_, err := NewAllocator(prober, 20).Allocate(context.Background(), "alice", "ab01")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}
