package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/validate"
)

var (
	// ErrAuthRequired means no principal was presented.
	ErrAuthRequired = errors.New("authentication required")
	// ErrEmailUnconfirmed is returned when the deployment requires a
	// confirmed email and the provider has not verified the address.
	ErrEmailUnconfirmed = errors.New("email not confirmed")
	// ErrStorageUnavailable wraps any profile store failure. It is safe to
	// retry the whole reconcile from scratch.
	ErrStorageUnavailable = errors.New("profile store unavailable")
	// ErrHandleConflict is returned only after the bounded insert retry is
	// exhausted; callers must surface it, never drop it.
	ErrHandleConflict = errors.New("could not allocate a unique handle")
)

// MaxAttempts bounds the suffix search. Exhausting it means pathological
// contention or repeated sanitize collisions; the allocator then falls back
// to a timestamped candidate rather than looping forever.
const MaxAttempts = 50

// Prober answers whether a handle is already taken, case-insensitively.
// It informs, it does not reserve: the unique index on the store is the
// final authority.
type Prober interface {
	HandleTaken(ctx context.Context, handle string) (bool, error)
}

// Allocator produces a unique handle candidate from a seed string and a
// short identity-derived disambiguator.
type Allocator struct {
	prober Prober
	maxLen int
	now    func() time.Time
}

func NewAllocator(prober Prober, maxLen int) *Allocator {
	if maxLen <= 0 {
		maxLen = validate.MaxHandleLen
	}
	return &Allocator{
		prober: prober,
		maxLen: maxLen,
		now:    time.Now,
	}
}

// Allocate returns a handle that was free at probe time. The first
// candidate is the sanitized base; subsequent candidates append the
// disambiguator and an attempt counter, trimming the base so every
// candidate stays within maxLen. A base below the minimum handle length is
// never offered bare, it goes straight to the suffixed candidates. Allocate
// fails only when the store is unreachable — an exhausted search still
// yields a timestamped fallback.
func (a *Allocator) Allocate(ctx context.Context, base, disambiguator string) (string, error) {
	sanitized := Sanitize(base, a.maxLen)

	if len(sanitized) >= validate.MinHandleLen {
		taken, err := a.prober.HandleTaken(ctx, sanitized)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		if !taken {
			return sanitized, nil
		}
	}

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		suffix := "_" + disambiguator
		if attempt > 1 {
			suffix += strconv.Itoa(attempt)
		}
		candidate := a.withSuffix(sanitized, suffix)

		taken, err := a.prober.HandleTaken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	millis := strconv.FormatInt(a.now().UnixMilli(), 10)
	if len(millis) > 5 {
		millis = millis[len(millis)-5:]
	}
	candidate := a.withSuffix(sanitized, "_"+disambiguator+"_"+millis)
	log.Warn().
		Str("base", base).
		Str("candidate", candidate).
		Msg("handle allocation exhausted bounded retries, using timestamped fallback")
	return candidate, nil
}

// withSuffix trims the base so base+suffix never exceeds maxLen.
func (a *Allocator) withSuffix(base, suffix string) string {
	if len(base)+len(suffix) > a.maxLen {
		keep := a.maxLen - len(suffix)
		if keep < 1 {
			keep = 1
		}
		base = base[:keep]
	}
	return base + suffix
}
