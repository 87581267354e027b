package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

const (
	MinHandleLen      = 3
	MaxHandleLen      = 20
	MaxDisplayNameLen = 64
	MaxBioLen         = 500
)

func ThoughtContent(content string) error {
	l := len(strings.TrimSpace(content))
	switch {
	case l == 0:
		return errors.New("empty thought")
	case len(content) > domain.MaxThoughtLen:
		return fmt.Errorf("thought too long; max %d characters", domain.MaxThoughtLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

// Handle checks a user-chosen handle. Handles produced by the allocator
// always satisfy these rules; this guards the profile edit path.
func Handle(handle string) error {
	if l := len(handle); l < MinHandleLen {
		return fmt.Errorf("handle too short; min %d characters", MinHandleLen)
	} else if l > MaxHandleLen {
		return fmt.Errorf("handle too long; max %d characters", MaxHandleLen)
	}

	for _, r := range handle {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			continue
		}
		return errors.New("handle may only contain lowercase letters, digits and underscores")
	}
	return nil
}

func DisplayName(name string) error {
	if l := len(strings.TrimSpace(name)); l == 0 {
		return errors.New("empty name")
	} else if l > MaxDisplayNameLen {
		return fmt.Errorf("name too long; max %d characters", MaxDisplayNameLen)
	}
	return nil
}

func Bio(bio string) error {
	if len(bio) > MaxBioLen {
		return fmt.Errorf("bio too long; max %d characters", MaxBioLen)
	}
	return nil
}

func ProfileForm(name, handle, bio string) error {
	return errors.Join(DisplayName(name), Handle(handle), Bio(bio))
}
