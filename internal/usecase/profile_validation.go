package usecase

import (
	"fmt"
	"strings"

	"career-compass/internal/domain/profile"
)

const (
	minProficiency = 0
	maxProficiency = 5
)

// ValidateProfile rejects structurally malformed profiles before they reach
// the matcher. Unknown category labels are not errors; the matcher maps them
// to fallback ordinals.
func ValidateProfile(p profile.Profile) error {
	for i, s := range p.Skills {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: skills[%d]: name is required", ErrInvalidProfile, i)
		}
		if s.Proficiency < minProficiency || s.Proficiency > maxProficiency {
			return fmt.Errorf("%w: skills[%d]: proficiency must be between %d and %d, got %d",
				ErrInvalidProfile, i, minProficiency, maxProficiency, s.Proficiency)
		}
	}
	return nil
}
