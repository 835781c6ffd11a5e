package usecase

import (
	"context"
	"fmt"
	"sort"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/profile"
	"career-compass/internal/pkg/logger"

	"go.uber.org/zap"
)

// ProfileReceipt acknowledges a submitted profile. Profiles are not stored.
type ProfileReceipt struct {
	Profile    profile.Profile
	Domains    []string
	SkillCount int
	// Warnings name labels the matcher will not recognise.
	Warnings []string
}

type ProfileUsecase interface {
	SubmitProfile(ctx context.Context, p profile.Profile) (ProfileReceipt, error)
}

type ProfileIntake struct {
	logger *zap.Logger
}

func NewProfileUsecase(log *zap.Logger) *ProfileIntake {
	return &ProfileIntake{logger: logger.OrNop(log).Named("profile")}
}

func (u *ProfileIntake) SubmitProfile(_ context.Context, p profile.Profile) (ProfileReceipt, error) {
	if err := ValidateProfile(p); err != nil {
		return ProfileReceipt{}, err
	}

	p = p.WithDefaults()
	domains := make([]string, 0)
	for d := range p.Domains() {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	u.logger.Info("profile received",
		zap.Int("skills", len(p.Skills)),
		zap.Int("interests", len(p.Interests)),
		zap.Strings("domains", domains),
		zap.String("education", string(p.Education)),
		zap.String("pace", string(p.Behavioral.Pace)),
		zap.String("risk", string(p.Behavioral.Risk)),
	)

	warnings := labelWarnings(p)
	if len(warnings) > 0 {
		u.logger.Debug("profile has unrecognised labels", zap.Strings("warnings", warnings))
	}

	return ProfileReceipt{Profile: p, Domains: domains, SkillCount: len(p.Skills), Warnings: warnings}, nil
}

func labelWarnings(p profile.Profile) []string {
	out := make([]string, 0)
	if p.Education != "" && !p.Education.Known() {
		out = append(out, fmt.Sprintf("education level %q is not recognised and ranks below %s", p.Education, career.EducationSecondary))
	}
	if !p.Behavioral.Risk.Known() {
		out = append(out, fmt.Sprintf("risk level %q is not recognised and is treated as %s", p.Behavioral.Risk, career.RiskLow))
	}
	if !p.Behavioral.Pace.Known() {
		out = append(out, fmt.Sprintf("pace %q is not recognised and only matches jobs with the same pace or %s", p.Behavioral.Pace, career.PaceBalanced))
	}
	return out
}
