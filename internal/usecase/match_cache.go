package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"career-compass/internal/domain/profile"
)

const (
	matchCachePrefix = "match:"

	// MatchCachePattern matches every cached ranking. The catalog seeder
	// clears it after changing the catalog.
	MatchCachePattern = matchCachePrefix + "*"
)

type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type matchCacheKeyInput struct {
	Skills    []profile.Skill `json:"skills"`
	Education string          `json:"education"`
	Pace      string          `json:"pace"`
	Risk      string          `json:"risk"`
}

// MatchCacheKey derives the cache key from the fields that affect scoring.
// Interests do not take part in scoring and are left out.
func MatchCacheKey(p profile.Profile) string {
	p = p.WithDefaults()
	in := matchCacheKeyInput{
		Skills:    p.Skills,
		Education: string(p.Education),
		Pace:      string(p.Behavioral.Pace),
		Risk:      string(p.Behavioral.Risk),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return matchCachePrefix + hex.EncodeToString(sum[:])
}
