package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/profile"
	"career-compass/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	jobs       []career.Job
	details    map[int]career.Detail
	jobsErr    error
	detailsErr error
	listCalls  int
}

func (s *stubCatalog) ListJobs(context.Context) ([]career.Job, error) {
	s.listCalls++
	if s.jobsErr != nil {
		return nil, s.jobsErr
	}
	return s.jobs, nil
}

func (s *stubCatalog) ListDetails(context.Context) (map[int]career.Detail, error) {
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	return s.details, nil
}

type memoryCache struct {
	items  map[string][]matching.JobMatch
	getErr error
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]matching.JobMatch{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.items[key]
	if !ok {
		return false, nil
	}
	*(out.(*[]matching.JobMatch)) = v
	return true, nil
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	c.items[key] = value.([]matching.JobMatch)
	return nil
}

func referenceStub() *stubCatalog {
	return &stubCatalog{jobs: repository.ReferenceJobs(), details: repository.ReferenceDetails()}
}

func pythonProfile() profile.Profile {
	return profile.Profile{Skills: []profile.Skill{{Name: "Python", Proficiency: 5}}}
}

func TestMatchCareers_RanksWholeCatalog(t *testing.T) {
	uc := NewMatchingUsecase(referenceStub(), nil, nil)

	res, err := uc.MatchCareers(context.Background(), pythonProfile(), MatchParams{})
	require.NoError(t, err)
	require.Len(t, res, 5)

	ids := make([]int, 0, len(res))
	for _, m := range res {
		ids = append(ids, m.Job.ID)
	}
	assert.Equal(t, []int{1, 3, 2, 5, 4}, ids)
	assert.InDelta(t, 26.6667, res[0].MatchScore, 0.001)
	assert.Equal(t, []string{"machine learning", "statistics"}, res[0].MissingSkills)
}

func TestMatchCareers_Filters(t *testing.T) {
	uc := NewMatchingUsecase(referenceStub(), nil, nil)

	res, err := uc.MatchCareers(context.Background(), pythonProfile(), MatchParams{MinScore: 5})
	require.NoError(t, err)
	assert.Len(t, res, 4)

	res, err = uc.MatchCareers(context.Background(), pythonProfile(), MatchParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 1, res[0].Job.ID)
	assert.Equal(t, 3, res[1].Job.ID)

	res, err = uc.MatchCareers(context.Background(), pythonProfile(), MatchParams{MinScore: 99})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestMatchCareers_InvalidProfile(t *testing.T) {
	catalog := referenceStub()
	uc := NewMatchingUsecase(catalog, nil, nil)

	cases := []profile.Profile{
		{Skills: []profile.Skill{{Name: "  ", Proficiency: 3}}},
		{Skills: []profile.Skill{{Name: "Go", Proficiency: 6}}},
		{Skills: []profile.Skill{{Name: "Go", Proficiency: -1}}},
	}
	for _, p := range cases {
		_, err := uc.MatchCareers(context.Background(), p, MatchParams{})
		assert.ErrorIs(t, err, ErrInvalidProfile)
	}
	assert.Zero(t, catalog.listCalls, "catalog must not be read for invalid profiles")
}

func TestMatchCareers_ProficiencyNeverLowersScore(t *testing.T) {
	uc := NewMatchingUsecase(referenceStub(), newMemoryCache(), nil)

	scoreOf := func(prof int) float64 {
		t.Helper()
		p := profile.Profile{Skills: []profile.Skill{{Name: "Python", Proficiency: prof}}}
		res, err := uc.MatchCareers(context.Background(), p, MatchParams{Limit: 1})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, 1, res[0].Job.ID)
		return res[0].MatchScore
	}

	prev := scoreOf(0)
	assert.InDelta(t, 25.0, prev, 0.001)
	for prof := 1; prof <= 5; prof++ {
		got := scoreOf(prof)
		assert.Greater(t, got, prev, "proficiency %d", prof)
		prev = got
	}
}

func TestMatchCareers_EmptyProfileIsValid(t *testing.T) {
	uc := NewMatchingUsecase(referenceStub(), nil, nil)

	res, err := uc.MatchCareers(context.Background(), profile.Profile{}, MatchParams{})
	require.NoError(t, err)
	assert.Len(t, res, 5)
}

func TestMatchCareers_CatalogError(t *testing.T) {
	uc := NewMatchingUsecase(&stubCatalog{jobsErr: errors.New("db down")}, nil, nil)

	_, err := uc.MatchCareers(context.Background(), pythonProfile(), MatchParams{})
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestMatchCareers_UsesCache(t *testing.T) {
	catalog := referenceStub()
	cache := newMemoryCache()
	uc := NewMatchingUsecase(catalog, cache, nil)

	first, err := uc.MatchCareers(context.Background(), pythonProfile(), MatchParams{})
	require.NoError(t, err)
	second, err := uc.MatchCareers(context.Background(), pythonProfile(), MatchParams{Limit: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, catalog.listCalls)
	assert.Equal(t, 1, cache.sets)
	require.Len(t, second, 1)
	assert.Equal(t, first[0], second[0])
}

func TestMatchCareers_CacheReadErrorFallsBack(t *testing.T) {
	catalog := referenceStub()
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	uc := NewMatchingUsecase(catalog, cache, nil)

	res, err := uc.MatchCareers(context.Background(), pythonProfile(), MatchParams{})
	require.NoError(t, err)
	assert.Len(t, res, 5)
	assert.Equal(t, 1, catalog.listCalls)
}

func TestMatchCacheKey(t *testing.T) {
	base := pythonProfile()

	withDefaults := base
	withDefaults.Behavioral = profile.Behavioral{Pace: career.PaceBalanced, Risk: career.RiskModerate}
	assert.Equal(t, MatchCacheKey(base), MatchCacheKey(withDefaults), "defaults must not change the key")

	withInterests := base
	withInterests.Interests = []string{"AI"}
	assert.Equal(t, MatchCacheKey(base), MatchCacheKey(withInterests), "interests do not affect scoring")

	other := base
	other.Education = career.EducationDoctorate
	assert.NotEqual(t, MatchCacheKey(base), MatchCacheKey(other))

	assert.Contains(t, MatchCacheKey(base), "match:")
}

func TestMatchCacheKey_ZeroProficiencyIsDistinct(t *testing.T) {
	zero := profile.Profile{Skills: []profile.Skill{{Name: "Python", Proficiency: 0}}}
	three := profile.Profile{Skills: []profile.Skill{{Name: "Python", Proficiency: profile.DefaultProficiency}}}

	assert.NotEqual(t, MatchCacheKey(zero), MatchCacheKey(three))
}

func TestCompareCareers(t *testing.T) {
	catalog := referenceStub()
	delete(catalog.details, 3)
	uc := NewComparisonUsecase(catalog, nil)

	res, err := uc.CompareCareers(context.Background(), []int{5, 3, 1, 42, 1})
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, 1, res[0].Job.ID)
	assert.Equal(t, 3, res[1].Job.ID)
	assert.Equal(t, 5, res[2].Job.ID)

	require.NotNil(t, res[0].Detail)
	assert.Equal(t, "Hybrid", res[0].Detail.WorkType)
	assert.Nil(t, res[1].Detail)
	assert.Equal(t, "Poor", res[2].Detail.WorkLifeBalance)
}

func TestCompareCareers_Errors(t *testing.T) {
	uc := NewComparisonUsecase(referenceStub(), nil)
	_, err := uc.CompareCareers(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoJobsSelected)

	uc = NewComparisonUsecase(&stubCatalog{jobs: repository.ReferenceJobs(), detailsErr: errors.New("boom")}, nil)
	_, err = uc.CompareCareers(context.Background(), []int{1})
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestCompareCareers_UnknownIDsOnly(t *testing.T) {
	uc := NewComparisonUsecase(referenceStub(), nil)

	res, err := uc.CompareCareers(context.Background(), []int{99})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSubmitProfile(t *testing.T) {
	uc := NewProfileUsecase(nil)

	receipt, err := uc.SubmitProfile(context.Background(), profile.Profile{
		Skills: []profile.Skill{
			{Name: "Figma", Domain: "Design"},
			{Name: "Python", Proficiency: 4, Domain: "Technology"},
		},
		Interests: []string{"Art"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, receipt.SkillCount)
	assert.Equal(t, []string{"Design", "Technology"}, receipt.Domains)
	assert.Equal(t, career.PaceBalanced, receipt.Profile.Behavioral.Pace)
	assert.Equal(t, career.RiskModerate, receipt.Profile.Behavioral.Risk)
	assert.Equal(t, 0, receipt.Profile.Skills[0].Proficiency)
	assert.Equal(t, 4, receipt.Profile.Skills[1].Proficiency)

	_, err = uc.SubmitProfile(context.Background(), profile.Profile{Skills: []profile.Skill{{}}})
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestListCareers(t *testing.T) {
	jobs, err := NewCatalogUsecase(referenceStub()).ListCareers(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 5)

	_, err = NewCatalogUsecase(&stubCatalog{jobsErr: errors.New("boom")}).ListCareers(context.Background())
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestGetStatus(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	tests := []struct {
		name    string
		catalog *stubCatalog
		db      Pinger
		cache   Pinger
		want    ServiceStatus
	}{
		{
			name:    "static catalog without stores",
			catalog: referenceStub(),
			want:    ServiceStatus{CatalogSource: "static", TotalCareers: 5, CatalogHealthy: true},
		},
		{
			name:    "stores answering",
			catalog: referenceStub(),
			db:      pingFunc(func(context.Context) error { return nil }),
			cache:   pingFunc(func(context.Context) error { return nil }),
			want:    ServiceStatus{CatalogSource: "static", TotalCareers: 5, CatalogHealthy: true, DatabaseHealthy: true, CacheHealthy: true},
		},
		{
			name:    "catalog and cache down",
			catalog: &stubCatalog{jobsErr: errors.New("down")},
			db:      pingFunc(func(context.Context) error { return nil }),
			cache:   pingFunc(func(context.Context) error { return errors.New("refused") }),
			want:    ServiceStatus{CatalogSource: "static", DatabaseHealthy: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewStatusUsecase("static", tt.catalog, tt.db, tt.cache)
			uc.now = func() time.Time { return fixed }

			got := uc.GetStatus(context.Background())
			tt.want.ServerTime = fixed.UTC()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubmitProfile_Warnings(t *testing.T) {
	uc := NewProfileUsecase(nil)

	receipt, err := uc.SubmitProfile(context.Background(), profile.Profile{
		Education:  "PhD",
		Behavioral: profile.Behavioral{Pace: "Chaotic", Risk: "High"},
	})
	require.NoError(t, err)
	require.Len(t, receipt.Warnings, 3)
	assert.Contains(t, receipt.Warnings[0], `"PhD"`)
	assert.Contains(t, receipt.Warnings[1], `"High"`)
	assert.Contains(t, receipt.Warnings[2], `"Chaotic"`)

	receipt, err = uc.SubmitProfile(context.Background(), profile.Profile{Education: career.EducationDiploma})
	require.NoError(t, err)
	assert.Empty(t, receipt.Warnings)
	assert.NotNil(t, receipt.Warnings)
}
