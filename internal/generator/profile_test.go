package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		n    int
		want Tier
	}{
		{1, TierLow},
		{2, TierLow},
		{3, TierModerate},
		{4, TierModerate},
		{5, TierChurned},
		{10, TierHigh},
		{15, TierChurned},
		{20, TierHigh},
		{45, TierChurned},
		{50, TierHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.n), "user %d", tt.n)
	}
}

func TestBuildProfiles_TierPartition(t *testing.T) {
	ds := fixture(t)

	counts := ds.Profiles.CountByTier()
	assert.Equal(t, 5, counts[TierChurned])
	assert.Equal(t, 20, counts[TierLow])
	assert.Equal(t, 20, counts[TierModerate])
	assert.Equal(t, 5, counts[TierHigh])
	assert.Equal(t, UserCount, counts[TierChurned]+counts[TierLow]+counts[TierModerate]+counts[TierHigh])
}

func TestCohortStartFor(t *testing.T) {
	tests := []struct {
		n    int
		want time.Time
	}{
		{1, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{8, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{9, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
		{16, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
		{24, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
		{32, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
		{40, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
		{41, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{50, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CohortStartFor(tt.n, windowStart), "user %d", tt.n)
	}
}

func TestCohortStartFor_LateMonthStart(t *testing.T) {
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		n    int
		want time.Time
	}{
		{1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{9, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{17, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{41, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CohortStartFor(tt.n, start), "user %d", tt.n)
	}
}

func TestBuildProfiles_ChurnDates(t *testing.T) {
	ds := fixture(t)

	want := map[string]int{
		"USR0005": 45,
		"USR0015": 60,
		"USR0025": 80,
		"USR0035": 110,
		"USR0045": 140,
	}
	for id, p := range ds.Profiles {
		offset, churned := want[id]
		if !churned {
			assert.Nil(t, p.ChurnDate, "%s should not churn", id)
			continue
		}
		require.NotNil(t, p.ChurnDate, id)
		assert.Equal(t, TierChurned, p.Tier)
		assert.Equal(t, windowStart.AddDate(0, 0, offset), *p.ChurnDate, id)
	}
}

func TestProfile_Active(t *testing.T) {
	churn := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	p := Profile{
		CohortStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		ChurnDate:   &churn,
	}

	assert.False(t, p.Active(time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Active(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Active(churn))
	assert.False(t, p.Active(churn.AddDate(0, 0, 1)))
}
