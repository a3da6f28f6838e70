package generator

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/trackgen/internal/models"
)

// Tier controls how often a user shows up on a given day
type Tier string

const (
	TierHigh     Tier = "high"
	TierModerate Tier = "moderate"
	TierLow      Tier = "low"
	TierChurned  Tier = "churned"
)

// Tiers in display order
var Tiers = []Tier{TierHigh, TierModerate, TierLow, TierChurned}

// skipProbability is the chance an otherwise eligible user sits a day out.
// Churned users are not gated; they simply stop after their churn date.
var skipProbability = map[Tier]float64{
	TierHigh:     0.10,
	TierModerate: 0.45,
	TierLow:      0.75,
}

// churnedUsers are the user numbers that stop tracking mid-window
var churnedUsers = map[int]bool{5: true, 15: true, 25: true, 35: true, 45: true}

// churnOffsetDays staggers churn dates from the window start
var churnOffsetDays = []int{45, 60, 80, 110, 140}

// cohortBounds maps the last user number of each monthly cohort
var cohortBounds = []int{8, 16, 24, 32, 40}

// Profile is the activity model of one user
type Profile struct {
	UserID      string
	AccountID   string
	Tier        Tier
	CohortStart time.Time
	ChurnDate   *time.Time // set for churned users only
}

// Active reports whether the user may have sessions on day, ignoring the
// daily tier gate.
func (p Profile) Active(day time.Time) bool {
	if day.Before(p.CohortStart) {
		return false
	}
	if p.ChurnDate != nil && day.After(*p.ChurnDate) {
		return false
	}
	return true
}

// Profiles maps user id to its activity profile
type Profiles map[string]Profile

// CountByTier returns the number of users in each tier
func (ps Profiles) CountByTier() map[Tier]int {
	counts := make(map[Tier]int, len(Tiers))
	for _, p := range ps {
		counts[p.Tier]++
	}
	return counts
}

// TierFor classifies a user number by its residue mod 5
func TierFor(n int) Tier {
	if churnedUsers[n] {
		return TierChurned
	}
	switch n % 5 {
	case 1, 2:
		return TierLow
	case 3, 4:
		return TierModerate
	default:
		return TierHigh
	}
}

// CohortStartFor returns the first day of the month user n may be active
// from, counted in whole months from the month of start.
func CohortStartFor(n int, start time.Time) time.Time {
	months := len(cohortBounds)
	for i, bound := range cohortBounds {
		if n <= bound {
			months = i
			break
		}
	}
	// day 1 never overflows into the following month
	return time.Date(start.Year(), start.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
}

// BuildProfiles derives the activity profile of every user once
func BuildProfiles(users []models.User, start time.Time) Profiles {
	profiles := make(Profiles, len(users))
	var churned []string
	for _, u := range users {
		n := userNumber(u.UserID)
		p := Profile{
			UserID:      u.UserID,
			AccountID:   u.AccountID,
			Tier:        TierFor(n),
			CohortStart: CohortStartFor(n, start),
		}
		if p.Tier == TierChurned {
			churned = append(churned, u.UserID)
		}
		profiles[u.UserID] = p
	}

	sort.Strings(churned)
	for i, id := range churned {
		if i >= len(churnOffsetDays) {
			break
		}
		churn := start.AddDate(0, 0, churnOffsetDays[i])
		p := profiles[id]
		p.ChurnDate = &churn
		profiles[id] = p
	}
	return profiles
}

func userNumber(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "USR"))
	if err != nil {
		return 0
	}
	return n
}
