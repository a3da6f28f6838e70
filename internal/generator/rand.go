package generator

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rand is the single random stream threaded through every generation step.
// Uniform draws, the gonum distributions and the faker all read the same
// seeded source, so one seed reproduces a whole dataset.
type Rand struct {
	*rand.Rand
	src   rand.Source
	faker *gofakeit.Faker
}

// NewRand creates a seeded random stream
func NewRand(seed uint64) *Rand {
	src := rand.NewPCG(seed, seed)
	return &Rand{
		Rand:  rand.New(src),
		src:   src,
		faker: gofakeit.NewFaker(src, false),
	}
}

// IntRange returns a uniform int in [lo, hi], both inclusive
func (r *Rand) IntRange(lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// Chance reports true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// LogNormal draws from a log-normal distribution with the given
// parameters of the underlying normal.
func (r *Rand) LogNormal(mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

// Beta draws from a beta distribution on [0, 1].
func (r *Rand) Beta(alpha, beta float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: r.src}.Rand()
}

// Weighted returns a sampler of indexes proportional to weights.
func (r *Rand) Weighted(weights []float64) func() int {
	c := distuv.NewCategorical(weights, r.src)
	return func() int {
		return int(c.Rand())
	}
}

// DateBetween returns a calendar date in [from, to].
func (r *Rand) DateBetween(from, to time.Time) time.Time {
	return truncateDay(r.faker.DateRange(from, to))
}

// FirstName and LastName proxy the faker
func (r *Rand) FirstName() string { return r.faker.FirstName() }
func (r *Rand) LastName() string  { return r.faker.LastName() }
func (r *Rand) Email() string     { return r.faker.Email() }

// Pick returns a uniformly chosen element; items must not be empty.
func Pick[T any](r *Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}
