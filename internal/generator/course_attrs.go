package generator

import (
	"math"
	"math/rand"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	minDurationMinutes = 30
	maxDurationMinutes = 360

	minURLSuffix = 100
	maxURLSuffix = 999
)

// CourseAttrs produces the synthetic course attributes used when a
// course is added without them: URL, duration and rating.
// Safe for concurrent use; the underlying source is mutex-guarded.
type CourseAttrs struct {
	mu   sync.Mutex
	rnd  *rand.Rand
	host string
}

// New returns a generator seeded from the wall clock.
func New(host string) *CourseAttrs {
	return NewWithSeed(host, time.Now().UnixNano())
}

// NewWithSeed returns a generator with a fixed seed, for deterministic tests.
func NewWithSeed(host string, seed int64) *CourseAttrs {
	return &CourseAttrs{rnd: rand.New(rand.NewSource(seed)), host: host}
}

// DurationMinutes returns a uniform duration in [30, 360] minutes.
func (g *CourseAttrs) DurationMinutes() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(maxDurationMinutes-minDurationMinutes+1) + minDurationMinutes
}

// URL builds a course URL from the provider name.
// Example: "Above Bytes" -> "https://courses.abovebytes.com/above-bytes-237".
// The random suffix makes collisions unlikely but does not rule them out.
func (g *CourseAttrs) URL(provider string) string {
	slug := Slug(provider)

	g.mu.Lock()
	suffix := g.rnd.Intn(maxURLSuffix-minURLSuffix+1) + minURLSuffix
	g.mu.Unlock()

	return "https://" + g.host + "/" + slug + "-" + strconv.Itoa(suffix)
}

// Rating returns a uniform rating in [1.0, 5.0) rounded half-up to one decimal.
func (g *CourseAttrs) Rating() float64 {
	g.mu.Lock()
	r := 1.0 + g.rnd.Float64()*4.0
	g.mu.Unlock()
	return math.Round(r*10) / 10
}

// Slug lower-cases and trims the name, collapses internal whitespace
// runs to single hyphens and percent-encodes the rest. A blank name
// falls back to the literal "course".
func Slug(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return "course"
	}
	return url.PathEscape(strings.Join(fields, "-"))
}
