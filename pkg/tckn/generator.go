package tckn

import (
	"errors"
	"math/rand/v2"
)

// DefaultMaxAttempts bounds how many candidates a Generator builds for a single
// number before giving up.
const DefaultMaxAttempts = 100

// ErrGenerationExhausted is returned when a Generator could not produce a valid
// number within its attempt budget. Direct construction always yields a valid
// number, so this signals a broken Source or arithmetic bug rather than bad luck.
var ErrGenerationExhausted = errors.New("identity number generation exhausted")

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level functions, which are safe
// for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) } //nolint: gosec

// Generator builds valid identity numbers by drawing the nine free digits and
// deriving the two check digits.
type Generator struct {
	src         Source
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. A nil source keeps the default.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithMaxAttempts sets the per-number attempt budget. Values below 1 keep the default.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// NewGenerator returns a Generator using the global math/rand/v2 source unless
// overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		src:         globalSource{},
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// candidate draws the free digits and formats a full number.
func (g *Generator) candidate() string {
	var d [Length]int
	d[0] = 1 + g.src.IntN(9)
	for i := 1; i < 9; i++ {
		d[i] = g.src.IntN(10)
	}

	return format(&d)
}

// Generate returns a new identity number for which Validate is true.
func (g *Generator) Generate() (string, error) {
	for range g.maxAttempts {
		if n := g.candidate(); Validate(n) {
			return n, nil
		}
	}

	return "", ErrGenerationExhausted
}

// GenerateBatch returns n distinct identity numbers. n <= 0 yields an empty slice.
func (g *Generator) GenerateBatch(n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	out := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(out) < n {
		var (
			num string
			err error
		)
		for range g.maxAttempts {
			num, err = g.Generate()
			if err != nil {
				return nil, err
			}
			if _, dup := seen[num]; !dup {
				break
			}
			num = ""
		}
		if num == "" {
			return nil, ErrGenerationExhausted
		}

		seen[num] = struct{}{}
		out = append(out, num)
	}

	return out, nil
}

var defaultGenerator = NewGenerator() //nolint: gochecknoglobals

// Generate returns a new identity number using the default generator.
func Generate() (string, error) {
	return defaultGenerator.Generate()
}

// GenerateBatch returns n distinct identity numbers using the default generator.
func GenerateBatch(n int) ([]string, error) {
	return defaultGenerator.GenerateBatch(n)
}
