// package quiz picks random unseen trivia questions and grades answers.
package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"

	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/query"
	"github.com/desertthunder/fyyur/internal/shared"
)

// AllCategories selects from every category.
const AllCategories int64 = 0

// Selector draws questions uniformly at random.
// It is not safe for concurrent use when built over a caller-owned [rand.Rand].
type Selector struct {
	intN func(n int) int
}

// NewSelector returns a Selector drawing from r, or from the global source when r is nil.
func NewSelector(r *rand.Rand) *Selector {
	if r == nil {
		return &Selector{intN: rand.IntN}
	}
	return &Selector{intN: r.IntN}
}

// Next returns a random question from pool filed under category whose ID is not in seen.
//
// Category [AllCategories] matches every question. When nothing is left it returns
// [shared.ErrExhausted]. Whether category exists is the caller's concern.
func (s *Selector) Next(pool []*models.Question, category int64, seen []int64) (*models.Question, error) {
	candidates := make([]*models.Question, 0, len(pool))
	for _, q := range pool {
		if category != AllCategories && q.CategoryID != category {
			continue
		}
		if slices.Contains(seen, q.ID) {
			continue
		}
		candidates = append(candidates, q)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("category %d: %w", category, shared.ErrExhausted)
	}
	return candidates[s.intN(len(candidates))], nil
}

// Check reports whether guess answers a question whose answer is answer.
// Every word of the answer must appear in the guess, ignoring case and punctuation.
func Check(answer, guess string) bool {
	want := words(answer)
	if len(want) == 0 {
		return false
	}

	got := words(guess)
	for _, w := range want {
		if !slices.Contains(got, w) {
			return false
		}
	}
	return true
}

func words(s string) []string {
	return strings.FieldsFunc(query.Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
