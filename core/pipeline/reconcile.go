package pipeline

import (
	"fmt"
	"regexp"
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Scorer computes a similarity score between a prefix and a canonical code on
// a 0-100 scale.
type Scorer func(prefix, candidate string) int

// Scorer selectors accepted by the configuration.
const (
	// ScorerPartialRatio rewards the shorter string aligning with a
	// contiguous portion of the longer one, so "325" scores highly against
	// "32599". This is the default and the right choice for partial codes.
	ScorerPartialRatio = "partial_ratio"
	// ScorerRatio is plain Levenshtein similarity over the full strings.
	ScorerRatio = "ratio"
	// ScorerTokenSortRatio compares token-sorted forms of both strings.
	ScorerTokenSortRatio = "token_sort_ratio"
)

// ScorerByName resolves a scorer selector to its similarity function.
func ScorerByName(name string) (Scorer, error) {
	switch name {
	case ScorerPartialRatio:
		return func(a, b string) int { return fuzzy.PartialRatio(a, b) }, nil
	case ScorerRatio:
		return func(a, b string) int { return fuzzy.Ratio(a, b) }, nil
	case ScorerTokenSortRatio:
		return func(a, b string) int { return fuzzy.TokenSortRatio(a, b) }, nil
	}
	return nil, fmt.Errorf("unknown scorer %q", name)
}

var digitRun = regexp.MustCompile(`[0-9]+`)

// ExtractPrefix returns the first maximal run of decimal digits in a raw
// postal code, or "" when the value contains none.
func ExtractPrefix(raw string) string {
	return digitRun.FindString(raw)
}

// Matcher resolves digit prefixes to the best-matching canonical postal code.
// Candidates are deduplicated and sorted once at construction; scores are
// memoized per distinct prefix so shared prefixes are scored only once.
type Matcher struct {
	candidates []string
	threshold  int
	scorer     Scorer
	memo       map[string]string
}

// NewMatcher builds a matcher over the given canonical codes.
func NewMatcher(codes []string, threshold int, scorer Scorer) *Matcher {
	seen := make(map[string]struct{}, len(codes))
	candidates := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		candidates = append(candidates, c)
	}
	// Sorted iteration makes equal-score ties resolve to the lowest code,
	// keeping match assignments reproducible across runs.
	sort.Strings(candidates)

	return &Matcher{
		candidates: candidates,
		threshold:  threshold,
		scorer:     scorer,
		memo:       make(map[string]string),
	}
}

// Candidates returns the number of distinct canonical codes.
func (m *Matcher) Candidates() int {
	return len(m.candidates)
}

// Match returns the canonical code with the maximum similarity to prefix, or
// "" when the prefix is empty, the candidate set is empty, or the best score
// falls below the threshold. A no-match outcome is normal, not an error.
func (m *Matcher) Match(prefix string) string {
	if prefix == "" {
		return ""
	}
	if match, ok := m.memo[prefix]; ok {
		return match
	}

	best := ""
	bestScore := -1
	for _, candidate := range m.candidates {
		if score := m.scorer(prefix, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < m.threshold {
		best = ""
	}

	m.memo[prefix] = best
	return best
}

// Reconcile fills ZipPrefix and MatchedZip on every listing and reports the
// per-category counts. Matching is idempotent: reconciling the same inputs
// twice yields identical assignments.
func (m *Matcher) Reconcile(listings []ListingRecord) (matched, noPrefix, belowThreshold int) {
	for i := range listings {
		listings[i].ZipPrefix = ExtractPrefix(listings[i].PostalCode)
		if listings[i].ZipPrefix == "" {
			noPrefix++
			continue
		}
		listings[i].MatchedZip = m.Match(listings[i].ZipPrefix)
		if listings[i].MatchedZip == "" {
			belowThreshold++
			continue
		}
		matched++
	}
	return matched, noPrefix, belowThreshold
}

// DistinctPrefixes returns how many distinct prefixes were scored so far.
func (m *Matcher) DistinctPrefixes() int {
	return len(m.memo)
}
