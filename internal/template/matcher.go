package template

import (
	"sort"
	"strings"

	"github.com/sitesmith/sitesmith/internal/toon"
)

// Match is the ephemeral result of scoring one template against one spec.
// Score is 0-100; Confidence derives from it through a fixed step table.
type Match struct {
	Template   Template
	Score      float64
	Confidence float64
}

// Matcher scores specs against a template library. It holds only the
// immutable library and is safe for concurrent use.
type Matcher struct {
	library *Library
}

// NewMatcher returns a Matcher over the given library.
func NewMatcher(library *Library) *Matcher {
	return &Matcher{library: library}
}

// FindBestMatch returns the highest-scoring match, or false when the library
// is empty or every template scores zero.
func (m *Matcher) FindBestMatch(spec *toon.Spec) (Match, bool) {
	matches := m.FindMatches(spec)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// FindMatches scores the spec against every template in the library, with no
// early exit, and returns the zero-score-free list sorted by descending
// score. Ties keep catalog order.
func (m *Matcher) FindMatches(spec *toon.Spec) []Match {
	var matches []Match
	for _, t := range m.library.All() {
		score := matchScore(spec, &t.Spec)
		if score > 0 {
			matches = append(matches, Match{
				Template:   t,
				Score:      score,
				Confidence: scoreToConfidence(score),
			})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// matchScore computes the weighted 0-100 match score:
//
//	site type exact match   40 points
//	style                   20 if both declare and agree; 10 if neither
//	                        declares; 0 otherwise (asymmetric declarations
//	                        get nothing)
//	sections                40 × Jaccard similarity of the type sets
func matchScore(spec, proto *toon.Spec) float64 {
	var score, maxScore float64

	maxScore += 40
	if spec.SiteType == proto.SiteType {
		score += 40
	}

	maxScore += 20
	if spec.Style != "" && proto.Style != "" {
		if spec.Style == proto.Style {
			score += 20
		}
	} else if spec.Style == "" && proto.Style == "" {
		score += 10
	}

	maxScore += 40
	score += sectionSimilarity(spec.Sections, proto.Sections) * 40

	return score / maxScore * 100
}

// sectionSimilarity is the Jaccard similarity of the two section-type sets:
// |intersection| / |union|. Order and duplicates are irrelevant here; either
// side being empty scores 0.
func sectionSimilarity(a, b []toon.Section) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[toon.Component]bool)
	for _, s := range a {
		setA[s.Type] = true
	}
	setB := make(map[toon.Component]bool)
	for _, s := range b {
		setB[s.Type] = true
	}

	intersection := 0
	union := make(map[toon.Component]bool)
	for t := range setA {
		union[t] = true
		if setB[t] {
			intersection++
		}
	}
	for t := range setB {
		union[t] = true
	}

	return float64(intersection) / float64(len(union))
}

// confidenceStep is one row of the score→confidence table.
type confidenceStep struct {
	threshold  float64
	confidence float64
}

// confidenceSteps is evaluated top-down. The bucketing is deliberately
// non-linear; the arbitrator's thresholds are tuned against these exact
// values, so this table must not be smoothed into a formula.
var confidenceSteps = []confidenceStep{
	{80, 0.9},
	{70, 0.8},
	{60, 0.7},
	{50, 0.6},
}

// scoreToConfidence maps a 0-100 score to a 0-1 confidence: stepped above 50,
// linear (score/100) below.
func scoreToConfidence(score float64) float64 {
	for _, step := range confidenceSteps {
		if score >= step.threshold {
			return step.confidence
		}
	}
	return score / 100
}

// IsGoodMatch reports whether a match clears the good-enough confidence bar.
func IsGoodMatch(m Match) bool {
	return m.Confidence >= 0.7
}

// defaultValues fills placeholders the caller did not supply.
var defaultValues = map[string]string{
	"title":    "Welcome to Your Site",
	"subtitle": "Create something amazing",
	"cta_text": "Get Started",
	"name":     "Your Name",
	"role":     "Designer & Developer",
	"bio":      "Creating beautiful digital experiences",
}

// Apply materializes a template's code: {{name}} placeholders are replaced
// from variables, then from the default-value table for any declared variable
// still present. A declared variable with neither a value nor a default is
// left as a literal {name} marker so broken templates are visible in output.
func Apply(t Template, variables map[string]string) string {
	code := t.Code

	for key, value := range variables {
		code = strings.ReplaceAll(code, "{{"+key+"}}", value)
	}

	for _, v := range t.Variables {
		placeholder := "{{" + v + "}}"
		if !strings.Contains(code, placeholder) {
			continue
		}
		value, ok := defaultValues[v]
		if !ok {
			value = "{" + v + "}"
		}
		code = strings.ReplaceAll(code, placeholder, value)
	}

	return code
}
