package toon

import "strings"

// Method records how an encoding was produced.
type Method string

const (
	// MethodPattern means a shortcut rule (or explicit parameters) produced
	// the spec directly.
	MethodPattern Method = "pattern"
	// MethodExtracted means the spec was assembled from keyword extraction.
	MethodExtracted Method = "extracted"
)

// Encoding is the result of compiling a prompt (or explicit parameters) into
// notation. Confidence is a [0,1] signal the caller uses to reject weak
// encodings before any paid generation happens; the conventional rejection
// threshold is 0.5 and is a caller concern, not enforced here.
type Encoding struct {
	Notation   string
	Spec       Spec
	Confidence float64
	Method     Method
	Warnings   []string
}

// Encoder compiles free-text prompts into notation strings and Specs.
// It holds only immutable rule tables and is safe for concurrent use.
type Encoder struct {
	dec *Decoder
}

// NewEncoder returns an Encoder.
func NewEncoder() *Encoder { return &Encoder{dec: NewDecoder()} }

// patternRule is one shortcut: if the prompt contains any keyword from each
// group, the canned notation wins. Rules are evaluated top-down; the first
// match ends the search, so table order is part of the contract.
type patternRule struct {
	groups   [][]string
	notation string
}

// Keyword groups carry Russian stems alongside English ones; prompts arrive
// in both languages. Stems (not full words) so that inflected forms match.
var patternRules = []patternRule{
	{[][]string{{"minimal", "simple", "минимал", "прост"}, {"landing", "page", "лендинг", "страниц"}}, PatternMinimalLanding},
	{[][]string{{"corporate", "professional", "корпоратив", "профессионал"}, {"landing", "page", "лендинг", "страниц"}}, PatternCorporateLanding},
	{[][]string{{"product", "продукт"}, {"landing", "page", "лендинг", "страниц"}}, PatternProductLanding},
	{[][]string{{"creative", "artistic", "креатив"}, {"portfolio", "портфолио"}}, PatternCreativePortfolio},
	{[][]string{{"minimal", "simple", "минимал", "прост"}, {"portfolio", "портфолио"}}, PatternMinimalPortfolio},
}

// keywordPair binds one prompt keyword to a dictionary code. Tables are
// ordered slices, never maps: first match wins per category, and that order
// must stay deterministic.
type keywordPair struct {
	keyword string
	code    string
}

var siteTypeKeywords = []keywordPair{
	{"landing", "lp"},
	{"landing page", "lp"},
	{"portfolio", "pf"},
	{"ecommerce", "ec"},
	{"e-commerce", "ec"},
	{"shop", "ec"},
	{"store", "ec"},
	{"blog", "bl"},
	{"dashboard", "da"},
	{"app", "ap"},
	{"application", "ap"},
	{"лендинг", "lp"},
	{"портфолио", "pf"},
	{"магазин", "ec"},
	{"блог", "bl"},
}

var styleKeywords = []keywordPair{
	{"minimal", "min"},
	{"minimalist", "min"},
	{"minimalistic", "min"},
	{"corporate", "cor"},
	{"professional", "cor"},
	{"business", "cor"},
	{"creative", "cre"},
	{"artistic", "cre"},
	{"modern", "mod"},
	{"contemporary", "mod"},
	{"luxury", "lux"},
	{"premium", "lux"},
	{"elegant", "lux"},
	{"tech", "tec"},
	{"technical", "tec"},
	{"playful", "pla"},
	{"fun", "pla"},
	{"минимал", "min"},
	{"корпоратив", "cor"},
	{"креатив", "cre"},
	{"современ", "mod"},
}

var componentKeywords = []keywordPair{
	{"hero", "h"},
	{"header", "h"},
	{"features", "f"},
	{"feature", "f"},
	{"gallery", "g"},
	{"images", "g"},
	{"photos", "g"},
	{"contact", "ct"},
	{"contact form", "ct"},
	{"footer", "ft"},
	{"navigation", "nav"},
	{"menu", "nav"},
	{"nav", "nav"},
	{"pricing", "pr"},
	{"price", "pr"},
	{"plans", "pr"},
	{"testimonials", "tm"},
	{"testimonial", "tm"},
	{"reviews", "tm"},
	{"faq", "fa"},
	{"frequently asked", "fa"},
	{"about", "ab"},
	{"about us", "ab"},
	{"stats", "st"},
	{"statistics", "st"},
	{"numbers", "st"},
	{"clients", "cl"},
	{"partners", "cl"},
	{"blog", "bl"},
	{"blog section", "bl"},
	{"articles", "bl"},
	{"cta", "cta"},
	{"call to action", "cta"},
	{"form", "fm"},
}

var layoutKeywords = []keywordPair{
	{"split", "spl"},
	{"centered", "ctr"},
	{"center", "ctr"},
	{"fullwidth", "fl"},
	{"full width", "fl"},
	{"video", "vid"},
	{"grid", "gr"},
	{"2 columns", "gr2"},
	{"3 columns", "gr3"},
	{"4 columns", "gr4"},
	{"list", "ls"},
	{"cards", "crds"},
	{"masonry", "mas"},
	{"carousel", "car"},
	{"slider", "car"},
}

// Encode compiles a free-text prompt into notation. The shortcut phase is
// tried first; when no rule matches, the spec is assembled by keyword
// extraction with normalization and a confidence score.
func (e *Encoder) Encode(prompt string) Encoding {
	normalized := strings.ToLower(strings.TrimSpace(prompt))

	if enc, ok := e.tryPatternMatch(normalized); ok {
		return enc
	}
	return e.extractFromPrompt(normalized)
}

// tryPatternMatch checks the ordered shortcut table. A hit returns the
// canned notation decoded into a Spec with confidence 0.9.
func (e *Encoder) tryPatternMatch(prompt string) (Encoding, bool) {
	for _, rule := range patternRules {
		if !matchesAllGroups(prompt, rule.groups) {
			continue
		}
		res := e.dec.Decode(rule.notation)
		return Encoding{
			Notation:   rule.notation,
			Spec:       res.Spec,
			Confidence: 0.9,
			Method:     MethodPattern,
		}, true
	}
	return Encoding{}, false
}

// matchesAllGroups reports whether the prompt contains at least one keyword
// from every group.
func matchesAllGroups(prompt string, groups [][]string) bool {
	for _, group := range groups {
		found := false
		for _, kw := range group {
			if strings.Contains(prompt, kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// extractFromPrompt independently extracts site type, style, and sections by
// keyword lookup, then normalizes and scores the result.
func (e *Encoder) extractFromPrompt(prompt string) Encoding {
	var warnings []string

	siteType, found := extractSiteType(prompt)
	if !found {
		warnings = append(warnings, "could not determine site type, defaulting to landing page")
		siteType = SiteLanding
	}

	spec := Spec{
		SiteType: siteType,
		Style:    extractStyle(prompt),
		Sections: extractSections(prompt, siteType),
	}

	normalizeSpec(&spec, &warnings)

	return Encoding{
		Notation:   EncodeSpec(&spec),
		Spec:       spec,
		Confidence: extractionConfidence(&spec, warnings),
		Method:     MethodExtracted,
		Warnings:   warnings,
	}
}

func extractSiteType(prompt string) (SiteType, bool) {
	for _, p := range siteTypeKeywords {
		if strings.Contains(prompt, p.keyword) {
			return SiteType(p.code), true
		}
	}
	return "", false
}

func extractStyle(prompt string) Style {
	for _, p := range styleKeywords {
		if strings.Contains(prompt, p.keyword) {
			return Style(p.code)
		}
	}
	return ""
}

// extractSections collects the section types mentioned in the prompt, in
// keyword-table order, with at most one section per component type. When the
// prompt names a layout keyword, the first layout found applies to each
// extracted section. Prompts that name no sections fall back to the
// recommended list; missing required sections are inserted at the front.
func extractSections(prompt string, siteType SiteType) []Section {
	var sections []Section
	seen := make(map[Component]bool)

	for _, p := range componentKeywords {
		code := Component(p.code)
		if !strings.Contains(prompt, p.keyword) || seen[code] {
			continue
		}
		seen[code] = true

		var layout string
		for _, lp := range layoutKeywords {
			if strings.Contains(prompt, lp.keyword) {
				layout = lp.code
				break
			}
		}
		sections = append(sections, Section{Type: code, Layout: layout})
	}

	if len(sections) == 0 {
		for _, c := range RecommendedSections[siteType] {
			sections = append(sections, Section{Type: c})
		}
	}

	for _, req := range RequiredSections[siteType] {
		if !containsType(sections, req) {
			sections = append([]Section{{Type: req}}, sections...)
		}
	}

	return sections
}

func containsType(sections []Section, c Component) bool {
	for _, s := range sections {
		if s.Type == c {
			return true
		}
	}
	return false
}

// normalizeSpec applies the section-count and ordering contracts shared by
// the extraction and explicit paths: clamp section count to
// [MinSections, MaxSections], hero first, footer last.
func normalizeSpec(spec *Spec, warnings *[]string) {
	if len(spec.Sections) < MinSections {
		*warnings = append(*warnings, "too few sections, adding recommended sections")
		rec, ok := RecommendedSections[spec.SiteType]
		if !ok {
			rec = []Component{CompHero, CompFeatures, CompContact}
		}
		spec.Sections = nil
		for _, c := range rec {
			spec.Sections = append(spec.Sections, Section{Type: c})
		}
	}

	if len(spec.Sections) > MaxSections {
		*warnings = append(*warnings, "too many sections, limiting to 10")
		spec.Sections = spec.Sections[:MaxSections]
	}

	// Hero leads.
	for i, sec := range spec.Sections {
		if sec.Type == CompHero && i > 0 {
			hero := spec.Sections[i]
			spec.Sections = append(spec.Sections[:i], spec.Sections[i+1:]...)
			spec.Sections = append([]Section{hero}, spec.Sections...)
			break
		}
	}

	// Footer trails.
	for i, sec := range spec.Sections {
		if sec.Type == CompFooter && i < len(spec.Sections)-1 {
			footer := spec.Sections[i]
			spec.Sections = append(spec.Sections[:i], spec.Sections[i+1:]...)
			spec.Sections = append(spec.Sections, footer)
			break
		}
	}
}

// extractionConfidence starts at 1.0 and deducts 0.1 per warning, 0.1 when no
// style was extracted, and 0.15 when the final section-type set is exactly
// the recommended set for the site type (the generic-fallback signal).
// Clamped to [0, 1].
func extractionConfidence(spec *Spec, warnings []string) float64 {
	confidence := 1.0

	confidence -= float64(len(warnings)) * 0.1

	if spec.Style == "" {
		confidence -= 0.1
	}

	if rec, ok := RecommendedSections[spec.SiteType]; ok && sameTypeSet(spec.Sections, rec) {
		confidence -= 0.15
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// sameTypeSet reports whether the set of section types equals the given
// component set. Order and duplicates are ignored.
func sameTypeSet(sections []Section, comps []Component) bool {
	got := make(map[Component]bool)
	for _, s := range sections {
		got[s.Type] = true
	}
	want := make(map[Component]bool)
	for _, c := range comps {
		want[c] = true
	}
	if len(got) != len(want) {
		return false
	}
	for c := range want {
		if !got[c] {
			return false
		}
	}
	return true
}

// ExplicitParams are caller-supplied structured inputs for EncodeExplicit.
type ExplicitParams struct {
	SiteType SiteType
	Style    Style
	Sections []Component
	// Layouts optionally maps a component code to a layout override.
	Layouts map[Component]string
}

// EncodeExplicit bypasses extraction entirely: it builds the Spec from the
// given parameters, runs the shared normalization pass, and always reports
// confidence 1.0 with the pattern method.
func (e *Encoder) EncodeExplicit(params ExplicitParams) Encoding {
	sections := make([]Section, len(params.Sections))
	for i, c := range params.Sections {
		sections[i] = Section{Type: c, Layout: params.Layouts[c]}
	}

	spec := Spec{
		SiteType: params.SiteType,
		Style:    params.Style,
		Sections: sections,
	}

	var warnings []string
	normalizeSpec(&spec, &warnings)

	return Encoding{
		Notation:   EncodeSpec(&spec),
		Spec:       spec,
		Confidence: 1.0,
		Method:     MethodPattern,
		Warnings:   warnings,
	}
}
