package toon

// Section is one structural block of a site.
type Section struct {
	Type Component `yaml:"type"`
	// Layout is meaningful only relative to Type. Unrecognized layouts for a
	// known component are tolerated (warning, not rejection) so the dictionary
	// can grow without invalidating stored notation.
	Layout string `yaml:"layout,omitempty"`
	Size   Size   `yaml:"size,omitempty"`
}

// Spec is the canonical structured representation of a site to build.
// Specs live for one pipeline invocation; only the notation string they
// serialize to is ever persisted.
type Spec struct {
	SiteType SiteType  `yaml:"siteType"`
	Style    Style     `yaml:"style,omitempty"`
	Sections []Section `yaml:"sections"`
	// Colors holds dictionary color codes; CustomColors holds raw values
	// (e.g. "#FF0000") that are not in the dictionary.
	Colors       []ColorCode `yaml:"colors,omitempty"`
	CustomColors []string    `yaml:"customColors,omitempty"`
}

// SectionTypes returns the section type codes in order.
func (s *Spec) SectionTypes() []Component {
	out := make([]Component, len(s.Sections))
	for i, sec := range s.Sections {
		out[i] = sec.Type
	}
	return out
}

// HasSection reports whether the spec contains a section of type c.
func (s *Spec) HasSection(c Component) bool {
	for _, sec := range s.Sections {
		if sec.Type == c {
			return true
		}
	}
	return false
}

// Section count bounds enforced during encoding normalization.
const (
	MinSections = 1
	MaxSections = 10
)

// RequiredSections lists sections that must be present for a site type.
// Missing required sections are force-inserted at the front during
// extraction.
var RequiredSections = map[SiteType][]Component{
	SiteLanding:   {CompHero},
	SitePortfolio: {CompHero, CompGallery},
	SiteBlog:      {CompHero, CompBlogSection},
}

// RecommendedSections is the fallback section list per site type, used when a
// prompt yields no sections at all.
var RecommendedSections = map[SiteType][]Component{
	SiteLanding:   {CompHero, CompFeatures, CompCallToAction},
	SitePortfolio: {CompHero, CompGallery, CompAbout, CompContact},
	SiteBlog:      {CompHero, CompBlogSection, CompFooter},
	SiteEcommerce: {CompHero, CompFeatures, CompPricing, CompTestimonials, CompContact},
}

// Canned notation strings for common site shapes, keyed by pattern name.
// The encoder's shortcut phase resolves into these.
const (
	PatternMinimalLanding    = "lp{st:min|s:[h{ly:ctr}|f{ly:gr3}|cta]}"
	PatternCorporateLanding  = "lp{st:cor|s:[h{ly:spl}|f{ly:gr4}|tm|pr|ct]}"
	PatternProductLanding    = "lp{st:mod|s:[h{ly:vid}|f{ly:crds}|st|pr{ly:cmp}|cta]}"
	PatternCreativePortfolio = "pf{st:cre|s:[h{ly:fl}|g{ly:mas}|ab|ct]}"
	PatternMinimalPortfolio  = "pf{st:min|s:[h{ly:ctr}|g{ly:gr}|ab|ct]}"
	PatternMinimalBlog       = "bl{st:min|s:[h{ly:ctr}|bl{ly:ls}|ft]}"
	PatternMagazineBlog      = "bl{st:mod|s:[h{ly:img}|bl{ly:gr3}|ft]}"
)
