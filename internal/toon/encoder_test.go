package toon

import (
	"math"
	"testing"
)

func TestEncode_PatternShortcuts(t *testing.T) {
	e := NewEncoder()
	cases := []struct {
		prompt string
		want   string
	}{
		{"a minimal landing page for my startup", PatternMinimalLanding},
		{"simple one page site", PatternMinimalLanding},
		{"professional corporate landing page", PatternCorporateLanding},
		{"landing page for our product launch", PatternProductLanding},
		{"creative portfolio for a photographer", PatternCreativePortfolio},
		{"simple portfolio", PatternMinimalPortfolio},
	}
	for _, c := range cases {
		got := e.Encode(c.prompt)
		if got.Method != MethodPattern {
			t.Errorf("Encode(%q) method = %q, want pattern", c.prompt, got.Method)
			continue
		}
		if got.Notation != c.want {
			t.Errorf("Encode(%q) = %q, want %q", c.prompt, got.Notation, c.want)
		}
		if got.Confidence != 0.9 {
			t.Errorf("Encode(%q) confidence = %v, want 0.9", c.prompt, got.Confidence)
		}
	}
}

func TestEncode_PatternOrderFirstMatchWins(t *testing.T) {
	// Matches both the minimal-landing and product-landing rules; the
	// minimal rule sits earlier in the table and must win.
	e := NewEncoder()
	got := e.Encode("minimal landing page for a product")
	if got.Notation != PatternMinimalLanding {
		t.Errorf("notation = %q, want minimal landing (first rule wins)", got.Notation)
	}
}

func TestEncode_RussianPrompt(t *testing.T) {
	e := NewEncoder()
	got := e.Encode("Создайте минималистичную landing page для SaaS продукта")
	if got.Method != MethodPattern {
		t.Fatalf("method = %q, want pattern", got.Method)
	}
	if got.Notation != PatternMinimalLanding {
		t.Errorf("notation = %q, want %q", got.Notation, PatternMinimalLanding)
	}
	if got.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", got.Confidence)
	}
}

func TestEncode_ExtractionBasic(t *testing.T) {
	e := NewEncoder()
	got := e.Encode("tech dashboard with stats and a contact form")

	if got.Method != MethodExtracted {
		t.Fatalf("method = %q, want extracted", got.Method)
	}
	if got.Spec.SiteType != SiteDashboard {
		t.Errorf("siteType = %q, want da", got.Spec.SiteType)
	}
	if got.Spec.Style != StyleTech {
		t.Errorf("style = %q, want tec", got.Spec.Style)
	}
	if !got.Spec.HasSection(CompStats) || !got.Spec.HasSection(CompContact) {
		t.Errorf("sections = %+v, want stats and contact present", got.Spec.Sections)
	}
}

func TestEncode_NoSiteTypeDefaultsWithWarning(t *testing.T) {
	e := NewEncoder()
	got := e.Encode("something with a gallery of images")
	if got.Spec.SiteType != SiteLanding {
		t.Errorf("siteType = %q, want lp default", got.Spec.SiteType)
	}
	if len(got.Warnings) == 0 {
		t.Error("expected a default-site-type warning")
	}
}

func TestEncode_NoSectionsFallsBackToRecommended(t *testing.T) {
	e := NewEncoder()
	got := e.Encode("ecommerce")
	rec := RecommendedSections[SiteEcommerce]
	if len(got.Spec.Sections) != len(rec) {
		t.Fatalf("got %d sections, want recommended %d", len(got.Spec.Sections), len(rec))
	}
	for i, c := range rec {
		if got.Spec.Sections[i].Type != c {
			t.Errorf("sections[%d] = %q, want %q", i, got.Spec.Sections[i].Type, c)
		}
	}
}

func TestEncode_RequiredSectionsInserted(t *testing.T) {
	// Portfolio requires hero and gallery; a prompt naming only "about"
	// must still get both, with hero forced to the front.
	e := NewEncoder()
	got := e.Encode("portfolio with an about section")
	if !got.Spec.HasSection(CompHero) || !got.Spec.HasSection(CompGallery) {
		t.Fatalf("sections = %+v, want hero and gallery inserted", got.Spec.Sections)
	}
	if got.Spec.Sections[0].Type != CompHero {
		t.Errorf("sections[0] = %q, want hero first", got.Spec.Sections[0].Type)
	}
}

func TestNormalizeSpec_HeroFirstFooterLast(t *testing.T) {
	spec := Spec{
		SiteType: SiteLanding,
		Sections: []Section{
			{Type: CompFeatures},
			{Type: CompFooter},
			{Type: CompHero},
			{Type: CompContact},
		},
	}
	var warnings []string
	normalizeSpec(&spec, &warnings)

	if spec.Sections[0].Type != CompHero {
		t.Errorf("sections[0] = %q, want hero", spec.Sections[0].Type)
	}
	if spec.Sections[len(spec.Sections)-1].Type != CompFooter {
		t.Errorf("sections[last] = %q, want footer", spec.Sections[len(spec.Sections)-1].Type)
	}
	// Interior order preserved as discovered.
	if spec.Sections[1].Type != CompFeatures || spec.Sections[2].Type != CompContact {
		t.Errorf("interior order = %+v, want features then contact", spec.Sections[1:3])
	}
}

func TestNormalizeSpec_ClampsSectionCount(t *testing.T) {
	var many []Section
	for i := 0; i < 14; i++ {
		many = append(many, Section{Type: CompFeatures})
	}
	spec := Spec{SiteType: SiteLanding, Sections: many}
	var warnings []string
	normalizeSpec(&spec, &warnings)
	if len(spec.Sections) != MaxSections {
		t.Errorf("got %d sections, want clamped to %d", len(spec.Sections), MaxSections)
	}
	if len(warnings) == 0 {
		t.Error("expected a truncation warning")
	}

	empty := Spec{SiteType: SiteBlog}
	warnings = nil
	normalizeSpec(&empty, &warnings)
	rec := RecommendedSections[SiteBlog]
	if len(empty.Sections) != len(rec) {
		t.Errorf("got %d sections, want recommended %d", len(empty.Sections), len(rec))
	}
}

func TestExtractionConfidence(t *testing.T) {
	cases := []struct {
		name     string
		spec     Spec
		warnings []string
		want     float64
	}{
		{
			name: "styled specific sections",
			spec: Spec{SiteType: SiteLanding, Style: StyleModern,
				Sections: []Section{{Type: CompHero}, {Type: CompPricing}}},
			want: 1.0,
		},
		{
			name: "no style",
			spec: Spec{SiteType: SiteLanding,
				Sections: []Section{{Type: CompHero}, {Type: CompPricing}}},
			want: 0.9,
		},
		{
			name: "exactly recommended set",
			spec: Spec{SiteType: SiteLanding, Style: StyleModern,
				Sections: []Section{{Type: CompHero}, {Type: CompFeatures}, {Type: CompCallToAction}}},
			want: 0.85,
		},
		{
			name: "warnings deduct",
			spec: Spec{SiteType: SiteLanding, Style: StyleModern,
				Sections: []Section{{Type: CompHero}, {Type: CompPricing}}},
			warnings: []string{"w1", "w2"},
			want:     0.8,
		},
		{
			name:     "clamped at zero",
			spec:     Spec{SiteType: SiteLanding},
			warnings: []string{"w", "w", "w", "w", "w", "w", "w", "w", "w", "w", "w"},
			want:     0,
		},
	}
	for _, c := range cases {
		got := extractionConfidence(&c.spec, c.warnings)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s: confidence = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestEncodeExplicit(t *testing.T) {
	e := NewEncoder()
	got := e.EncodeExplicit(ExplicitParams{
		SiteType: SiteLanding,
		Style:    StyleModern,
		Sections: []Component{CompFeatures, CompHero, CompFooter},
		Layouts:  map[Component]string{CompHero: "spl"},
	})

	if got.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", got.Confidence)
	}
	if got.Method != MethodPattern {
		t.Errorf("method = %q, want pattern", got.Method)
	}
	if got.Spec.Sections[0].Type != CompHero || got.Spec.Sections[0].Layout != "spl" {
		t.Errorf("sections[0] = %+v, want hero with spl layout", got.Spec.Sections[0])
	}
	if got.Spec.Sections[len(got.Spec.Sections)-1].Type != CompFooter {
		t.Errorf("footer not last: %+v", got.Spec.Sections)
	}
}

func TestEncodeExplicit_RoundTrip(t *testing.T) {
	e := NewEncoder()
	d := NewDecoder()
	enc := e.EncodeExplicit(ExplicitParams{
		SiteType: SitePortfolio,
		Style:    StyleCreative,
		Sections: []Component{CompHero, CompGallery, CompAbout, CompContact},
		Layouts:  map[Component]string{CompHero: "fl", CompGallery: "mas"},
	})

	res := d.Decode(enc.Notation)
	if !res.Valid {
		t.Fatalf("round-trip decode invalid: %v", res.Errors)
	}
	if res.Spec.SiteType != enc.Spec.SiteType {
		t.Errorf("siteType drifted: %q -> %q", enc.Spec.SiteType, res.Spec.SiteType)
	}
	if res.Spec.Style != enc.Spec.Style {
		t.Errorf("style drifted: %q -> %q", enc.Spec.Style, res.Spec.Style)
	}
	if len(res.Spec.Sections) != len(enc.Spec.Sections) {
		t.Fatalf("section count drifted: %d -> %d", len(enc.Spec.Sections), len(res.Spec.Sections))
	}
	for i := range enc.Spec.Sections {
		a, b := enc.Spec.Sections[i], res.Spec.Sections[i]
		if a.Type != b.Type || a.Layout != b.Layout {
			t.Errorf("sections[%d] drifted: %+v -> %+v", i, a, b)
		}
	}
}
