// Package toon implements the TOON notation: a compact symbolic representation
// of website structure, with a dictionary of short codes, a decoder that parses
// notation strings into structured specs, and an encoder that compiles
// free-text prompts into notation.
package toon

// SiteType is a TOON site-type code (e.g. "lp" for landing_page).
type SiteType string

const (
	SiteLanding   SiteType = "lp"
	SitePortfolio SiteType = "pf"
	SiteEcommerce SiteType = "ec"
	SiteBlog      SiteType = "bl"
	SiteDashboard SiteType = "da"
	SiteApp       SiteType = "ap"
)

// Style is a TOON style code (e.g. "min" for minimalist).
type Style string

const (
	StyleMinimalist Style = "min"
	StyleCorporate  Style = "cor"
	StyleCreative   Style = "cre"
	StyleModern     Style = "mod"
	StyleLuxury     Style = "lux"
	StyleTech       Style = "tec"
	StylePlayful    Style = "pla"
)

// Component is a TOON section-component code (e.g. "h" for hero).
type Component string

const (
	CompHero         Component = "h"
	CompFeatures     Component = "f"
	CompGallery      Component = "g"
	CompContact      Component = "ct"
	CompFooter       Component = "ft"
	CompNavigation   Component = "nav"
	CompPricing      Component = "pr"
	CompTestimonials Component = "tm"
	CompFAQ          Component = "fa"
	CompAbout        Component = "ab"
	CompStats        Component = "st"
	CompClients      Component = "cl"
	CompBlogSection  Component = "bl"
	CompCallToAction Component = "cta"
	CompForm         Component = "fm"
)

// Size is a TOON section-size code.
type Size string

const (
	SizeXS Size = "xs"
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// ColorCode is a TOON dictionary color code mapping to a fixed hex value.
type ColorCode string

// siteTypeNames maps each site-type code to its full name. The paired slice
// below fixes enumeration order; map iteration order must never leak into
// output or tests.
var siteTypeNames = map[SiteType]string{
	SiteLanding:   "landing_page",
	SitePortfolio: "portfolio",
	SiteEcommerce: "ecommerce",
	SiteBlog:      "blog",
	SiteDashboard: "dashboard",
	SiteApp:       "app",
}

var siteTypeOrder = []SiteType{
	SiteLanding, SitePortfolio, SiteEcommerce, SiteBlog, SiteDashboard, SiteApp,
}

var styleNames = map[Style]string{
	StyleMinimalist: "minimalist",
	StyleCorporate:  "corporate",
	StyleCreative:   "creative",
	StyleModern:     "modern",
	StyleLuxury:     "luxury",
	StyleTech:       "tech",
	StylePlayful:    "playful",
}

var styleOrder = []Style{
	StyleMinimalist, StyleCorporate, StyleCreative, StyleModern,
	StyleLuxury, StyleTech, StylePlayful,
}

var componentNames = map[Component]string{
	CompHero:         "hero",
	CompFeatures:     "features",
	CompGallery:      "gallery",
	CompContact:      "contact",
	CompFooter:       "footer",
	CompNavigation:   "navigation",
	CompPricing:      "pricing",
	CompTestimonials: "testimonials",
	CompFAQ:          "faq",
	CompAbout:        "about",
	CompStats:        "stats",
	CompClients:      "clients",
	CompBlogSection:  "blog_section",
	CompCallToAction: "call_to_action",
	CompForm:         "form",
}

var componentOrder = []Component{
	CompHero, CompFeatures, CompGallery, CompContact, CompFooter,
	CompNavigation, CompPricing, CompTestimonials, CompFAQ, CompAbout,
	CompStats, CompClients, CompBlogSection, CompCallToAction, CompForm,
}

// layoutNames maps layout codes to full names per component. Only components
// listed here carry layout vocabularies; layouts on other components are not
// validated.
var layoutNames = map[Component]map[string]string{
	CompHero: {
		"spl": "split",
		"ctr": "centered",
		"fl":  "fullwidth",
		"vid": "video",
		"img": "image_bg",
	},
	CompFeatures: {
		"gr2":  "grid_2col",
		"gr3":  "grid_3col",
		"gr4":  "grid_4col",
		"ls":   "list",
		"crds": "cards",
	},
	CompGallery: {
		"mas": "masonry",
		"gr":  "grid",
		"car": "carousel",
	},
	CompPricing: {
		"cmp":  "comparison",
		"crds": "cards",
		"tab":  "table",
	},
}

var colorHex = map[ColorCode]string{
	"w":  "#FFFFFF",
	"b":  "#000000",
	"bl": "#3B82F6",
	"rd": "#EF4444",
	"gr": "#10B981",
	"yl": "#F59E0B",
	"pr": "#A855F7",
	"pk": "#EC4899",
	"tn": "#14B8A6",
	"in": "#6366F1",
	"or": "#F97316",
	"gy": "#6B7280",
}

var colorOrder = []ColorCode{
	"w", "b", "bl", "rd", "gr", "yl", "pr", "pk", "tn", "in", "or", "gy",
}

var sizeNames = map[Size]string{
	SizeXS: "extra_small",
	SizeSM: "small",
	SizeMD: "medium",
	SizeLG: "large",
	SizeXL: "extra_large",
}

var sizeOrder = []Size{SizeXS, SizeSM, SizeMD, SizeLG, SizeXL}

// SiteTypeName returns the full name for a site-type code, or "" if the code
// is not in the dictionary.
func SiteTypeName(t SiteType) string { return siteTypeNames[t] }

// StyleName returns the full name for a style code, or "".
func StyleName(s Style) string { return styleNames[s] }

// ComponentName returns the full name for a component code, or "".
func ComponentName(c Component) string { return componentNames[c] }

// SizeName returns the full name for a size code, or "".
func SizeName(s Size) string { return sizeNames[s] }

// ColorHex returns the hex value for a dictionary color code, or "".
func ColorHex(c ColorCode) string { return colorHex[c] }

// IsValidSiteType reports whether t is a dictionary site-type code.
func IsValidSiteType(t SiteType) bool { _, ok := siteTypeNames[t]; return ok }

// IsValidStyle reports whether s is a dictionary style code.
func IsValidStyle(s Style) bool { _, ok := styleNames[s]; return ok }

// IsValidComponent reports whether c is a dictionary component code.
func IsValidComponent(c Component) bool { _, ok := componentNames[c]; return ok }

// IsValidSize reports whether s is a dictionary size code.
func IsValidSize(s Size) bool { _, ok := sizeNames[s]; return ok }

// IsValidColor reports whether c is a dictionary color code.
func IsValidColor(c ColorCode) bool { _, ok := colorHex[c]; return ok }

// AllSiteTypes returns every site-type code in stable dictionary order.
func AllSiteTypes() []SiteType {
	out := make([]SiteType, len(siteTypeOrder))
	copy(out, siteTypeOrder)
	return out
}

// AllStyles returns every style code in stable dictionary order.
func AllStyles() []Style {
	out := make([]Style, len(styleOrder))
	copy(out, styleOrder)
	return out
}

// AllComponents returns every component code in stable dictionary order.
func AllComponents() []Component {
	out := make([]Component, len(componentOrder))
	copy(out, componentOrder)
	return out
}

// AllSizes returns every size code in stable dictionary order.
func AllSizes() []Size {
	out := make([]Size, len(sizeOrder))
	copy(out, sizeOrder)
	return out
}

// AllColors returns every color code in stable dictionary order.
func AllColors() []ColorCode {
	out := make([]ColorCode, len(colorOrder))
	copy(out, colorOrder)
	return out
}

// ValidLayouts returns the layout codes accepted by component c, in stable
// order, or nil if c has no layout vocabulary (in which case any layout value
// is tolerated).
func ValidLayouts(c Component) []string {
	m, ok := layoutNames[c]
	if !ok {
		return nil
	}
	var order []string
	switch c {
	case CompHero:
		order = []string{"spl", "ctr", "fl", "vid", "img"}
	case CompFeatures:
		order = []string{"gr2", "gr3", "gr4", "ls", "crds"}
	case CompGallery:
		order = []string{"mas", "gr", "car"}
	case CompPricing:
		order = []string{"cmp", "crds", "tab"}
	}
	out := make([]string, 0, len(m))
	for _, code := range order {
		if _, ok := m[code]; ok {
			out = append(out, code)
		}
	}
	return out
}

// LayoutName returns the full name of a layout code for component c, or "".
func LayoutName(c Component, layout string) string {
	if m, ok := layoutNames[c]; ok {
		return m[layout]
	}
	return ""
}
