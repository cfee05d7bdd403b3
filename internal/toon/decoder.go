package toon

import (
	"fmt"
	"regexp"
	"strings"
)

// Result is the outcome of decoding a notation string. Decode never fails
// past its boundary: a malformed string yields a default Spec with Valid set
// to false and the failure recorded in Errors. Callers must check Valid
// before trusting the Spec.
type Result struct {
	Spec     Spec
	Valid    bool
	Errors   []string
	Warnings []string
}

// Decoder parses notation strings into Specs and serializes Specs back to
// canonical notation. It holds no state and is safe for concurrent use.
type Decoder struct{}

// NewDecoder returns a Decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// topLevelRe splits the site-type code from the optional brace-delimited
// property block: "lp" or "lp{...}".
var topLevelRe = regexp.MustCompile(`^(\w+)(?:\{(.+)\})?$`)

// Decode parses a notation string into a structured Spec, collecting errors
// and warnings along the way. See Result for the failure contract.
func (d *Decoder) Decode(notation string) Result {
	var errs, warns []string

	m := topLevelRe.FindStringSubmatch(strings.TrimSpace(notation))
	if m == nil {
		errs = append(errs, fmt.Sprintf("toon: invalid notation format: %q", notation))
		return Result{Spec: DefaultSpec(), Valid: false, Errors: errs}
	}

	siteCode, propsStr := m[1], m[2]
	if !IsValidSiteType(SiteType(siteCode)) {
		errs = append(errs, fmt.Sprintf("invalid site type: %s", siteCode))
	}

	// The raw code is kept even when invalid so callers can inspect what was
	// sent; Valid=false signals it is not a dictionary member.
	spec := Spec{SiteType: SiteType(siteCode)}

	if propsStr != "" {
		d.parseProperties(propsStr, &spec, &errs, &warns)
	}

	d.validate(&spec, &errs, &warns)

	return Result{
		Spec:     spec,
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

// parseProperties handles the top-level property block: style (st:), sections
// (s:[...]) and colors (c:[...]). Unknown property keys are a warning, not an
// error.
func (d *Decoder) parseProperties(propsStr string, spec *Spec, errs, warns *[]string) {
	for _, prop := range splitDepthAware(propsStr) {
		switch {
		case strings.HasPrefix(prop, "st:"):
			code := Style(prop[len("st:"):])
			if !IsValidStyle(code) {
				*errs = append(*errs, fmt.Sprintf("invalid style: %s", code))
			} else {
				spec.Style = code
			}
		case strings.HasPrefix(prop, "s:"):
			spec.Sections = d.parseSections(prop[len("s:"):], errs, warns)
		case strings.HasPrefix(prop, "c:"):
			d.parseColors(prop[len("c:"):], spec, errs, warns)
		default:
			*warns = append(*warns, fmt.Sprintf("unknown property: %s", prop))
		}
	}
}

// splitDepthAware splits s on '|' at bracket depth zero. Depth increases on
// '[' and '{' and decreases on ']' and '}', so pipes inside nested section
// definitions (e.g. "h{ly:spl}|f") never split a section in half. Naive
// splitting breaks as soon as any section carries a brace suffix; this
// function is the load-bearing parsing primitive.
func splitDepthAware(s string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '[' || c == '{':
			depth++
			current.WriteByte(c)
		case c == ']' || c == '}':
			depth--
			current.WriteByte(c)
		case c == '|' && depth == 0:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteByte(c)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// bracketRe matches a square-bracketed list body: "[...]".
var bracketRe = regexp.MustCompile(`^\[(.+)\]$`)

// parseSections parses the "s:" property value: "[h{ly:ctr}|f{ly:gr3}|cta]".
func (d *Decoder) parseSections(sectionsStr string, errs, warns *[]string) []Section {
	m := bracketRe.FindStringSubmatch(sectionsStr)
	if m == nil {
		*errs = append(*errs, "invalid sections format")
		return nil
	}

	var sections []Section
	for _, part := range splitDepthAware(m[1]) {
		if sec, ok := d.parseSection(part, errs, warns); ok {
			sections = append(sections, sec)
		}
	}
	return sections
}

// parseSection parses one section definition: "h{ly:ctr}", "h{ly:ctr|sz:lg}"
// or bare "h". An unknown component code drops the section with an error.
func (d *Decoder) parseSection(sectionStr string, errs, warns *[]string) (Section, bool) {
	m := topLevelRe.FindStringSubmatch(sectionStr)
	if m == nil {
		*errs = append(*errs, fmt.Sprintf("invalid section format: %s", sectionStr))
		return Section{}, false
	}

	code, propsStr := m[1], m[2]
	if !IsValidComponent(Component(code)) {
		*errs = append(*errs, fmt.Sprintf("invalid component: %s", code))
		return Section{}, false
	}

	sec := Section{Type: Component(code)}
	if propsStr != "" {
		// Section braces never nest further, so a plain split is safe here.
		for _, prop := range strings.Split(propsStr, "|") {
			switch {
			case strings.HasPrefix(prop, "ly:"):
				sec.Layout = prop[len("ly:"):]
			case strings.HasPrefix(prop, "sz:"):
				size := Size(prop[len("sz:"):])
				if IsValidSize(size) {
					sec.Size = size
				} else {
					*warns = append(*warns, fmt.Sprintf("invalid size: %s", size))
				}
			}
		}
	}
	return sec, true
}

// parseColors parses the "c:" property value: "[bl,rd]" or "[bl,#FF0000]".
// Tokens starting with '#' are custom colors; anything else must be a
// dictionary color code.
func (d *Decoder) parseColors(colorsStr string, spec *Spec, errs, warns *[]string) {
	m := bracketRe.FindStringSubmatch(colorsStr)
	if m == nil {
		*errs = append(*errs, "invalid colors format")
		return
	}

	for _, raw := range strings.Split(m[1], ",") {
		token := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(token, "#"):
			spec.CustomColors = append(spec.CustomColors, token)
		case IsValidColor(ColorCode(token)):
			spec.Colors = append(spec.Colors, ColorCode(token))
		default:
			*errs = append(*errs, fmt.Sprintf("invalid color code: %s", token))
		}
	}
}

// validate collects post-parse warnings: empty section lists, duplicate
// section types, and layouts outside the component's vocabulary. All of these
// are recoverable; none invalidate the Spec.
func (d *Decoder) validate(spec *Spec, errs, warns *[]string) {
	if len(spec.Sections) == 0 {
		*warns = append(*warns, "no sections defined")
	}

	seen := make(map[Component]bool)
	for _, sec := range spec.Sections {
		if seen[sec.Type] {
			*warns = append(*warns, fmt.Sprintf("duplicate section: %s", sec.Type))
		}
		seen[sec.Type] = true
	}

	for _, sec := range spec.Sections {
		if sec.Layout == "" {
			continue
		}
		valid := ValidLayouts(sec.Type)
		if valid == nil {
			continue
		}
		found := false
		for _, l := range valid {
			if l == sec.Layout {
				found = true
				break
			}
		}
		if !found {
			// Kept as-is rather than dropped: tolerates dictionary evolution.
			*warns = append(*warns, fmt.Sprintf(
				"invalid layout %q for component %q", sec.Layout, sec.Type))
		}
	}
}

// DefaultSpec is the fallback shape returned on total parse failure: a
// landing page with a single hero section.
func DefaultSpec() Spec {
	return Spec{
		SiteType: SiteLanding,
		Sections: []Section{{Type: CompHero}},
	}
}

// EncodeSpec serializes a Spec to canonical notation: style, then sections,
// then colors. Re-decoding the output of EncodeSpec reproduces semantically
// equivalent sections and style (modulo codes dropped as invalid on the way
// in).
func EncodeSpec(spec *Spec) string {
	var props []string

	if spec.Style != "" {
		props = append(props, "st:"+string(spec.Style))
	}

	if len(spec.Sections) > 0 {
		parts := make([]string, len(spec.Sections))
		for i, sec := range spec.Sections {
			s := string(sec.Type)
			var secProps []string
			if sec.Layout != "" {
				secProps = append(secProps, "ly:"+sec.Layout)
			}
			if sec.Size != "" {
				secProps = append(secProps, "sz:"+string(sec.Size))
			}
			if len(secProps) > 0 {
				s += "{" + strings.Join(secProps, "|") + "}"
			}
			parts[i] = s
		}
		props = append(props, "s:["+strings.Join(parts, "|")+"]")
	}

	if len(spec.Colors) > 0 {
		all := make([]string, 0, len(spec.Colors)+len(spec.CustomColors))
		for _, c := range spec.Colors {
			all = append(all, string(c))
		}
		all = append(all, spec.CustomColors...)
		props = append(props, "c:["+strings.Join(all, ",")+"]")
	}

	result := string(spec.SiteType)
	if len(props) > 0 {
		result += "{" + strings.Join(props, "|") + "}"
	}
	return result
}

// Describe returns a human-readable one-line summary of a Spec, e.g.
// "landing_page with minimalist style containing: hero, features". It is a
// presentation helper and is never used for control flow.
func Describe(spec *Spec) string {
	var parts []string

	if name := SiteTypeName(spec.SiteType); name != "" {
		parts = append(parts, name)
	} else {
		parts = append(parts, string(spec.SiteType))
	}

	if spec.Style != "" {
		if name := StyleName(spec.Style); name != "" {
			parts = append(parts, "with "+name+" style")
		}
	}

	if len(spec.Sections) > 0 {
		names := make([]string, len(spec.Sections))
		for i, sec := range spec.Sections {
			names[i] = ComponentName(sec.Type)
		}
		parts = append(parts, "containing: "+strings.Join(names, ", "))
	}

	return strings.Join(parts, " ")
}
