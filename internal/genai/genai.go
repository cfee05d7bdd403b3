// Package genai handles generation-service communication: prompt
// construction, provider dispatch, code extraction from model output, and
// per-call cost accounting.
package genai

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Usage holds the token counters a provider reports for one call.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// Result is the outcome of one generation-service call. CostUSD is computed
// from the provider's reported usage at its published rates; an actual cost,
// not an estimate.
type Result struct {
	Code    string
	Model   string
	Usage   Usage
	CostUSD float64
}

// Service is the generation-service contract. GenerateFromBrief builds code
// from a text brief (the notation string); PatchCode customizes existing code
// per an instruction while preserving its structure.
type Service interface {
	GenerateFromBrief(ctx context.Context, brief string) (*Result, error)
	PatchCode(ctx context.Context, currentCode, instruction string) (*Result, error)
}

// NewService is the factory for creating generation services. It is a
// package-level variable so tests can replace it with a mock without
// modifying the call site. Tests must restore the original value; use
// t.Cleanup to do so safely.
var NewService func(providerName, model string) (Service, error) = defaultNewService

// defaultNewService dispatches to the appropriate provider implementation.
// An empty model selects the provider's default.
func defaultNewService(providerName, model string) (Service, error) {
	switch strings.ToLower(providerName) {
	case "anthropic", "":
		return newAnthropicService(model)
	case "openai":
		return newOpenAIService(model)
	case "google":
		return newGoogleService(model)
	default:
		return nil, fmt.Errorf("genai: unknown provider %q", providerName)
	}
}

const maxOutputTokens = 4096

// systemPrompt frames every brief call. The dictionary legend keeps the model
// from guessing at notation codes.
const systemPrompt = `You are an expert React developer specializing in beautiful, modern websites.

You generate production-ready React components from TOON specifications.

TOON is a compact representation of website structure:
- Example: "lp{st:min|s:[h{ly:spl}|f{ly:gr3}]}"
- Site types: lp (landing page), pf (portfolio), ec (ecommerce), bl (blog), da (dashboard), ap (app)
- Styles: min (minimalist), cor (corporate), cre (creative), mod (modern), lux (luxury), tec (tech), pla (playful)
- Components: h (hero), f (features), g (gallery), ct (contact), ft (footer), nav (navigation), pr (pricing), tm (testimonials), fa (faq), ab (about), st (stats), cl (clients), bl (blog section), cta (call to action), fm (form)
- Layouts: spl (split), ctr (centered), fl (fullwidth), vid (video), img (image background), gr2/gr3/gr4 (column grids), ls (list), crds (cards), mas (masonry), car (carousel)

Rules:
1. TypeScript with proper types; Tailwind CSS for all styling.
2. Functional components, self-contained, no external imports beyond React.
3. Mobile-first and responsive; semantic HTML; accessible.
4. Placeholder content that fits the context; example.com-style contact details.
5. Return ONLY the component code in a single code block.`

// buildBriefPrompt assembles the user prompt for a full generation call.
func buildBriefPrompt(brief string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a React component based on this TOON specification:\n\n**TOON Spec**: `%s`\n\n", brief)
	sb.WriteString("Generate production-ready code following all guidelines above.")
	return sb.String()
}

// buildPatchPrompt assembles the user prompt for a patch call: the current
// code plus a customization instruction that preserves structure.
func buildPatchPrompt(currentCode, instruction string) string {
	var sb strings.Builder
	sb.WriteString("You have a base component. Customize it according to the request while maintaining the overall structure.\n\n")
	sb.WriteString("Base component:\n```tsx\n")
	sb.WriteString(currentCode)
	sb.WriteString("\n```\n\n")
	fmt.Fprintf(&sb, "Request: %s\n\n", instruction)
	sb.WriteString("Keep the structure but adjust text content, colors and styling, layout details, and any specific features requested.\n")
	sb.WriteString("Return only the modified React component code.")
	return sb.String()
}

// codeFenceRe matches a fenced block tagged with a JS/TS language and
// captures its body.
var codeFenceRe = regexp.MustCompile("(?s)```(?:tsx|typescript|ts|jsx|javascript|js)\\n(.*?)\\n```")

// anyFenceRe matches any untagged fenced block.
var anyFenceRe = regexp.MustCompile("(?s)```\\n(.*?)\\n```")

// exportRe locates a bare component definition when the model skipped the
// fences entirely.
var exportRe = regexp.MustCompile("(?s)export default function.*")

// extractCode pulls the component source out of a model response: a tagged
// code fence first, then any fence, then a bare "export default function"
// tail, and as a last resort the whole trimmed response.
func extractCode(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := anyFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := exportRe.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(text)
}
