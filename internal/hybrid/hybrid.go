// Package hybrid decides how a site gets generated: straight from a matched
// template, from a template customized by one AI patch call, or fully by AI.
// The decision rides on template match confidence. All deterministic logic
// lives here; actual AI calls are delegated to the genai service.
package hybrid

import (
	"context"
	"fmt"

	"github.com/sitesmith/sitesmith/internal/genai"
	"github.com/sitesmith/sitesmith/internal/template"
	"github.com/sitesmith/sitesmith/internal/toon"
)

// Method is a generation strategy.
type Method string

const (
	MethodTemplate Method = "template"
	MethodHybrid   Method = "hybrid"
	MethodFullAI   Method = "full-ai"
)

// Fixed cost estimates in dollars. These feed reporting and the decision's
// EstimatedCost; once a real AI call has been made, the provider's reported
// cost supersedes them.
const (
	costTemplate = 0.0
	costHybrid   = 0.02
	costFullAI   = 0.08
)

// Confidence thresholds for strategy selection. Tuned against the matcher's
// step-function confidence buckets; do not adjust one without the other.
const (
	templateThreshold = 0.8
	hybridThreshold   = 0.6
)

// Decision is the arbitration output for one request. Match is set only for
// the template and hybrid methods.
type Decision struct {
	Method        Method
	Reason        string
	EstimatedCost float64
	Match         *template.Match
}

// Result is the outcome of executing a decision. Cost is the real reported
// cost for methods that called the AI service, and the fixed estimate (zero)
// for pure template generation.
type Result struct {
	Code         string
	Method       Method
	Cost         float64
	TemplateUsed string
	Usage        genai.Usage
}

// Arbitrator picks and runs a generation strategy. It holds the immutable
// matcher and the generation service; safe for concurrent use.
type Arbitrator struct {
	matcher *template.Matcher
	service genai.Service
}

// NewArbitrator returns an Arbitrator over the given matcher and service.
func NewArbitrator(matcher *template.Matcher, service genai.Service) *Arbitrator {
	return &Arbitrator{matcher: matcher, service: service}
}

// Decide selects the generation method for a spec. The decision is made once
// per request; there are no internal retries.
//
//	no match at all          → full-ai
//	confidence ≥ 0.8         → template (zero AI calls)
//	confidence ≥ 0.6         → hybrid (one AI patch call)
//	otherwise                → full-ai
func (a *Arbitrator) Decide(spec *toon.Spec) Decision {
	match, ok := a.matcher.FindBestMatch(spec)
	return decideFromMatch(match, ok)
}

// decideFromMatch applies the threshold ladder to a match result.
func decideFromMatch(match template.Match, ok bool) Decision {
	if !ok {
		return Decision{
			Method:        MethodFullAI,
			Reason:        "no matching template found",
			EstimatedCost: costFullAI,
		}
	}

	if match.Confidence >= templateThreshold {
		return Decision{
			Method:        MethodTemplate,
			Reason:        fmt.Sprintf("high confidence template match (%.0f%%)", match.Confidence*100),
			EstimatedCost: costTemplate,
			Match:         &match,
		}
	}

	if match.Confidence >= hybridThreshold {
		return Decision{
			Method:        MethodHybrid,
			Reason:        fmt.Sprintf("medium confidence template match (%.0f%%), will customize with AI", match.Confidence*100),
			EstimatedCost: costHybrid,
			Match:         &match,
		}
	}

	return Decision{
		Method:        MethodFullAI,
		Reason:        fmt.Sprintf("low template confidence (%.0f%%), using full AI generation", match.Confidence*100),
		EstimatedCost: costFullAI,
	}
}

// defaultInstruction is used for hybrid patches when the caller supplies no
// free-text request.
const defaultInstruction = "Make it look professional and modern"

// Generate executes a decision. userPrompt is the free-text request that
// shapes the hybrid patch instruction; it may be empty. An AI-service failure
// propagates as a hard error with no retry and no fallback to a cheaper method.
func (a *Arbitrator) Generate(ctx context.Context, spec *toon.Spec, decision Decision, userPrompt string) (*Result, error) {
	switch decision.Method {
	case MethodTemplate:
		return a.generateFromTemplate(decision), nil
	case MethodHybrid:
		return a.generateHybrid(ctx, decision, userPrompt)
	case MethodFullAI:
		return a.generateFullAI(ctx, spec)
	default:
		return nil, fmt.Errorf("hybrid: unknown generation method %q", decision.Method)
	}
}

// generateFromTemplate materializes the matched template with default
// variables. Free and local; no AI involvement.
func (a *Arbitrator) generateFromTemplate(decision Decision) *Result {
	t := decision.Match.Template
	return &Result{
		Code:         template.Apply(t, nil),
		Method:       MethodTemplate,
		Cost:         costTemplate,
		TemplateUsed: t.ID,
	}
}

// generateHybrid starts from the matched template's code and issues exactly
// one AI patch call that preserves structure while customizing content.
func (a *Arbitrator) generateHybrid(ctx context.Context, decision Decision, userPrompt string) (*Result, error) {
	t := decision.Match.Template
	baseCode := template.Apply(t, nil)

	instruction := userPrompt
	if instruction == "" {
		instruction = defaultInstruction
	}

	res, err := a.service.PatchCode(ctx, baseCode, instruction)
	if err != nil {
		return nil, fmt.Errorf("hybrid: patch call: %w", err)
	}

	return &Result{
		Code:         res.Code,
		Method:       MethodHybrid,
		Cost:         res.CostUSD,
		TemplateUsed: t.ID,
		Usage:        res.Usage,
	}, nil
}

// generateFullAI generates from scratch using the spec's notation as the
// brief.
func (a *Arbitrator) generateFullAI(ctx context.Context, spec *toon.Spec) (*Result, error) {
	res, err := a.service.GenerateFromBrief(ctx, toon.EncodeSpec(spec))
	if err != nil {
		return nil, fmt.Errorf("hybrid: generation call: %w", err)
	}

	return &Result{
		Code:   res.Code,
		Method: MethodFullAI,
		Cost:   res.CostUSD,
		Usage:  res.Usage,
	}, nil
}

// Savings reports the cost delta of a method versus full AI generation.
// Purely informational; not billing authority.
type Savings struct {
	SavedCost    float64
	SavedPercent float64
}

// CalculateSavings compares a method's fixed cost estimate against the
// full-AI estimate.
func CalculateSavings(method Method) Savings {
	var actual float64
	switch method {
	case MethodTemplate:
		actual = costTemplate
	case MethodHybrid:
		actual = costHybrid
	default:
		actual = costFullAI
	}
	return Savings{
		SavedCost:    costFullAI - actual,
		SavedPercent: (costFullAI - actual) / costFullAI * 100,
	}
}
