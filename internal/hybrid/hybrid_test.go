package hybrid

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sitesmith/sitesmith/internal/genai"
	"github.com/sitesmith/sitesmith/internal/template"
	"github.com/sitesmith/sitesmith/internal/toon"
)

// mockService records calls and returns canned results.
type mockService struct {
	generateCalls   int
	patchCalls      int
	lastBrief       string
	lastCode        string
	lastInstruction string
	generateResult  *genai.Result
	patchResult     *genai.Result
	err             error
}

func (m *mockService) GenerateFromBrief(ctx context.Context, brief string) (*genai.Result, error) {
	m.generateCalls++
	m.lastBrief = brief
	if m.err != nil {
		return nil, m.err
	}
	return m.generateResult, nil
}

func (m *mockService) PatchCode(ctx context.Context, currentCode, instruction string) (*genai.Result, error) {
	m.patchCalls++
	m.lastCode = currentCode
	m.lastInstruction = instruction
	if m.err != nil {
		return nil, m.err
	}
	return m.patchResult, nil
}

func TestDecideThresholds(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		matched    bool
		wantMethod Method
		wantCost   float64
	}{
		{"high confidence", 0.9, true, MethodTemplate, 0.0},
		{"exactly at template threshold", 0.8, true, MethodTemplate, 0.0},
		{"just below template threshold", 0.79999, true, MethodHybrid, 0.02},
		{"mid range", 0.7, true, MethodHybrid, 0.02},
		{"exactly at hybrid threshold", 0.6, true, MethodHybrid, 0.02},
		{"just below hybrid threshold", 0.59999, true, MethodFullAI, 0.08},
		{"low confidence", 0.4, true, MethodFullAI, 0.08},
		{"no match", 0.0, false, MethodFullAI, 0.08},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decideFromMatch(template.Match{Confidence: tt.confidence}, tt.matched)
			if d.Method != tt.wantMethod {
				t.Errorf("method = %q, want %q", d.Method, tt.wantMethod)
			}
			if d.EstimatedCost != tt.wantCost {
				t.Errorf("estimated cost = %v, want %v", d.EstimatedCost, tt.wantCost)
			}
			if tt.matched && tt.confidence >= hybridThreshold && d.Match == nil {
				t.Error("expected decision to carry the match")
			}
		})
	}
}

func TestDecideExactMatchUsesTemplate(t *testing.T) {
	a := NewArbitrator(template.NewMatcher(template.NewLibrary(template.Builtin())), &mockService{})

	spec := &toon.Spec{
		SiteType: toon.SiteLanding,
		Style:    toon.StyleMinimalist,
		Sections: []toon.Section{
			{Type: toon.CompHero, Layout: "ctr"},
			{Type: toon.CompFeatures, Layout: "gr3"},
			{Type: toon.CompContact, Layout: "ctr"},
		},
	}

	d := a.Decide(spec)
	if d.Method != MethodTemplate {
		t.Fatalf("method = %q, want %q (reason: %s)", d.Method, MethodTemplate, d.Reason)
	}
	if d.Match == nil || d.Match.Template.ID != "minimal-landing-1" {
		t.Errorf("expected minimal-landing-1 match, got %+v", d.Match)
	}
}

func TestDecideNoMatch(t *testing.T) {
	a := NewArbitrator(template.NewMatcher(template.NewLibrary(nil)), &mockService{})

	d := a.Decide(&toon.Spec{SiteType: toon.SiteLanding})
	if d.Method != MethodFullAI {
		t.Fatalf("method = %q, want %q", d.Method, MethodFullAI)
	}
	if d.Reason != "no matching template found" {
		t.Errorf("reason = %q", d.Reason)
	}
}

func TestGenerateTemplate(t *testing.T) {
	svc := &mockService{}
	a := NewArbitrator(template.NewMatcher(template.NewLibrary(template.Builtin())), svc)

	tmpl, ok := template.NewLibrary(template.Builtin()).ByID("minimal-landing-1")
	if !ok {
		t.Fatal("builtin template missing")
	}
	decision := Decision{Method: MethodTemplate, Match: &template.Match{Template: tmpl, Confidence: 0.9}}

	res, err := a.Generate(context.Background(), &toon.Spec{}, decision, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Method != MethodTemplate {
		t.Errorf("method = %q", res.Method)
	}
	if res.Cost != 0 {
		t.Errorf("cost = %v, want 0", res.Cost)
	}
	if res.TemplateUsed != "minimal-landing-1" {
		t.Errorf("template used = %q", res.TemplateUsed)
	}
	if !strings.Contains(res.Code, "Welcome to Your Site") {
		t.Error("expected default title substituted")
	}
	if strings.Contains(res.Code, "{{") {
		t.Error("unresolved placeholders in template output")
	}
	if svc.generateCalls+svc.patchCalls != 0 {
		t.Errorf("template generation made %d AI calls", svc.generateCalls+svc.patchCalls)
	}
}

func TestGenerateHybrid(t *testing.T) {
	svc := &mockService{
		patchResult: &genai.Result{
			Code:    "patched code",
			CostUSD: 0.0137,
			Usage:   genai.Usage{InputTokens: 900, OutputTokens: 400},
		},
	}
	a := NewArbitrator(template.NewMatcher(template.NewLibrary(template.Builtin())), svc)

	tmpl, _ := template.NewLibrary(template.Builtin()).ByID("minimal-landing-1")
	decision := Decision{Method: MethodHybrid, Match: &template.Match{Template: tmpl, Confidence: 0.7}}

	res, err := a.Generate(context.Background(), &toon.Spec{}, decision, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if svc.patchCalls != 1 {
		t.Fatalf("patch calls = %d, want 1", svc.patchCalls)
	}
	if svc.lastInstruction != "Make it look professional and modern" {
		t.Errorf("instruction = %q, want default", svc.lastInstruction)
	}
	if !strings.Contains(svc.lastCode, "Welcome to Your Site") {
		t.Error("patch should start from the applied template code")
	}
	if res.Code != "patched code" {
		t.Errorf("code = %q", res.Code)
	}
	if res.Cost != 0.0137 {
		t.Errorf("cost = %v, want reported 0.0137", res.Cost)
	}
	if res.TemplateUsed != "minimal-landing-1" {
		t.Errorf("template used = %q", res.TemplateUsed)
	}
}

func TestGenerateHybridCustomInstruction(t *testing.T) {
	svc := &mockService{patchResult: &genai.Result{Code: "ok"}}
	a := NewArbitrator(template.NewMatcher(template.NewLibrary(template.Builtin())), svc)

	tmpl, _ := template.NewLibrary(template.Builtin()).ByID("minimal-landing-1")
	decision := Decision{Method: MethodHybrid, Match: &template.Match{Template: tmpl}}

	if _, err := a.Generate(context.Background(), &toon.Spec{}, decision, "use a dark palette"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if svc.lastInstruction != "use a dark palette" {
		t.Errorf("instruction = %q", svc.lastInstruction)
	}
}

func TestGenerateFullAI(t *testing.T) {
	svc := &mockService{
		generateResult: &genai.Result{
			Code:    "export default function Page() {}",
			CostUSD: 0.0612,
		},
	}
	a := NewArbitrator(template.NewMatcher(template.NewLibrary(nil)), svc)

	spec := &toon.Spec{
		SiteType: toon.SiteDashboard,
		Style:    toon.StyleTech,
		Sections: []toon.Section{{Type: toon.CompHero}, {Type: toon.CompStats}},
	}

	res, err := a.Generate(context.Background(), spec, Decision{Method: MethodFullAI}, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if svc.generateCalls != 1 {
		t.Fatalf("generate calls = %d, want 1", svc.generateCalls)
	}
	if svc.lastBrief != toon.EncodeSpec(spec) {
		t.Errorf("brief = %q, want notation %q", svc.lastBrief, toon.EncodeSpec(spec))
	}
	if res.Cost != 0.0612 {
		t.Errorf("cost = %v, want reported 0.0612", res.Cost)
	}
	if res.TemplateUsed != "" {
		t.Errorf("template used = %q, want empty", res.TemplateUsed)
	}
}

func TestGenerateServiceError(t *testing.T) {
	wantErr := errors.New("rate limited")
	svc := &mockService{err: wantErr}
	a := NewArbitrator(template.NewMatcher(template.NewLibrary(template.Builtin())), svc)

	tmpl, _ := template.NewLibrary(template.Builtin()).ByID("minimal-landing-1")

	_, err := a.Generate(context.Background(), &toon.Spec{}, Decision{Method: MethodHybrid, Match: &template.Match{Template: tmpl}}, "")
	if !errors.Is(err, wantErr) {
		t.Errorf("hybrid error = %v, want wrapped %v", err, wantErr)
	}

	_, err = a.Generate(context.Background(), &toon.Spec{SiteType: toon.SiteLanding}, Decision{Method: MethodFullAI}, "")
	if !errors.Is(err, wantErr) {
		t.Errorf("full-ai error = %v, want wrapped %v", err, wantErr)
	}
}

func TestGenerateUnknownMethod(t *testing.T) {
	a := NewArbitrator(template.NewMatcher(template.NewLibrary(nil)), &mockService{})
	if _, err := a.Generate(context.Background(), &toon.Spec{}, Decision{Method: "telepathy"}, ""); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestCalculateSavings(t *testing.T) {
	tests := []struct {
		method      Method
		wantSaved   float64
		wantPercent float64
	}{
		{MethodTemplate, 0.08, 100},
		{MethodHybrid, 0.06, 75},
		{MethodFullAI, 0, 0},
	}
	for _, tt := range tests {
		s := CalculateSavings(tt.method)
		if math.Abs(s.SavedCost-tt.wantSaved) > 1e-9 {
			t.Errorf("%s: saved = %v, want %v", tt.method, s.SavedCost, tt.wantSaved)
		}
		if math.Abs(s.SavedPercent-tt.wantPercent) > 1e-9 {
			t.Errorf("%s: percent = %v, want %v", tt.method, s.SavedPercent, tt.wantPercent)
		}
	}
}
