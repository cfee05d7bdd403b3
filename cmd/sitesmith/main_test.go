package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sitesmith/sitesmith/internal/genai"
)

// scriptedService returns canned results and records calls.
type scriptedService struct {
	generateCalls int
	patchCalls    int
	result        *genai.Result
	err           error
}

func (s *scriptedService) GenerateFromBrief(ctx context.Context, brief string) (*genai.Result, error) {
	s.generateCalls++
	return s.result, s.err
}

func (s *scriptedService) PatchCode(ctx context.Context, currentCode, instruction string) (*genai.Result, error) {
	s.patchCalls++
	return s.result, s.err
}

func injectService(t *testing.T, svc genai.Service) {
	t.Helper()
	orig := genai.NewService
	genai.NewService = func(providerName, model string) (genai.Service, error) {
		return svc, nil
	}
	t.Cleanup(func() { genai.NewService = orig })
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func TestGenerate_TemplatePath_NoAICalls(t *testing.T) {
	svc := &scriptedService{}
	injectService(t, svc)

	var out bytes.Buffer
	err := runGenerate(context.Background(), generateFlags{provider: "anthropic"},
		"minimal landing page for a SaaS product", &out)
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	if svc.generateCalls+svc.patchCalls != 0 {
		t.Errorf("template path made %d AI calls", svc.generateCalls+svc.patchCalls)
	}
	for _, want := range []string{"lp{st:min|s:[h{ly:ctr}|f{ly:gr3}|cta]}", "template", "Welcome to Your Site"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestGenerate_BadTemplatesDir_ExitsThree(t *testing.T) {
	injectService(t, &scriptedService{})

	var out bytes.Buffer
	f := generateFlags{provider: "anthropic", templatesDir: filepath.Join(t.TempDir(), "missing")}
	err := runGenerate(context.Background(), f, "minimal landing page for a SaaS product", &out)
	if code := exitCode(err); code != exitCodeBadInput {
		t.Fatalf("expected exit %d, got %d: %v", exitCodeBadInput, code, err)
	}
}

func TestGenerate_FullAIPath(t *testing.T) {
	svc := &scriptedService{result: &genai.Result{
		Code:    "export default function Page() { return null }",
		Model:   "mock",
		CostUSD: 0.05,
	}}
	injectService(t, svc)

	var out bytes.Buffer
	err := runGenerate(context.Background(), generateFlags{provider: "anthropic"},
		"tech dashboard with stats and a contact form", &out)
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	if svc.generateCalls != 1 {
		t.Errorf("generate calls = %d, want 1", svc.generateCalls)
	}
	if !strings.Contains(out.String(), "full-ai") {
		t.Errorf("output missing full-ai method:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "export default function Page()") {
		t.Errorf("output missing generated code:\n%s", out.String())
	}
}

func TestGenerate_ServiceError_ExitsFour(t *testing.T) {
	injectService(t, &scriptedService{err: fmt.Errorf("simulated API error")})

	var out bytes.Buffer
	err := runGenerate(context.Background(), generateFlags{provider: "anthropic"},
		"tech dashboard with stats and a contact form", &out)
	if code := exitCode(err); code != exitCodeAPIError {
		t.Fatalf("expected exit %d, got %d: %v", exitCodeAPIError, code, err)
	}
}

func TestGenerate_DryRunSkipsGeneration(t *testing.T) {
	svc := &scriptedService{}
	injectService(t, svc)

	var out bytes.Buffer
	err := runGenerate(context.Background(), generateFlags{provider: "anthropic", dryRun: true},
		"minimal landing page for a SaaS product", &out)
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	if svc.generateCalls+svc.patchCalls != 0 {
		t.Errorf("dry run made %d AI calls", svc.generateCalls+svc.patchCalls)
	}
	if strings.Contains(out.String(), "Welcome to Your Site") {
		t.Error("dry run should not produce code")
	}
}

func TestGenerate_OutFlagWritesFile(t *testing.T) {
	injectService(t, &scriptedService{})

	outPath := filepath.Join(t.TempDir(), "page.tsx")
	var out bytes.Buffer
	err := runGenerate(context.Background(), generateFlags{provider: "anthropic", out: outPath},
		"minimal landing page for a SaaS product", &out)
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if !strings.Contains(string(b), "Welcome to Your Site") {
		t.Errorf("file missing template code:\n%s", b)
	}
	if strings.Contains(out.String(), "Welcome to Your Site") {
		t.Error("code should go to the file, not stdout")
	}
}

func TestCacheKeyCommand(t *testing.T) {
	cmd := newCacheKeyCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"lp{s:[h,f,ct]}"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "toon:a9ab625c2cd7b850" {
		t.Errorf("key = %q, want toon:a9ab625c2cd7b850", got)
	}
}
