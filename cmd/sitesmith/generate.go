package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith/internal/cache"
	"github.com/sitesmith/sitesmith/internal/genai"
	"github.com/sitesmith/sitesmith/internal/hybrid"
	"github.com/sitesmith/sitesmith/internal/render"
	"github.com/sitesmith/sitesmith/internal/template"
	"github.com/sitesmith/sitesmith/internal/toon"
)

// minEncodeConfidence is the floor below which a prompt is too vague to
// generate from; the caller should rephrase rather than pay for a bad guess.
const minEncodeConfidence = 0.5

type generateFlags struct {
	provider     string
	model        string
	templatesDir string
	out          string
	redisURL     string
	skipCache    bool
	dryRun       bool
	debug        bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate site code from a text prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), f, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&f.provider, "provider", "anthropic", "AI provider (anthropic, openai, google)")
	cmd.Flags().StringVar(&f.model, "model", "", "model override (empty uses the provider default)")
	cmd.Flags().StringVar(&f.templatesDir, "templates", "", "directory of extra template YAML files")
	cmd.Flags().StringVar(&f.out, "out", "", "write generated code to a file instead of stdout")
	cmd.Flags().StringVar(&f.redisURL, "redis", os.Getenv("REDIS_URL"), "redis URL for the shared cache (empty uses in-process memory)")
	cmd.Flags().BoolVar(&f.skipCache, "skip-cache", false, "bypass the cache for this request")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "encode and decide only, no AI calls")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "print cache and provider debug info to stderr")

	return cmd
}

// runGenerate is the full pipeline: prompt to notation, notation to template
// match, arbitration, then cached generation.
func runGenerate(ctx context.Context, f generateFlags, prompt string, w io.Writer) error {
	enc := toon.NewEncoder().Encode(prompt)
	fmt.Fprintln(w, render.Encoding(&enc))

	if enc.Confidence < minEncodeConfidence {
		return &exitError{
			code: exitCodeBadInput,
			err:  fmt.Errorf("prompt too vague (confidence %.2f), please describe the site type and sections", enc.Confidence),
		}
	}

	lib, err := loadLibrary(f.templatesDir)
	if err != nil {
		return err
	}
	matcher := template.NewMatcher(lib)

	service, err := genai.NewService(f.provider, f.model)
	if err != nil {
		return &exitError{code: exitCodeBadInput, err: err}
	}

	arb := hybrid.NewArbitrator(matcher, service)
	decision := arb.Decide(&enc.Spec)
	fmt.Fprintln(w, render.Decision(decision))

	if f.dryRun {
		return nil
	}

	manager, err := newCacheManager(f)
	if err != nil {
		return &exitError{code: exitCodeBadInput, err: err}
	}

	var result *hybrid.Result
	code, cached, err := manager.GetOrGenerate(ctx, enc.Notation, func(ctx context.Context) (string, error) {
		result, err = arb.Generate(ctx, &enc.Spec, decision, prompt)
		if err != nil {
			return "", err
		}
		return result.Code, nil
	}, cache.Options{SkipCache: f.skipCache})
	if err != nil {
		return &exitError{code: exitCodeAPIError, err: err}
	}

	if result == nil {
		// Served from cache; synthesize a zero-cost result for reporting.
		result = &hybrid.Result{Code: code, Method: decision.Method}
	}
	fmt.Fprintln(w, render.GenerationResult(result, cached))

	if f.out != "" {
		if err := os.WriteFile(f.out, []byte(code), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(w, "  wrote %s\n", f.out)
		return nil
	}

	fmt.Fprintln(w, code)
	return nil
}

func newCacheManager(f generateFlags) (*cache.Manager, error) {
	var store cache.Store = cache.NewMemoryStore()
	if f.redisURL != "" {
		rs, err := cache.NewRedisStoreURL(f.redisURL)
		if err != nil {
			return nil, err
		}
		store = rs
	}
	m := cache.NewManager(store)
	m.Debug = f.debug
	return m, nil
}
