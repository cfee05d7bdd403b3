package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith/internal/cache"
	"github.com/sitesmith/sitesmith/internal/render"
	"github.com/sitesmith/sitesmith/internal/template"
	"github.com/sitesmith/sitesmith/internal/toon"
)

// Exit codes beyond the usual 0/1.
const (
	exitCodeBadInput = 3
	exitCodeAPIError = 4
)

// exitError carries a specific process exit code up through RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "sitesmith",
		Short:         "Template-first website generation from text prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newMatchCmd(),
		newTemplatesCmd(),
		newGenerateCmd(),
		newCacheKeyCmd(),
		newStatsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}

func newEncodeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "encode <prompt>",
		Short: "Compile a text prompt into notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := toon.NewEncoder().Encode(strings.Join(args, " "))
			if asJSON {
				return writeJSON(cmd, enc)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Encoding(&enc))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of styled output")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode <notation>",
		Short: "Parse a notation string and report validity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := toon.NewDecoder().Decode(args[0])
			if asJSON {
				return writeJSON(cmd, res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.DecodeResult(&res))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of styled output")
	return cmd
}

func newMatchCmd() *cobra.Command {
	var (
		asJSON       bool
		templatesDir string
	)

	cmd := &cobra.Command{
		Use:   "match <notation>",
		Short: "Score the template catalog against a notation string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(templatesDir)
			if err != nil {
				return err
			}

			res := toon.NewDecoder().Decode(args[0])
			matches := template.NewMatcher(lib).FindMatches(&res.Spec)
			if asJSON {
				return writeJSON(cmd, matches)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Matches(matches))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of styled output")
	cmd.Flags().StringVar(&templatesDir, "templates", "", "directory of extra template YAML files")
	return cmd
}

func newTemplatesCmd() *cobra.Command {
	var (
		asJSON       bool
		templatesDir string
		tags         []string
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the template catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(templatesDir)
			if err != nil {
				return err
			}

			list := lib.All()
			if len(tags) > 0 {
				list = lib.SearchByTags(tags)
			}
			if asJSON {
				return writeJSON(cmd, list)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.TemplateList(list))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of styled output")
	cmd.Flags().StringVar(&templatesDir, "templates", "", "directory of extra template YAML files")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "filter by tags")
	return cmd
}

func newCacheKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cachekey <notation>",
		Short: "Print the cache key for a notation string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cache.Key(args[0]))
			return nil
		},
	}
}

func loadLibrary(dir string) (*template.Library, error) {
	if dir == "" {
		return template.NewLibrary(template.Builtin()), nil
	}
	lib, err := template.LoadDir(dir)
	if err != nil {
		return nil, &exitError{code: exitCodeBadInput, err: err}
	}
	return lib, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	b, err := render.JSON(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
