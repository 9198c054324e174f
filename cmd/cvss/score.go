package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cvsscalc/cvss/pkg/config"
	"github.com/cvsscalc/cvss/pkg/scoring"
	"github.com/cvsscalc/cvss/pkg/surface"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath     string
		outputFmt      string
		scopeWeighting string
		strict         bool
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   "cvss <cvss_vector>",
		Short: "Compute the CVSS v3.1 base score of a vector",
		Long: `cvss parses a CVSS v3.1 vector string, computes its base score and
prints the score with its qualitative severity rating, e.g.

  cvss CVSS:3.1/AV:A/AC:H/PR:L/UI:N/S:C/C:H/I:L/A:N
  6.4 which is Medium`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := scoreOpts{
				vector:     args[0],
				configPath: configPath,
			}
			// Flags override the config file only when given explicitly.
			f := cmd.Flags()
			if f.Changed("output") {
				opts.outputFmt = &outputFmt
			}
			if f.Changed("scope-weighting") {
				opts.scopeWeighting = &scopeWeighting
			}
			if f.Changed("strict") {
				opts.strict = &strict
			}
			if f.Changed("verbose") {
				opts.verbose = &verbose
			}
			return runScore(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: .cvss/config.yaml, searched upwards)")
	cmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text or json")
	cmd.Flags().StringVar(&scopeWeighting, "scope-weighting", "impact", "Scope-changed multiplier target: impact or total")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject vectors with fields after the base metrics")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show per-metric weights and sub-scores")

	return cmd
}

// scoreOpts carries the vector plus flag overrides; nil means "use config".
type scoreOpts struct {
	vector         string
	configPath     string
	outputFmt      *string
	scopeWeighting *string
	strict         *bool
	verbose        *bool
}

func runScore(stdout, stderr io.Writer, opts scoreOpts) error {
	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.outputFmt != nil {
		cfg.Output.Format = *opts.outputFmt
	}
	if opts.scopeWeighting != nil {
		cfg.Scoring.ScopeWeighting = *opts.scopeWeighting
	}
	if opts.strict != nil {
		cfg.Scoring.Strict = *opts.strict
	}
	if opts.verbose != nil {
		cfg.Output.Verbose = *opts.verbose
	}
	if cfg.Output.Verbose && cfgPath != "" {
		fmt.Fprintf(stderr, "Using config: %s\n", cfgPath)
	}

	weighting, err := scoring.ParseScopeWeighting(cfg.Scoring.ScopeWeighting)
	if err != nil {
		return err
	}
	renderer, err := surface.ForFormat(cfg.Output.Format, cfg.Output.Verbose)
	if err != nil {
		return err
	}

	engine := scoring.NewEngine(scoring.Config{
		Strict:         cfg.Scoring.Strict,
		ScopeWeighting: weighting,
	})

	result, err := engine.Score(opts.vector)
	if err != nil {
		return err
	}

	if err := renderer.Render(stdout, result); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// loadConfig loads the explicit config file, or the one discovered from the
// working directory, falling back to defaults. It returns the path used, or
// "" for defaults.
func loadConfig(explicit string) (*config.Config, string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, "", fmt.Errorf("config file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	path := config.Resolve(explicit, wd)
	if path == "" {
		return config.DefaultConfig(), "", nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
