/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	maxQuestions = 50
)

type Config struct {
	category   int
	difficulty string
	endpoint   string
	output     string
	seed       int64
	timeout    time.Duration
	verbose    bool
	version    bool
}

func (c *Config) validate() error {
	switch strings.ToLower(filepath.Ext(c.output)) {
	case ".csv", ".xlsx":
	default:
		return fmt.Errorf("unsupported output format (must be .csv or .xlsx): %s", c.output)
	}

	switch c.difficulty {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("invalid difficulty (must be easy, medium or hard): %s", c.difficulty)
	}

	if c.category < 0 {
		return fmt.Errorf("invalid category id: %d", c.category)
	}

	if c.timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.timeout)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint url: %s", c.endpoint)
	}

	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("QUIZBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "quizbox",
		Short:         "A multiplayer trivia quiz for the terminal, scored from the Open Trivia Database.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return Play(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVarP(&cfg.category, "category", "c", 0, "trivia category id, 0 for any (env: QUIZBOX_CATEGORY)")
	fs.StringVarP(&cfg.difficulty, "difficulty", "d", "", "question difficulty, one of easy|medium|hard, empty for any (env: QUIZBOX_DIFFICULTY)")
	fs.StringVar(&cfg.endpoint, "endpoint", "https://opentdb.com/api.php", "trivia api endpoint (env: QUIZBOX_ENDPOINT)")
	fs.StringVarP(&cfg.output, "output", "o", "quiz_score.csv", "file to write results to, .csv or .xlsx (env: QUIZBOX_OUTPUT)")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for answer shuffling, 0 for time-based (env: QUIZBOX_SEED)")
	fs.DurationVar(&cfg.timeout, "timeout", 30*time.Second, "http timeout for the trivia api (env: QUIZBOX_TIMEOUT)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: QUIZBOX_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: QUIZBOX_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("quizbox v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
