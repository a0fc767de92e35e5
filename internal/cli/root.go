package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gruns/gitsnitch/pkg/config"
	snitcherrors "github.com/gruns/gitsnitch/pkg/errors"
	"github.com/gruns/gitsnitch/pkg/integrations/github"
	"github.com/gruns/gitsnitch/pkg/observability"
	"github.com/gruns/gitsnitch/pkg/pipeline"
	"github.com/gruns/gitsnitch/pkg/report"
)

// rootFlags holds the command-line flags. Flags left unset do not
// override the loaded config.
type rootFlags struct {
	configPath    string
	envFile       string
	verbose       bool
	format        string
	maxRepos      int
	maxCommitters int
	apiURL        string
	timeout       time.Duration
	completion    string
}

func (f *rootFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gitsnitch/config.toml)")
	fs.StringVar(&f.envFile, "env-file", config.DefaultEnvFile, "dotenv file to read GITHUB_TOKEN from")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	fs.StringVarP(&f.format, "format", "f", report.FormatText, "output format: text, table or json")
	fs.IntVar(&f.maxRepos, "max-repos", pipeline.DefaultMaxRepos, "number of repositories to inspect")
	fs.IntVar(&f.maxCommitters, "max-committers", pipeline.DefaultMaxCommitters, "number of committers to list per repository")
	fs.StringVar(&f.apiURL, "api-url", github.DefaultBaseURL, "GitHub API base URL")
	fs.DurationVar(&f.timeout, "timeout", 0, "HTTP request timeout (0 for none)")
	fs.StringVar(&f.completion, "completion", "", "print a shell completion script (bash, zsh, fish or powershell) and exit")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(report.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("completion", cobra.FixedCompletions(completionShells, cobra.ShellCompDirectiveNoFileComp))
	cmd.MarkFlagsMutuallyExclusive("completion", "format")
}

func (f *rootFlags) validateArgs(cmd *cobra.Command, args []string) error {
	if f.completion != "" {
		return cobra.NoArgs(cmd, args)
	}
	if len(args) != 1 {
		return snitcherrors.New(snitcherrors.ErrCodeInvalidInput, "expected exactly one username or profile URL, got %d arguments", len(args))
	}
	return nil
}

// apply copies explicitly set flags over cfg.
func (f *rootFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("max-repos") {
		cfg.MaxRepos = f.maxRepos
	}
	if fs.Changed("max-committers") {
		cfg.MaxCommitters = f.maxCommitters
	}
	if fs.Changed("api-url") {
		cfg.APIURL = f.apiURL
	}
	if fs.Changed("timeout") {
		cfg.Timeout.Duration = f.timeout
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func (c *CLI) run(cmd *cobra.Command, f *rootFlags, input string) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(config.LoadOptions{Path: f.configPath, EnvFile: f.envFile})
	if err != nil {
		return err
	}
	if err := f.apply(cmd, &cfg); err != nil {
		return err
	}
	logger.Debug("loaded config", "sources", cfg.Sources, "config", cfg.String())

	username, err := github.ParseUsername(input)
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(cfg.Format)
	if err != nil {
		return err
	}
	printer := report.NewPrinter(c.Out, renderer)

	client := github.NewClient(ctx, github.Options{
		Token:   cfg.Token,
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout.Duration,
	})
	runner := pipeline.NewRunner(client, logger, pipeline.Options{
		MaxRepos:      cfg.MaxRepos,
		MaxCommitters: cfg.MaxCommitters,
	})

	spinner := newSpinnerWithContext(ctx, c.Err, "Listing repositories...")
	hooks := &logHooks{logger: logger, spinner: spinner}
	observability.SetPipelineHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	prog := newProgress(logger)
	spinner.Start()
	scanned := 0
	err = runner.Run(ctx, username, func(b report.Block) error {
		scanned++
		var perr error
		spinner.Suspend(func() { perr = printer.Print(b) })
		return perr
	})
	spinner.Stop()

	if err != nil {
		c.explain(err)
		return err
	}
	prog.done(fmt.Sprintf("Scanned %d repositories of %s, %d with committers", scanned, username, printer.Printed()))
	return nil
}

// explain prints a hint for errors the user can do something about.
func (c *CLI) explain(err error) {
	var rfe *snitcherrors.RepositoryFetchError
	if errors.As(err, &rfe) && rfe.RateLimited {
		printWarning(c.Err, "GitHub API rate limit exceeded")
		printDetail(c.Err, "Unauthenticated requests are limited to 60 per hour.")
		printDetail(c.Err, "Create a personal access token at https://github.com/settings/tokens")
		printDetail(c.Err, "and export it as %s, or put %s=<token> in a .env file.", config.EnvToken, config.EnvToken)
	}
}
