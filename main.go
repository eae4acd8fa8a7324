package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/logutil"
	"github.com/takaishi/minigrep/runner"
)

// Version information
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// appError marks failures that happen after the arguments were accepted
type appError struct {
	err error
}

func (e *appError) Error() string { return e.err.Error() }
func (e *appError) Unwrap() error { return e.err }

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

// execute runs the command line and returns the process exit status
func execute(args []string, stdout, stderr io.Writer, lookupEnv config.LookupEnvFunc) int {
	cmd := newRootCmd(stdout, stderr, lookupEnv)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var appErr *appError
	if errors.As(err, &appErr) {
		fmt.Fprintf(stderr, "Application error: %s\n", singleLine(appErr.err.Error()))
		return 1
	}

	// Usage errors: bad flags or missing positionals
	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return 2
}

// singleLine folds a multi-line message onto one line
func singleLine(msg string) string {
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}

func newRootCmd(stdout, stderr io.Writer, lookupEnv config.LookupEnvFunc) *cobra.Command {
	var (
		ignoreCase bool
		highlight  bool
		verbose    bool
		cfgFile    string
	)

	cmd := &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep prints every line of <filename> containing <query>, in file order.

Searching is case-sensitive unless -i/--ignore-case is given or the
CASE_INSENSITIVE environment variable is set (to any value).`,
		Version: fmt.Sprintf("%s (commit %s)", Version, GitCommit),
		Args: func(cmd *cobra.Command, args []string) error {
			return config.CheckArgs(args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(args, ignoreCase, lookupEnv)
			if err != nil {
				return err
			}
			cfg.Highlight = highlight
			cfg.Verbose = verbose

			if cfg.Highlight {
				path, required := cfgFile, true
				if path == "" {
					path, required = config.DefaultSettingsPath(), false
				}
				settings, err := config.LoadSettings(path, required)
				if err != nil {
					return &appError{err: err}
				}
				cfg.Settings = settings
			}

			logger, err := logutil.New(cfg.Verbose)
			if err != nil {
				return &appError{err: fmt.Errorf("failed to create logger: %w", err)}
			}
			defer logger.Sync()

			if err := runner.New(cmd.OutOrStdout(), logger).Run(cfg); err != nil {
				return &appError{err: err}
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&ignoreCase, "ignore-case", "i", false, "Search as case insensitive")
	flags.BoolVar(&highlight, "highlight", false, "Highlight matches with ANSI colours")
	flags.BoolVar(&verbose, "verbose", false, "Enable debug logging on stderr")
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.SettingsFileName+")")

	return cmd
}
