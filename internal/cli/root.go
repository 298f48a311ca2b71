package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelrommel/progress-view/internal/config"
	"github.com/michaelrommel/progress-view/internal/errors"
	"github.com/michaelrommel/progress-view/internal/logger"
	"github.com/michaelrommel/progress-view/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile   string
	logFile   string
	debugFlag bool
)

// errInterrupted is returned when SIGINT or SIGTERM stopped a command.
var errInterrupted = stderrors.New("interrupted")

var rootCmd = &cobra.Command{
	Use:   "progressview",
	Short: "Progress bar and statistics pinned below scrolling output",
	Long: `progressview reserves the bottom rows of the terminal for a progress bar
and a statistics panel while the rows above keep scrolling like a normal
log.

Configuration is read from .progressview.yaml in the current directory or
one of its parents, then from ~/.config/progressview/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .progressview.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write diagnostics to this file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "include debug records in the log")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err the way users should see it.
func printError(w io.Writer, err error) {
	switch {
	case stderrors.Is(err, errInterrupted):
		fmt.Fprintf(w, "%s Interrupted.\n", ui.Status(ui.SymbolWarning, ui.ColorWarning))
	case isUnknownCommandError(err):
		if name := extractUnknownCommand(err); name != "" {
			fmt.Fprintf(w, "%s Unknown command '%s'\n  Run 'progressview --help' to see what's available.\n", ui.Status(ui.SymbolFail, ui.ColorError), name)
			return
		}
		fmt.Fprintf(w, "%s %v\n", ui.Status(ui.SymbolFail, ui.ColorError), err)
	default:
		var pvErr *errors.Error
		if stderrors.As(err, &pvErr) {
			fmt.Fprint(w, pvErr.Error())
			return
		}
		fmt.Fprintf(w, "%s %v\n", ui.Status(ui.SymbolFail, ui.ColorError), err)
	}
}

func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "progressview"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// loadConfig finds, loads and validates the configuration. The returned
// path is empty when the built-in defaults are used.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, path, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// openLogger returns the diagnostics logger. The dashboard owns the
// terminal, so without a log file diagnostics are discarded.
func openLogger(cfg *config.Config) (logger.Logger, func(), error) {
	path := cfg.Log.File
	if logFile != "" {
		path = logFile
	}
	debug := cfg.Log.Debug || debugFlag

	if path == "" {
		return logger.Noop(), func() {}, nil
	}

	fl, err := logger.NewFileLogger(path, debug)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file "+path,
			"Check the directory exists and is writable, or drop --log-file")
	}
	logger.SetDefault(fl)
	return fl, func() {
		logger.SetDefault(logger.NewEnvLogger(""))
		fl.Close()
	}, nil
}
