package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/michaelrommel/progress-view/internal/config"
	"github.com/michaelrommel/progress-view/internal/demo"
	"github.com/michaelrommel/progress-view/internal/errors"
	"github.com/michaelrommel/progress-view/internal/logger"
	"github.com/michaelrommel/progress-view/pkg/progressview"
	"github.com/michaelrommel/progress-view/pkg/termio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// demo command flags
var (
	demoPending    bool
	demoPercentage bool
	demoPreserve   bool
	demoKeep       bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a simulated job under the dashboard",
	Long: `Run a simulated job: log lines scroll above the dashboard while the
progress bar advances and the statistics panel shows counters, rates and
queue depths.

When the run ends you are asked whether to keep the output on screen.
Keeping it also prints a chart of the simulated rates.

Examples:
  progressview demo
  progressview demo --pending
  progressview demo --percentage --preserve=false
  progressview demo --keep`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		applyDemoFlags(cmd.Flags(), cfg)

		log, closeLog, err := openLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		console := termio.NewConsole(os.Stdout, termio.WithConsoleLogger(log))
		interactive := console.IsTerminal() && term.IsTerminal(int(os.Stdin.Fd()))

		ctx, stop := notifyContext(context.Background())
		defer stop()

		return runDemo(ctx, demoEnv{
			term:    console,
			out:     cmd.OutOrStdout(),
			log:     log,
			pending: demoPending,
			keep:    keepDecider(cmd.Flags(), interactive),
		}, cfg)
	},
}

func init() {
	demoCmd.Flags().BoolVar(&demoPending, "pending", false, "start with an unknown maximum and animate until it is known")
	demoCmd.Flags().BoolVar(&demoPercentage, "percentage", false, "run the bar in PERCENTAGE mode")
	demoCmd.Flags().BoolVar(&demoPreserve, "preserve", true, "draw on the alternate screen and restore the shell afterwards")
	demoCmd.Flags().BoolVar(&demoKeep, "keep", false, "keep the output on screen without asking")

	rootCmd.AddCommand(demoCmd)
}

// demoEnv carries what runDemo needs from the outside world.
type demoEnv struct {
	term    termio.Terminal
	out     io.Writer
	log     logger.Logger
	pending bool
	keep    func() (bool, error)
}

// applyDemoFlags folds explicitly set flags into cfg.
func applyDemoFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if demoPercentage {
		cfg.Progress.Type = progressview.Percentage.String()
	}
	if flags.Changed("preserve") {
		cfg.PreservePreviousScreen = demoPreserve
	}
}

// keepDecider asks the user unless --keep was given or there is nobody to ask.
func keepDecider(flags *pflag.FlagSet, interactive bool) func() (bool, error) {
	if flags.Changed("keep") || !interactive {
		keep := demoKeep
		return func() (bool, error) { return keep, nil }
	}
	return promptKeep
}

func promptKeep() (bool, error) {
	var keep bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Keep this output on screen?").
				Affirmative("Keep").
				Negative("Restore").
				Value(&keep),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrTerminal,
			"Failed to get user input",
			"Pass --keep or --keep=false to skip the question")
	}
	return keep, nil
}

// runDemo initializes the dashboard, runs the simulation and tears the
// dashboard down again on every path.
func runDemo(ctx context.Context, env demoEnv, cfg *config.Config) error {
	dash := progressview.New(env.term, progressview.WithLogger(env.log))
	if err := dash.Init(cfg.ToDashboard()); err != nil {
		return err
	}

	sim := demo.New(cfg, demo.WithPending(env.pending), demo.WithLogger(env.log))
	res, err := sim.Run(ctx, dash)
	if err != nil {
		dash.Reset(false)
		if ctx.Err() != nil {
			env.log.Info("demo interrupted after %d ticks", res.Ticks)
			return errInterrupted
		}
		return err
	}

	keep, err := env.keep()
	if err != nil {
		env.log.Warn("keep prompt failed: %v", err)
		keep = false
	}
	dash.Reset(keep)

	if keep {
		fmt.Fprint(env.out, demo.Summary(res, env.term.Size().Columns))
	}
	return nil
}
