package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/michaelrommel/progress-view/internal/config"
	"github.com/michaelrommel/progress-view/internal/errors"
	"github.com/michaelrommel/progress-view/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// config command flags
var (
	configInitForce  bool
	configInitGlobal bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect the dashboard configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default dashboard",
	Long: `Write the default dashboard configuration to .progressview.yaml in the
current directory, or to ~/.config/progressview/config.yaml with --global.

Examples:
  progressview config init
  progressview config init --global
  progressview config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configInitPath(configInitGlobal)
		if err != nil {
			return err
		}
		confirm := confirmOverwrite
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			confirm = nil
		}
		return initConfig(cmd.OutOrStdout(), path, configInitForce, confirm)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout())
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config")
	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "write the per-user config instead")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func configInitPath(global bool) (string, error) {
	if !global {
		return config.ConfigFileName, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set $HOME or write a project config without --global")
	}
	return filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile), nil
}

// initConfig writes the default config to path. An existing file is only
// replaced with force, or when confirm says so.
func initConfig(w io.Writer, path string, force bool, confirm func(path string) (bool, error)) error {
	if _, err := os.Stat(path); err == nil && !force {
		if confirm == nil {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Use --force to overwrite")
		}
		ok, err := confirm(path)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Keeping the existing config.")
			return nil
		}
		force = true
	}

	if err := config.Save(path, config.DefaultConfig(), force); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Wrote %s\n", ui.Status(ui.SymbolSuccess, ui.ColorSuccess), path)
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}
	return overwrite, nil
}

// showConfig prints the config the demo would run with.
func showConfig(w io.Writer) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Fprintln(w, "# source: built-in defaults")
	} else {
		fmt.Fprintf(w, "# source: %s\n", path)
	}
	_, err = w.Write(data)
	return err
}
