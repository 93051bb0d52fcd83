package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/showroom/internal/config"
	"github.com/Makepad-fr/showroom/internal/logging"
	"github.com/Makepad-fr/showroom/internal/model"
	"github.com/Makepad-fr/showroom/internal/store/catalog"
	"github.com/Makepad-fr/showroom/internal/tui"
	"github.com/Makepad-fr/showroom/internal/ui"
	"github.com/Makepad-fr/showroom/internal/version"
)

// Options are the persistent flags shared by every subcommand. Empty values
// fall back to the config file.
type Options struct {
	Data       string
	Theme      string
	LogLevel   string
	ConfigPath string

	// runScreen starts the interactive screen; tests replace it.
	runScreen func(cars []model.Car, theme ui.Theme) error
}

// Execute runs the command tree and returns a process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(&Options{runScreen: tui.Run})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		ui.Fail(stderr, "Error: "+err.Error())
		return 1
	}
	return 0
}

// NewRootCmd wires the showroom command tree around opts.
func NewRootCmd(opts *Options) *cobra.Command {
	if opts.runScreen == nil {
		opts.runScreen = tui.Run
	}
	root := &cobra.Command{
		Use:   "showroom",
		Short: "Browse the car showroom in your terminal",
		Long: `Lists the showroom cars. Expand a car to flip through its detail photos.

Without a subcommand the interactive screen starts.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version.Version, version.Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cars, err := catalog.Load(opts.Data)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			theme, err := ui.ThemeByName(opts.Theme)
			if err != nil {
				return err
			}
			defer logging.Sync()
			return opts.runScreen(cars, theme)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	f := root.PersistentFlags()
	f.StringVar(&opts.Data, "data", "", "catalog file (.yaml, .yml or .json); defaults to the built-in catalog")
	f.StringVar(&opts.Theme, "theme", "", "color theme: auto, light or dark")
	f.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); logs go to stderr")
	f.StringVar(&opts.ConfigPath, "config", "", "preferences file (default $XDG_CONFIG_HOME/showroom/config.yaml)")

	root.AddCommand(newListCmd(opts), newShowCmd(opts), newValidateCmd(opts), newVersionCmd())
	return root
}

// resolve fills unset flags from the config file and sets up logging and
// the theme.
func (o *Options) resolve() error {
	var (
		cfg config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.Load(o.ConfigPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	if o.Data == "" {
		o.Data = cfg.Data
	}
	if o.Theme == "" {
		o.Theme = cfg.Theme
	}
	level := o.LogLevel
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	if err := ui.SetTheme(o.Theme); err != nil {
		return err
	}
	logging.Debug("options resolved",
		zap.String("data", o.Data),
		zap.String("theme", o.Theme),
	)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "showroom %s (commit: %s)\n", version.Version, version.Commit)
		},
	}
}
