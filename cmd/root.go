package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/displaymode/internal/config"
	"github.com/mj1618/displaymode/internal/logging"
	"github.com/mj1618/displaymode/internal/output"
	"github.com/mj1618/displaymode/internal/platform"
	"github.com/mj1618/displaymode/internal/version"
)

// Command annotations read by the root pre-run hook.
const (
	// annotationElevate marks commands that may change the display mode and
	// so need administrator rights on Windows.
	annotationElevate = "displaymode/elevate"
	// annotationTerminal marks commands that take over the terminal; their
	// logs go to the configured file or nowhere.
	annotationTerminal = "displaymode/terminal"
)

var rootCmd = &cobra.Command{
	Use:   "displaymode",
	Short: "List and switch display resolutions and refresh rates",
	Long: `List the active displays, the resolutions and refresh rates each one
supports, and switch a display to a new mode.

Run without a subcommand to open the interactive picker.`,
	Annotations: map[string]string{
		annotationElevate:  "true",
		annotationTerminal: "true",
	},
	SilenceUsage: true,
	RunE:         runUI,
}

var (
	// cfg is the loaded configuration, set by the pre-run hook.
	cfg       *config.Config
	logCloser io.Closer
)

func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default from config, else yaml)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/displaymode/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("backend", "", "Display backend: auto, windows, x11, macos, simulated")
	rootCmd.PersistentFlags().Bool("no-elevate", false, "Do not relaunch with administrator rights")
	rootCmd.PersistentPreRunE = preRun
}

func preRun(cmd *cobra.Command, args []string) error {
	flags := rootCmd.PersistentFlags()

	path, _ := flags.GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		c.Log.Level = level
	}
	if backend, _ := flags.GetString("backend"); backend != "" {
		c.Backend = backend
	}
	if err := c.Validate(); err != nil {
		return err
	}

	format, _ := flags.GetString("format")
	if format == "" {
		format = c.Format
	}
	if format == "" {
		format = string(output.FormatYAML)
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	output.OutputFormat = f
	output.PrettyOutput, _ = flags.GetBool("pretty")

	closer, err := logging.Init(c.Log, cmd.Annotations[annotationTerminal] == "true")
	if err != nil {
		return err
	}
	logCloser = closer
	cfg = c

	noElevate, _ := flags.GetBool("no-elevate")
	if needsElevation(cmd) && !noElevate && c.ShouldElevate() {
		requestElevation(c.Backend)
	}
	return nil
}

// needsElevation reports whether cmd may change the display mode. serve on
// stdio is excluded: the relaunched copy gets a new console and the MCP
// client would lose its pipe.
func needsElevation(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationElevate] != "true" {
		return false
	}
	if t := cmd.Flags().Lookup("transport"); t != nil && t.Value.String() == "stdio" {
		return false
	}
	return true
}

// exit is os.Exit, swapped out by tests.
var exit = os.Exit

// requestElevation relaunches the process elevated when the native backend
// asks for it. The current process exits once the elevated copy is started.
func requestElevation(backend string) {
	if platform.RequestElevationFunc == nil {
		return
	}
	if backend != "" && backend != platform.BackendAuto && backend != "windows" {
		return
	}
	relaunched, err := platform.RequestElevationFunc(os.Args[1:])
	if err != nil {
		logging.Logger().Warn().Err(err).Msg("could not relaunch with administrator rights; mode changes may be refused")
		return
	}
	if relaunched {
		logging.Logger().Info().Msg("continuing in elevated process")
		exit(0)
	}
}

// currentConfig returns the loaded configuration, or the defaults when the
// pre-run hook has not run.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}
