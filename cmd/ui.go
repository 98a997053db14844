package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/displaymode/internal/shell"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Pick and apply a mode interactively",
	Long: `Open the interactive picker: choose a display, a resolution and a refresh
rate, then press a to apply.

Keys: tab/shift+tab switch pane, up/down or k/j move, enter select,
a apply, r refresh, q quit.`,
	Args: cobra.NoArgs,
	Annotations: map[string]string{
		annotationElevate:  "true",
		annotationTerminal: "true",
	},
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().Bool("dry-run", false, "Ask the OS whether modes would work without switching")
}

func runUI(cmd *cobra.Command, args []string) error {
	dryRun := false
	if cmd.Flags().Lookup("dry-run") != nil {
		dryRun, _ = cmd.Flags().GetBool("dry-run")
	}

	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	return shell.Run(svc, shell.Options{DryRun: dryRun})
}
