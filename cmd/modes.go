package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/displaymode/internal/logging"
	"github.com/mj1618/displaymode/internal/output"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the resolutions and refresh rates a display supports",
	Long: `List every resolution a display supports, widest first, each with its
refresh rates from highest to lowest. Modes that differ only in colour depth
are listed once.`,
	Args: cobra.NoArgs,
	RunE: runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)
	modesCmd.Flags().String("device", "", "Device name (default: configured device, else the first active display)")
}

func runModes(cmd *cobra.Command, args []string) error {
	device, _ := cmd.Flags().GetString("device")

	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	device, err = svc.ResolveDevice(deviceFlag(device))
	if err != nil {
		return err
	}
	catalog, err := svc.ListModes(device)
	if err != nil {
		return err
	}

	result := output.ModesResult{Device: device, Modes: catalog.Entries()}
	if current, err := svc.CurrentMode(device); err == nil {
		result.Current = &current
	} else {
		logging.Logger().Debug().Err(err).Str("device", device).Msg("current mode unavailable")
	}
	return output.Print(result)
}
