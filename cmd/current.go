package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/displaymode/internal/output"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the mode a display is driven at",
	Args:  cobra.NoArgs,
	RunE:  runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
	currentCmd.Flags().String("device", "", "Device name (default: configured device, else the first active display)")
}

func runCurrent(cmd *cobra.Command, args []string) error {
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
	mode, err := svc.CurrentMode(device)
	if err != nil {
		return err
	}
	return output.Print(output.CurrentResult{Device: device, Mode: mode})
}
