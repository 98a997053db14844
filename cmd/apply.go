package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/displaymode/internal/display"
	"github.com/mj1618/displaymode/internal/output"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Switch a display to a resolution and refresh rate",
	Long: `Switch a display to a new mode and persist it. The mode must be one the
display reports (see "displaymode modes"); without --refresh the highest
rate for the resolution is used.

Examples:
  displaymode apply --width 1920 --height 1080
  displaymode apply --width 2560 --height 1440 --refresh 144 --device '\\.\DISPLAY2'
  displaymode apply --width 1280 --height 720 --dry-run`,
	Args: cobra.NoArgs,
	Annotations: map[string]string{
		annotationElevate: "true",
	},
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().Int("width", 0, "Horizontal resolution in pixels")
	applyCmd.Flags().Int("height", 0, "Vertical resolution in pixels")
	applyCmd.Flags().Int("refresh", 0, "Refresh rate in Hz (default: highest for the resolution)")
	applyCmd.Flags().String("device", "", "Device name (default: configured device, else the first active display)")
	applyCmd.Flags().Bool("dry-run", false, "Ask the OS whether the mode would work without switching")
	applyCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	applyCmd.MarkFlagRequired("width")
	applyCmd.MarkFlagRequired("height")
}

func runApply(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	refresh, _ := cmd.Flags().GetInt("refresh")
	device, _ := cmd.Flags().GetString("device")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")

	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	device, err = svc.ResolveDevice(deviceFlag(device))
	if err != nil {
		return err
	}
	mode, err := svc.ResolveMode(device, width, height, refresh)
	if err != nil {
		return err
	}

	if !dryRun && !yes && currentConfig().ShouldConfirm() && output.IsInteractive() {
		ok, err := confirmApply(device, mode)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "cancelled")
			return nil
		}
	}

	result, err := svc.ApplyMode(device, mode, display.ApplyOptions{DryRun: dryRun})
	if err != nil {
		return err
	}
	if err := output.Print(result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("apply %s on %s: %s", mode, device, result.Message)
	}
	return nil
}
