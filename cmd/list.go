package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/displaymode/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active display devices",
	Long:  "List the display devices attached to the desktop, in OS enumeration order, with their name, description and primary flag.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, release, err := newService()
	if err != nil {
		return err
	}
	defer release()

	devices, err := svc.ListActiveDevices()
	if err != nil {
		return err
	}
	return output.Print(output.DevicesResult{
		Backend:  svc.Backend(),
		Displays: devices,
	})
}
