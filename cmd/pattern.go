package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/output"
	"github.com/mj1618/displaymode/internal/pattern"
)

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Render a calibration test pattern as PNG",
	Long: `Render a test pattern of exactly WIDTHxHEIGHT pixels: a 1-pixel border,
a grid every 100 pixels, corner markers, a centre crosshair and the mode as a
label. Shown full-screen, it makes scaling and overscan easy to spot.`,
	Args: cobra.NoArgs,
	RunE: runPattern,
}

func init() {
	rootCmd.AddCommand(patternCmd)
	patternCmd.Flags().Int("width", 0, "Width in pixels")
	patternCmd.Flags().Int("height", 0, "Height in pixels")
	patternCmd.Flags().Int("refresh", 0, "Refresh rate for the label")
	patternCmd.Flags().String("out", "", "Output PNG path")
	patternCmd.MarkFlagRequired("width")
	patternCmd.MarkFlagRequired("height")
	patternCmd.MarkFlagRequired("out")
}

type patternResult struct {
	Path string     `yaml:"path" json:"path"`
	Mode model.Mode `yaml:"mode" json:"mode"`
}

func runPattern(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	refresh, _ := cmd.Flags().GetInt("refresh")
	out, _ := cmd.Flags().GetString("out")

	mode := model.Mode{Width: width, Height: height, Refresh: refresh}
	if !mode.Resolution().Valid() {
		return fmt.Errorf("invalid pattern size %s", mode.Resolution())
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := pattern.WritePNG(f, mode); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return output.Print(patternResult{Path: out, Mode: mode})
}
