package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mj1618/displaymode/internal/display"
	"github.com/mj1618/displaymode/internal/logging"
	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
)

// newService opens the configured backend. The returned func releases it.
func newService() (*display.Service, func(), error) {
	c := currentConfig()
	provider, err := platform.NewProvider(c.Backend)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.WithComponent("cli")
	logger.Debug().Str("backend", provider.Name).Msg("backend opened")

	release := func() {
		if provider.Close == nil {
			return
		}
		if err := provider.Close(); err != nil {
			logger.Warn().Err(err).Str("backend", provider.Name).Msg("backend close failed")
		}
	}
	return display.NewService(provider, logger), release, nil
}

// deviceFlag returns --device, falling back to the configured device.
func deviceFlag(device string) string {
	if device != "" {
		return device
	}
	return currentConfig().Device
}

// confirmApply asks the user before a mode change. Tests replace it.
var confirmApply = func(device string, mode model.Mode) (bool, error) {
	ok := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Switch %s to %s?", device, mode)).
				Description("The screen may go dark for a moment while the display resyncs.").
				Affirmative("Apply").
				Negative("Cancel").
				Value(&ok),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
