// Package display is the query/control facade over a platform backend: it
// walks the OS enumerations, builds mode catalogs and applies modes.
package display

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
)

// maxEnumIndex bounds every enumeration loop against a backend that never
// reports exhaustion.
const maxEnumIndex = 1 << 16

// ApplyOptions tunes ApplyMode.
type ApplyOptions struct {
	// DryRun asks the OS to validate the mode without switching to it.
	DryRun bool
}

// Service runs display queries and mode changes against one provider.
type Service struct {
	provider *platform.Provider
	logger   zerolog.Logger
}

// NewService creates a Service over provider.
func NewService(provider *platform.Provider, logger zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger.With().Str("component", "display").Str("backend", provider.Name).Logger(),
	}
}

// Backend returns the name of the provider in use.
func (s *Service) Backend() string {
	return s.provider.Name
}

// ListActiveDevices returns the active devices in OS enumeration order. An
// empty, non-nil slice means no device is active.
func (s *Service) ListActiveDevices() (devices []model.Display, err error) {
	defer recoverBackend("list devices", &err)
	if s.provider.Devices == nil {
		return nil, fmt.Errorf("%w: device enumeration not available on backend %s", ErrEnumeration, s.provider.Name)
	}

	devices = []model.Display{}
	for index := 0; index < maxEnumIndex; index++ {
		info, ok, err := s.provider.Devices.EnumDevice(index)
		if err != nil {
			s.logger.Warn().Err(err).Int("index", index).Msg("device enumeration failed")
			return nil, fmt.Errorf("%w: device %d: %w", ErrEnumeration, index, err)
		}
		if !ok {
			s.logger.Debug().Int("count", len(devices)).Int("scanned", index).Msg("device enumeration complete")
			return devices, nil
		}
		if !info.Active() {
			continue
		}
		devices = append(devices, model.Display{
			Index:       index,
			Name:        info.Name,
			Description: info.Description,
			Active:      true,
			Primary:     info.Primary(),
		})
	}
	return nil, fmt.Errorf("%w: device list did not terminate after %d entries", ErrEnumeration, maxEnumIndex)
}

// ListModes queries the full mode table of device and groups it into a
// catalog. Nothing is cached; every call walks the table again.
func (s *Service) ListModes(device string) (catalog model.ModeCatalog, err error) {
	defer recoverBackend("list modes", &err)
	if device == "" {
		return nil, invalid("device", "no display selected")
	}
	if s.provider.Modes == nil {
		return nil, fmt.Errorf("%w: mode enumeration not available on backend %s", ErrEnumeration, s.provider.Name)
	}

	var raw []model.RawMode
	for index := 0; index < maxEnumIndex; index++ {
		mode, ok, err := s.provider.Modes.EnumMode(device, index)
		if err != nil {
			s.logger.Warn().Err(err).Str("device", device).Int("index", index).Msg("mode enumeration failed")
			return nil, fmt.Errorf("%w: %s mode %d: %w", ErrEnumeration, device, index, err)
		}
		if !ok {
			catalog = model.BuildCatalog(raw)
			s.logger.Debug().Str("device", device).Int("records", len(raw)).Int("resolutions", catalog.Len()).Msg("mode enumeration complete")
			return catalog, nil
		}
		raw = append(raw, mode)
	}
	return nil, fmt.Errorf("%w: %s mode list did not terminate after %d entries", ErrEnumeration, device, maxEnumIndex)
}

// CurrentMode returns the mode device is driven at.
func (s *Service) CurrentMode(device string) (mode model.Mode, err error) {
	defer recoverBackend("current mode", &err)
	if device == "" {
		return model.Mode{}, invalid("device", "no display selected")
	}
	if s.provider.Modes == nil {
		return model.Mode{}, fmt.Errorf("%w: mode query not available on backend %s", ErrEnumeration, s.provider.Name)
	}
	raw, err := s.provider.Modes.CurrentMode(device)
	if err != nil {
		return model.Mode{}, fmt.Errorf("%w: current mode of %s: %w", ErrEnumeration, device, err)
	}
	return model.Mode{Width: raw.Width, Height: raw.Height, Refresh: raw.Refresh}, nil
}

// ValidateSelection checks that a device, a resolution and a refresh rate
// have all been chosen.
func ValidateSelection(device string, res *model.Resolution, refresh int) error {
	if device == "" {
		return invalid("device", "select a display first")
	}
	if res == nil {
		return invalid("resolution", "select a resolution")
	}
	if !res.Valid() {
		return invalid("resolution", "resolution %s is not valid", res)
	}
	if refresh <= 0 {
		return invalid("refresh", "select a refresh rate")
	}
	return nil
}

// ApplyMode asks the OS to switch device to mode and persist the change.
// A non-nil error means the request never reached the OS (validation or
// backend fault); OS rejections come back as a result with OK false.
func (s *Service) ApplyMode(device string, mode model.Mode, opts ApplyOptions) (result model.ApplyResult, err error) {
	defer recoverBackend("apply mode", &err)

	res := mode.Resolution()
	if err := ValidateSelection(device, &res, mode.Refresh); err != nil {
		return model.ApplyResult{}, err
	}
	if err := platform.CheckDeviceName(device); err != nil {
		return model.ApplyResult{}, invalid("device", "%v", err)
	}
	if s.provider.Changer == nil {
		return model.ApplyResult{}, fmt.Errorf("mode changes not available on backend %s", s.provider.Name)
	}

	req := platform.ModeRequest{
		Device:  device,
		Width:   mode.Width,
		Height:  mode.Height,
		Refresh: mode.Refresh,
		Test:    opts.DryRun,
	}
	code, err := s.provider.Changer.ChangeMode(req)
	if err != nil {
		s.logger.Error().Err(err).Str("device", device).Str("mode", mode.String()).Msg("mode change not submitted")
		return model.ApplyResult{}, fmt.Errorf("apply %s on %s: %w", mode, device, err)
	}

	result = model.ApplyResult{
		Device: device,
		Mode:   mode,
		OK:     code == platform.StatusSuccess,
		Status: int(code),
		DryRun: opts.DryRun,
	}
	switch {
	case result.OK && opts.DryRun:
		result.Message = fmt.Sprintf("%s is supported on %s (dry run, nothing changed)", mode, device)
	case result.OK:
		result.Message = fmt.Sprintf("applied %s on %s (screen may flicker briefly)", mode, device)
	default:
		result.Message = StatusMessage(code)
	}

	event := s.logger.Info()
	if !result.OK {
		event = s.logger.Warn()
	}
	event.Str("device", device).Str("mode", mode.String()).Int("status", result.Status).Bool("dry_run", opts.DryRun).Msg(result.Message)
	return result, nil
}

func recoverBackend(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: %w: %v", op, ErrUnexpected, r)
	}
}
