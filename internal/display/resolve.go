package display

import (
	"github.com/mj1618/displaymode/internal/model"
)

// ResolveDevice returns preferred when set, otherwise the first active device.
func (s *Service) ResolveDevice(preferred string) (string, error) {
	if preferred != "" {
		return preferred, nil
	}
	devices, err := s.ListActiveDevices()
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", ErrNoDevices
	}
	return devices[0].Name, nil
}

// ResolveMode checks a requested mode against the device's catalog. A
// refresh of 0 picks the highest rate listed for the resolution.
func (s *Service) ResolveMode(device string, width, height, refresh int) (model.Mode, error) {
	res := model.Resolution{Width: width, Height: height}
	if !res.Valid() {
		return model.Mode{}, invalid("resolution", "resolution %s is not valid", res)
	}
	if refresh < 0 {
		return model.Mode{}, invalid("refresh", "refresh rate %d is not valid", refresh)
	}

	catalog, err := s.ListModes(device)
	if err != nil {
		return model.Mode{}, err
	}
	highest, ok := catalog.HighestRate(res)
	if !ok {
		return model.Mode{}, invalid("resolution", "%s does not support %s", device, res)
	}
	mode := model.Mode{Width: width, Height: height, Refresh: refresh}
	if refresh == 0 {
		mode.Refresh = highest
		return mode, nil
	}
	if !catalog.Has(mode) {
		return model.Mode{}, invalid("refresh", "%s does not support %d Hz at %s (available: %v)", device, refresh, res, catalog.Rates(res))
	}
	return mode, nil
}
