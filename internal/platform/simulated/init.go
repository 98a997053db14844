package simulated

import "github.com/mj1618/displaymode/internal/platform"

func init() {
	platform.RegisterBackend("simulated", func() (*platform.Provider, error) {
		return Default().Provider(), nil
	})
}
