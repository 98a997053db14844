package cmd

// Backends register themselves with internal/platform from init().
import (
	_ "github.com/mj1618/displaymode/internal/platform/darwin"
	_ "github.com/mj1618/displaymode/internal/platform/simulated"
	_ "github.com/mj1618/displaymode/internal/platform/win32"
	_ "github.com/mj1618/displaymode/internal/platform/x11"
)
