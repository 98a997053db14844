//go:build linux || freebsd || openbsd || netbsd

package x11

import "github.com/mj1618/displaymode/internal/platform"

func init() {
	platform.NewProviderFunc = newProvider
}
