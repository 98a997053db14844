//go:build windows

package win32

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the process token carries administrator rights.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// RelaunchElevated restarts the current executable through the "runas" verb
// so Windows shows the UAC prompt. It returns true when the elevated copy was
// started and the caller should exit.
func RelaunchElevated(args []string) (bool, error) {
	if IsElevated() {
		return false, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return false, fmt.Errorf("locate executable: %w", err)
	}
	cwd, _ := os.Getwd()

	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = windows.EscapeArg(a)
	}

	verb, _ := windows.UTF16PtrFromString("runas")
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return false, err
	}
	params, err := windows.UTF16PtrFromString(strings.Join(quoted, " "))
	if err != nil {
		return false, err
	}
	dir, err := windows.UTF16PtrFromString(cwd)
	if err != nil {
		return false, err
	}
	if err := windows.ShellExecute(0, verb, file, params, dir, windows.SW_SHOWNORMAL); err != nil {
		return false, fmt.Errorf("relaunch elevated: %w", err)
	}
	return true, nil
}
