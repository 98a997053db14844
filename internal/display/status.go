package display

import (
	"fmt"

	"github.com/mj1618/displaymode/internal/platform"
)

var statusMessages = map[platform.StatusCode]string{
	platform.StatusSuccess:         "success",
	platform.StatusRestartRequired: "restart required",
	platform.StatusBadMode:         "unsupported resolution",
	platform.StatusNoPrivilege:     "insufficient privilege",
	platform.StatusDriverRejected:  "driver rejected the mode",
}

// StatusMessage maps a raw mode-change status code to its user-facing text.
// Codes outside the known table keep the raw number in the message.
func StatusMessage(code platform.StatusCode) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error code: %d", int(code))
}
