package darwin

import "github.com/mj1618/displaymode/internal/platform"

// CGError values returned by the display configuration calls.
const (
	cgErrorSuccess           = 0
	cgErrorFailure           = 1000
	cgErrorIllegalArgument   = 1001
	cgErrorInvalidConnection = 1002
	cgErrorInvalidContext    = 1003
	cgErrorCannotComplete    = 1004
	cgErrorRangeCheck        = 1007
	cgErrorInvalidOperation  = 1010
)

// cgStatus maps a CGError onto the mode-change status table. Errors outside
// it keep their value, negated, so the message shows the raw code.
func cgStatus(err int) platform.StatusCode {
	switch err {
	case cgErrorSuccess:
		return platform.StatusSuccess
	case cgErrorIllegalArgument, cgErrorRangeCheck:
		return platform.StatusBadMode
	case cgErrorInvalidConnection, cgErrorInvalidContext:
		return platform.StatusNoPrivilege
	case cgErrorFailure, cgErrorCannotComplete, cgErrorInvalidOperation:
		return platform.StatusDriverRejected
	default:
		return platform.StatusCode(-err)
	}
}
