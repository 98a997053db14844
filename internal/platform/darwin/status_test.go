package darwin

import (
	"testing"

	"github.com/mj1618/displaymode/internal/platform"
)

func TestCGStatus(t *testing.T) {
	tests := []struct {
		err  int
		want platform.StatusCode
	}{
		{cgErrorSuccess, platform.StatusSuccess},
		{cgErrorIllegalArgument, platform.StatusBadMode},
		{cgErrorRangeCheck, platform.StatusBadMode},
		{cgErrorInvalidConnection, platform.StatusNoPrivilege},
		{cgErrorCannotComplete, platform.StatusDriverRejected},
		{1011, platform.StatusCode(-1011)},
	}
	for _, tt := range tests {
		if got := cgStatus(tt.err); got != tt.want {
			t.Errorf("cgStatus(%d) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
