package cmd

import (
	"strings"
	"testing"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
	"github.com/mj1618/displaymode/internal/platform/simulated"
)

func TestApply_DefaultsToHighestRate(t *testing.T) {
	b := simulated.Default()
	useBackend(t, b)

	out, err := execute(t, "apply", "--width", "1920", "--height", "1080", "--yes")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "applied 1920x1080@144Hz") {
		t.Errorf("output = %s", out)
	}
	reqs := b.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected one request, got %+v", reqs)
	}
	if reqs[0].Device != `\\.\DISPLAY1` || reqs[0].Refresh != 144 || reqs[0].Test {
		t.Errorf("request = %+v", reqs[0])
	}
}

func TestApply_DryRun(t *testing.T) {
	b := simulated.Default()
	useBackend(t, b)

	if _, err := execute(t, "apply", "--width", "1280", "--height", "720", "--refresh", "60", "--dry-run"); err != nil {
		t.Fatal(err)
	}
	reqs := b.Requests()
	if len(reqs) != 1 || !reqs[0].Test {
		t.Errorf("expected one test request, got %+v", reqs)
	}
	raw, _ := b.CurrentMode(`\\.\DISPLAY1`)
	if raw.Width != 2560 {
		t.Errorf("dry run changed the mode to %+v", raw)
	}
}

func TestApply_UnsupportedResolutionMakesNoCall(t *testing.T) {
	b := simulated.Default()
	useBackend(t, b)

	_, err := execute(t, "apply", "--width", "1600", "--height", "900", "--yes")
	if err == nil {
		t.Fatal("expected error")
	}
	if b.ApplyCalls() != 0 {
		t.Errorf("expected no mode change calls, got %d", b.ApplyCalls())
	}
}

func TestApply_FailureStatus(t *testing.T) {
	b := simulated.Default()
	b.SetStatus(platform.StatusNoPrivilege)
	useBackend(t, b)

	out, err := execute(t, "apply", "--width", "1920", "--height", "1080", "--yes")
	if err == nil {
		t.Fatal("expected a non-nil error for a refused mode change")
	}
	if !strings.Contains(err.Error(), "insufficient privilege") {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(out, "status: -5") {
		t.Errorf("result should still be printed, got %s", out)
	}
}

func TestApply_ConfirmDeclined(t *testing.T) {
	prev := confirmApply
	t.Cleanup(func() { confirmApply = prev })
	asked := false
	confirmApply = func(string, model.Mode) (bool, error) {
		asked = true
		return false, nil
	}

	b := simulated.Default()
	useBackend(t, b)
	if _, err := execute(t, "apply", "--width", "1920", "--height", "1080"); err != nil {
		t.Fatal(err)
	}
	// the prompt only shows on a terminal, and confirm_apply is off here
	if asked {
		t.Error("confirmation should be skipped when confirm_apply is false")
	}
	if b.ApplyCalls() != 1 {
		t.Errorf("expected the mode change to go through, got %d calls", b.ApplyCalls())
	}
}

func TestApply_RequiredFlags(t *testing.T) {
	for _, name := range []string{"width", "height"} {
		f := applyCmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("flag %q missing", name)
		}
		if _, ok := f.Annotations["cobra_annotation_bash_completion_one_required_flag"]; !ok {
			t.Errorf("flag %q should be required", name)
		}
	}
}
