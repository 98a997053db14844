package display

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mj1618/displaymode/internal/model"
	"github.com/mj1618/displaymode/internal/platform"
	"github.com/mj1618/displaymode/internal/platform/simulated"
)

func newTestService(b *simulated.Backend) *Service {
	return NewService(b.Provider(), zerolog.Nop())
}

func TestListActiveDevices_OnlyActive(t *testing.T) {
	svc := newTestService(simulated.Default())
	devices, err := svc.ListActiveDevices()
	if err != nil {
		t.Fatal(err)
	}
	if len(devices) != 2 {
		t.Fatalf("expected 2 active devices, got %d: %+v", len(devices), devices)
	}
	if devices[0].Name != `\\.\DISPLAY1` || devices[1].Name != `\\.\DISPLAY2` {
		t.Errorf("unexpected order: %+v", devices)
	}
	if !devices[0].Primary || devices[1].Primary {
		t.Errorf("primary flag wrong: %+v", devices)
	}
	if devices[1].Index != 1 {
		t.Errorf("index should be the OS enumeration index, got %d", devices[1].Index)
	}
}

func TestListActiveDevices_Empty(t *testing.T) {
	svc := newTestService(simulated.New())
	devices, err := svc.ListActiveDevices()
	if err != nil {
		t.Fatal(err)
	}
	if devices == nil || len(devices) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", devices)
	}
}

func TestListActiveDevices_Failure(t *testing.T) {
	b := simulated.Default()
	b.DeviceErr = errors.New("driver fault")
	_, err := newTestService(b).ListActiveDevices()
	if !errors.Is(err, ErrEnumeration) {
		t.Fatalf("expected ErrEnumeration, got %v", err)
	}
	if !strings.Contains(err.Error(), "driver fault") {
		t.Errorf("error should carry the cause: %v", err)
	}
}

func TestListModes_Catalog(t *testing.T) {
	svc := newTestService(simulated.Default())
	c, err := svc.ListModes(`\\.\DISPLAY1`)
	if err != nil {
		t.Fatal(err)
	}
	want := []model.Resolution{{Width: 2560, Height: 1440}, {Width: 1920, Height: 1080}, {Width: 1280, Height: 720}}
	if got := c.Resolutions(); !reflect.DeepEqual(got, want) {
		t.Errorf("resolutions: got %v, want %v", got, want)
	}
	if got := c.Rates(model.Resolution{Width: 1920, Height: 1080}); !reflect.DeepEqual(got, []int{144, 120, 60}) {
		t.Errorf("1080p rates: got %v", got)
	}
}

func TestListModes_DropsInvalidRecords(t *testing.T) {
	b := simulated.Default()
	b.SetModes(`\\.\DISPLAY1`, []model.RawMode{
		{Width: 0, Height: 0, Refresh: 60},
		{Width: 1920, Height: 0, Refresh: 60},
		{Width: 1920, Height: 1080, Refresh: 60},
		{Width: 1920, Height: 1080, Refresh: 60},
	})
	c, err := newTestService(b).ListModes(`\\.\DISPLAY1`)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 resolution, got %v", c.Entries())
	}
	for res, rates := range c {
		if res.Width <= 0 || res.Height <= 0 {
			t.Errorf("invalid resolution in catalog: %v", res)
		}
		if len(rates) != 1 {
			t.Errorf("duplicates not removed: %v", rates)
		}
	}
}

func TestListModes_NotCached(t *testing.T) {
	b := simulated.Default()
	svc := newTestService(b)
	if _, err := svc.ListModes(`\\.\DISPLAY2`); err != nil {
		t.Fatal(err)
	}
	first := b.ModeCalls()
	b.SetModes(`\\.\DISPLAY2`, []model.RawMode{{Width: 640, Height: 480, Refresh: 60}})
	c, err := svc.ListModes(`\\.\DISPLAY2`)
	if err != nil {
		t.Fatal(err)
	}
	if b.ModeCalls() <= first {
		t.Error("second query should hit the backend again")
	}
	if c.Len() != 1 {
		t.Errorf("catalog should reflect the new table, got %v", c.Entries())
	}
}

func TestListModes_Errors(t *testing.T) {
	svc := newTestService(simulated.Default())
	if _, err := svc.ListModes(""); !IsValidation(err) {
		t.Errorf("empty device: expected validation error, got %v", err)
	}
	if _, err := svc.ListModes("missing"); !errors.Is(err, ErrEnumeration) {
		t.Errorf("unknown device: expected ErrEnumeration, got %v", err)
	}
}

func TestCurrentMode(t *testing.T) {
	svc := newTestService(simulated.Default())
	m, err := svc.CurrentMode(`\\.\DISPLAY1`)
	if err != nil {
		t.Fatal(err)
	}
	if m != (model.Mode{Width: 2560, Height: 1440, Refresh: 165}) {
		t.Errorf("current mode = %v", m)
	}
}

func TestApplyMode_Success(t *testing.T) {
	b := simulated.Default()
	svc := newTestService(b)
	res, err := svc.ApplyMode(`\\.\DISPLAY1`, model.Mode{Width: 1920, Height: 1080, Refresh: 144}, ApplyOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK || res.Status != 0 {
		t.Fatalf("expected success, got %+v", res)
	}
	for _, want := range []string{"1920", "1080", "144"} {
		if !strings.Contains(res.Message, want) {
			t.Errorf("success message %q should contain %s", res.Message, want)
		}
	}

	reqs := b.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	want := platform.ModeRequest{Device: `\\.\DISPLAY1`, Width: 1920, Height: 1080, Refresh: 144}
	if reqs[0] != want {
		t.Errorf("request = %+v, want %+v", reqs[0], want)
	}
}

func TestApplyMode_DryRun(t *testing.T) {
	b := simulated.Default()
	svc := newTestService(b)
	res, err := svc.ApplyMode(`\\.\DISPLAY1`, model.Mode{Width: 1280, Height: 720, Refresh: 60}, ApplyOptions{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK || !res.DryRun {
		t.Errorf("expected successful dry run, got %+v", res)
	}
	if !b.Requests()[0].Test {
		t.Error("dry run should submit a test request")
	}
	cur, _ := svc.CurrentMode(`\\.\DISPLAY1`)
	if cur.Width != 2560 {
		t.Errorf("dry run changed the mode to %v", cur)
	}
}

func TestApplyMode_StatusMapping(t *testing.T) {
	tests := []struct {
		code platform.StatusCode
		want string
	}{
		{-1, "restart required"},
		{-2, "unsupported resolution"},
		{-5, "insufficient privilege"},
		{-6, "driver rejected the mode"},
		{-10, "-10"},
		{1, "unknown error code: 1"},
	}
	for _, tt := range tests {
		b := simulated.Default()
		b.SetStatus(tt.code)
		res, err := newTestService(b).ApplyMode(`\\.\DISPLAY1`, model.Mode{Width: 1920, Height: 1080, Refresh: 60}, ApplyOptions{})
		if err != nil {
			t.Fatalf("code %d: %v", tt.code, err)
		}
		if res.OK {
			t.Errorf("code %d: should not be OK", tt.code)
		}
		if res.Status != int(tt.code) {
			t.Errorf("code %d: status = %d", tt.code, res.Status)
		}
		if !strings.Contains(res.Message, tt.want) {
			t.Errorf("code %d: message %q should contain %q", tt.code, res.Message, tt.want)
		}
	}
}

func TestApplyMode_UnsupportedIsNotRawCode(t *testing.T) {
	b := simulated.Default()
	b.SetStatus(platform.StatusBadMode)
	res, _ := newTestService(b).ApplyMode(`\\.\DISPLAY1`, model.Mode{Width: 1920, Height: 1080, Refresh: 60}, ApplyOptions{})
	if res.Message != "unsupported resolution" {
		t.Errorf("message = %q, want %q", res.Message, "unsupported resolution")
	}
}

func TestApplyMode_ValidationMakesNoCall(t *testing.T) {
	tests := []struct {
		name   string
		device string
		mode   model.Mode
		field  string
	}{
		{"no device", "", model.Mode{Width: 1920, Height: 1080, Refresh: 60}, "device"},
		{"no resolution", `\\.\DISPLAY1`, model.Mode{Refresh: 60}, "resolution"},
		{"no refresh", `\\.\DISPLAY1`, model.Mode{Width: 1920, Height: 1080}, "refresh"},
		{"long name", strings.Repeat("d", 40), model.Mode{Width: 1920, Height: 1080, Refresh: 60}, "device"},
	}
	for _, tt := range tests {
		b := simulated.Default()
		_, err := newTestService(b).ApplyMode(tt.device, tt.mode, ApplyOptions{})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", tt.name, err)
			continue
		}
		if ve.Field != tt.field {
			t.Errorf("%s: field = %q, want %q", tt.name, ve.Field, tt.field)
		}
		if b.ApplyCalls() != 0 {
			t.Errorf("%s: expected zero OS calls, got %d", tt.name, b.ApplyCalls())
		}
	}
}

type panickingChanger struct{}

func (panickingChanger) ChangeMode(platform.ModeRequest) (platform.StatusCode, error) {
	panic("driver exploded")
}

func TestApplyMode_RecoversPanic(t *testing.T) {
	p := simulated.Default().Provider()
	p.Changer = panickingChanger{}
	svc := NewService(p, zerolog.Nop())

	_, err := svc.ApplyMode(`\\.\DISPLAY1`, model.Mode{Width: 1920, Height: 1080, Refresh: 60}, ApplyOptions{})
	if !errors.Is(err, ErrUnexpected) {
		t.Fatalf("expected ErrUnexpected, got %v", err)
	}
	if !strings.Contains(err.Error(), "driver exploded") {
		t.Errorf("error should include the panic value: %v", err)
	}
}

type endlessDevices struct{}

func (endlessDevices) EnumDevice(int) (platform.DeviceInfo, bool, error) {
	return platform.DeviceInfo{}, true, nil
}

func TestListActiveDevices_Unterminated(t *testing.T) {
	p := simulated.Default().Provider()
	p.Devices = endlessDevices{}
	_, err := NewService(p, zerolog.Nop()).ListActiveDevices()
	if !errors.Is(err, ErrEnumeration) {
		t.Errorf("expected ErrEnumeration for endless enumeration, got %v", err)
	}
}

func TestStatusMessage(t *testing.T) {
	if got := StatusMessage(0); got != "success" {
		t.Errorf("StatusMessage(0) = %q", got)
	}
	if got := StatusMessage(-10); got != "unknown error code: -10" {
		t.Errorf("StatusMessage(-10) = %q", got)
	}
}
