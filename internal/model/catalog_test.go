package model

import (
	"reflect"
	"testing"
)

func TestBuildCatalog_GroupsAndSortsRates(t *testing.T) {
	raw := []RawMode{
		{Width: 1920, Height: 1080, Refresh: 60},
		{Width: 1920, Height: 1080, Refresh: 144},
		{Width: 1920, Height: 1080, Refresh: 60, BitsPerPixel: 16},
		{Width: 1920, Height: 1080, Refresh: 120},
		{Width: 1280, Height: 720, Refresh: 60},
	}
	c := BuildCatalog(raw)

	if c.Len() != 2 {
		t.Fatalf("expected 2 resolutions, got %d", c.Len())
	}
	got := c.Rates(Resolution{1920, 1080})
	want := []int{144, 120, 60}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rates: got %v, want %v", got, want)
	}
}

func TestBuildCatalog_SkipsInvalidRecords(t *testing.T) {
	raw := []RawMode{
		{Width: 0, Height: 1080, Refresh: 60},
		{Width: 1920, Height: 0, Refresh: 60},
		{Width: -1, Height: 768, Refresh: 60},
		{Width: 1024, Height: 768, Refresh: 0},
		{Width: 800, Height: 600, Refresh: 60},
	}
	c := BuildCatalog(raw)
	if c.Len() != 1 {
		t.Fatalf("expected only 800x600 to survive, got %v", c.Entries())
	}
	for res := range c {
		if !res.Valid() {
			t.Errorf("catalog contains invalid resolution %v", res)
		}
	}
}

func TestBuildCatalog_RatesStrictlyDescending(t *testing.T) {
	raw := []RawMode{
		{Width: 2560, Height: 1440, Refresh: 59},
		{Width: 2560, Height: 1440, Refresh: 165},
		{Width: 2560, Height: 1440, Refresh: 59},
		{Width: 2560, Height: 1440, Refresh: 75},
		{Width: 2560, Height: 1440, Refresh: 165},
		{Width: 1024, Height: 768, Refresh: 75},
		{Width: 1024, Height: 768, Refresh: 60},
	}
	c := BuildCatalog(raw)
	for res, rates := range c {
		if len(rates) == 0 {
			t.Errorf("%v: empty rate list", res)
		}
		for i := 1; i < len(rates); i++ {
			if rates[i] >= rates[i-1] {
				t.Errorf("%v: rates not strictly descending: %v", res, rates)
			}
		}
	}
}

func TestBuildCatalog_Empty(t *testing.T) {
	c := BuildCatalog(nil)
	if c == nil {
		t.Fatal("catalog should be non-nil")
	}
	if c.Len() != 0 {
		t.Errorf("expected empty catalog, got %d", c.Len())
	}
	if len(c.Resolutions()) != 0 {
		t.Error("expected no resolutions")
	}
}

func TestModeCatalog_ResolutionsOrder(t *testing.T) {
	c := ModeCatalog{
		{1280, 720}:  {60},
		{1920, 1200}: {60},
		{1920, 1080}: {60},
		{3840, 2160}: {30},
		{1280, 1024}: {60},
	}
	want := []Resolution{
		{3840, 2160},
		{1920, 1200},
		{1920, 1080},
		{1280, 1024},
		{1280, 720},
	}
	for i := 0; i < 3; i++ {
		got := c.Resolutions()
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: got %v, want %v", i, got, want)
		}
	}
}

func TestModeCatalog_HighestRate(t *testing.T) {
	c := ModeCatalog{{1920, 1080}: {144, 120, 60}}
	r, ok := c.HighestRate(Resolution{1920, 1080})
	if !ok || r != 144 {
		t.Errorf("HighestRate = %d, %v; want 144, true", r, ok)
	}
	if _, ok := c.HighestRate(Resolution{800, 600}); ok {
		t.Error("HighestRate for missing resolution should report false")
	}
}

func TestModeCatalog_Has(t *testing.T) {
	c := ModeCatalog{{1920, 1080}: {144, 60}}
	tests := []struct {
		mode Mode
		want bool
	}{
		{Mode{1920, 1080, 144}, true},
		{Mode{1920, 1080, 60}, true},
		{Mode{1920, 1080, 120}, false},
		{Mode{1280, 720, 60}, false},
	}
	for _, tt := range tests {
		if got := c.Has(tt.mode); got != tt.want {
			t.Errorf("Has(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestModeCatalog_Entries(t *testing.T) {
	c := ModeCatalog{
		{1280, 720}:  {60},
		{1920, 1080}: {144, 60},
	}
	entries := c.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Width != 1920 || entries[0].Height != 1080 {
		t.Errorf("first entry should be 1920x1080, got %dx%d", entries[0].Width, entries[0].Height)
	}
	if !reflect.DeepEqual(entries[0].Rates, []int{144, 60}) {
		t.Errorf("first entry rates: got %v", entries[0].Rates)
	}
}

func TestMode_String(t *testing.T) {
	m := Mode{Width: 1920, Height: 1080, Refresh: 144}
	if got := m.String(); got != "1920x1080@144Hz" {
		t.Errorf("String() = %q", got)
	}
	if got := m.Resolution().String(); got != "1920x1080" {
		t.Errorf("Resolution().String() = %q", got)
	}
}

func TestDisplay_Label(t *testing.T) {
	d := Display{Name: `\\.\DISPLAY2`}
	if got := d.Label(1); got != `Display 2 (\\.\DISPLAY2)` {
		t.Errorf("Label = %q", got)
	}
	d.Primary = true
	if got := d.Label(0); got != `Display 1 (\\.\DISPLAY2) *` {
		t.Errorf("primary Label = %q", got)
	}
}
