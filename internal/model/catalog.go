package model

import "sort"

// ModeCatalog groups the modes of one device by resolution. Each value is
// sorted in descending order with duplicates removed, so the first rate is the
// highest one.
type ModeCatalog map[Resolution][]int

// CatalogEntry is the serialisable form of one catalog key.
type CatalogEntry struct {
	Width  int   `yaml:"width"  json:"width"`
	Height int   `yaml:"height" json:"height"`
	Rates  []int `yaml:"rates,flow" json:"rates"`
}

// BuildCatalog groups raw OS mode records by resolution. Records with a
// non-positive width, height or refresh rate are dropped.
func BuildCatalog(raw []RawMode) ModeCatalog {
	grouped := make(map[Resolution]map[int]struct{})
	for _, m := range raw {
		res := Resolution{Width: m.Width, Height: m.Height}
		if !res.Valid() || m.Refresh <= 0 {
			continue
		}
		rates, ok := grouped[res]
		if !ok {
			rates = make(map[int]struct{})
			grouped[res] = rates
		}
		rates[m.Refresh] = struct{}{}
	}

	catalog := make(ModeCatalog, len(grouped))
	for res, set := range grouped {
		rates := make([]int, 0, len(set))
		for r := range set {
			rates = append(rates, r)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(rates)))
		catalog[res] = rates
	}
	return catalog
}

// Len returns the number of distinct resolutions.
func (c ModeCatalog) Len() int {
	return len(c)
}

// Resolutions returns the catalog keys sorted descending by width, then height.
func (c ModeCatalog) Resolutions() []Resolution {
	keys := make([]Resolution, 0, len(c))
	for res := range c {
		keys = append(keys, res)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Width != keys[j].Width {
			return keys[i].Width > keys[j].Width
		}
		return keys[i].Height > keys[j].Height
	})
	return keys
}

// Rates returns the refresh rates for res, highest first, or nil.
func (c ModeCatalog) Rates(res Resolution) []int {
	return c[res]
}

// HighestRate returns the preferred refresh rate for res.
func (c ModeCatalog) HighestRate(res Resolution) (int, bool) {
	rates := c[res]
	if len(rates) == 0 {
		return 0, false
	}
	return rates[0], true
}

// Has reports whether the catalog lists the exact mode.
func (c ModeCatalog) Has(m Mode) bool {
	for _, r := range c[m.Resolution()] {
		if r == m.Refresh {
			return true
		}
	}
	return false
}

// Entries returns the catalog in resolution order for output.
func (c ModeCatalog) Entries() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(c))
	for _, res := range c.Resolutions() {
		entries = append(entries, CatalogEntry{Width: res.Width, Height: res.Height, Rates: c[res]})
	}
	return entries
}
