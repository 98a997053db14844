// Package shell is the interactive terminal front end: pick a display, a
// resolution and a refresh rate, then apply.
package shell

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mj1618/displaymode/internal/display"
	"github.com/mj1618/displaymode/internal/model"
)

// Service is the part of display.Service the shell drives.
type Service interface {
	ListActiveDevices() ([]model.Display, error)
	ListModes(device string) (model.ModeCatalog, error)
	ApplyMode(device string, mode model.Mode, opts display.ApplyOptions) (model.ApplyResult, error)
}

// Options configures the shell.
type Options struct {
	// DryRun validates modes with the OS without switching to them.
	DryRun bool
}

// State is the position of the shell in its selection flow.
type State int

const (
	NoDeviceSelected State = iota
	DeviceSelected
	ResolutionSelected
	RefreshSelected
	Applying
)

func (s State) String() string {
	switch s {
	case NoDeviceSelected:
		return "no display selected"
	case DeviceSelected:
		return "display selected"
	case ResolutionSelected:
		return "resolution selected"
	case RefreshSelected:
		return "refresh rate selected"
	case Applying:
		return "applying"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type pane int

const (
	paneDevices pane = iota
	paneResolutions
	paneRates
	paneCount
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

type statusLine struct {
	kind statusKind
	text string
}

// refreshedMsg carries a full re-enumeration: devices plus the catalog of
// the first device.
type refreshedMsg struct {
	devices  []model.Display
	catalog  model.ModeCatalog
	err      error
	modesErr error
}

// modesLoadedMsg carries the catalog of one device.
type modesLoadedMsg struct {
	device  string
	catalog model.ModeCatalog
	err     error
}

// appliedMsg carries the outcome of an apply.
type appliedMsg struct {
	result model.ApplyResult
	err    error
}

// Model is the bubbletea model of the shell. Selection indices are -1 when
// nothing is selected; cursors are where the highlight is in each pane.
type Model struct {
	svc  Service
	opts Options

	devices     []model.Display
	catalog     model.ModeCatalog
	resolutions []model.Resolution
	rates       []int

	device     int
	resolution int
	rate       int

	cursor   [paneCount]int
	focus    pane
	busy     bool
	applying bool
	status   statusLine

	width  int
	height int
}

// New creates a shell model. Init starts the first enumeration.
func New(svc Service, opts Options) Model {
	return Model{
		svc:        svc,
		opts:       opts,
		device:     -1,
		resolution: -1,
		rate:       -1,
		busy:       true,
		status:     statusLine{kind: statusInfo, text: "reading displays..."},
	}
}

// State reports where the shell is in the selection flow.
func (m Model) State() State {
	switch {
	case m.applying:
		return Applying
	case m.device < 0:
		return NoDeviceSelected
	case m.resolution < 0:
		return DeviceSelected
	case m.rate < 0:
		return ResolutionSelected
	default:
		return RefreshSelected
	}
}

// SelectedDevice returns the selected device name, or "".
func (m Model) SelectedDevice() string {
	if m.device < 0 || m.device >= len(m.devices) {
		return ""
	}
	return m.devices[m.device].Name
}

// SelectedResolution returns the selected resolution, or nil.
func (m Model) SelectedResolution() *model.Resolution {
	if m.resolution < 0 || m.resolution >= len(m.resolutions) {
		return nil
	}
	res := m.resolutions[m.resolution]
	return &res
}

// SelectedRate returns the selected refresh rate, or 0.
func (m Model) SelectedRate() int {
	if m.rate < 0 || m.rate >= len(m.rates) {
		return 0
	}
	return m.rates[m.rate]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return refreshCmd(m.svc)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshedMsg:
		return m.onRefreshed(msg), nil

	case modesLoadedMsg:
		return m.onModesLoaded(msg), nil

	case appliedMsg:
		return m.onApplied(msg), nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	// OS calls run off the event loop; nothing else is accepted until they finish
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "tab", "right", "l":
		m.focus = (m.focus + 1) % paneCount
	case "shift+tab", "left", "h":
		m.focus = (m.focus - 1 + paneCount) % paneCount
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home", "g":
		m.cursor[m.focus] = 0
	case "end", "G":
		m.cursor[m.focus] = max(m.paneLen(m.focus)-1, 0)
	case "enter", " ", "space":
		return m.selectAtCursor()
	case "a":
		return m.apply()
	case "r":
		return m.refresh()
	}
	return m, nil
}

func (m Model) paneLen(p pane) int {
	switch p {
	case paneDevices:
		return len(m.devices)
	case paneResolutions:
		return len(m.resolutions)
	case paneRates:
		return len(m.rates)
	}
	return 0
}

func (m *Model) moveCursor(delta int) {
	n := m.paneLen(m.focus)
	if n == 0 {
		m.cursor[m.focus] = 0
		return
	}
	c := m.cursor[m.focus] + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	m.cursor[m.focus] = c
}

func (m Model) selectAtCursor() (tea.Model, tea.Cmd) {
	i := m.cursor[m.focus]
	if i >= m.paneLen(m.focus) {
		return m, nil
	}
	switch m.focus {
	case paneDevices:
		return m.selectDevice(i)
	case paneResolutions:
		m = m.selectResolution(i)
		m.focus = paneRates
	case paneRates:
		m.rate = i
		m.status = statusLine{kind: statusInfo, text: fmt.Sprintf("ready to apply %s, press a", m.pendingMode())}
	}
	return m, nil
}

// selectDevice makes devices[i] current, drops the old catalog and starts a
// fresh mode enumeration for it.
func (m Model) selectDevice(i int) (tea.Model, tea.Cmd) {
	m.device = i
	m.cursor[paneDevices] = i
	m.setCatalog(nil)
	m.focus = paneResolutions
	m.busy = true
	name := m.devices[i].Name
	m.status = statusLine{kind: statusInfo, text: fmt.Sprintf("reading modes of %s...", name)}
	return m, loadModesCmd(m.svc, name)
}

// selectResolution makes resolutions[i] current and auto-selects its
// highest refresh rate.
func (m Model) selectResolution(i int) Model {
	m.resolution = i
	m.cursor[paneResolutions] = i
	m.rates = m.catalog.Rates(m.resolutions[i])
	m.rate = -1
	m.cursor[paneRates] = 0
	if len(m.rates) > 0 {
		m.rate = 0
		m.status = statusLine{kind: statusInfo, text: fmt.Sprintf("ready to apply %s, press a", m.pendingMode())}
	}
	return m
}

func (m *Model) setCatalog(c model.ModeCatalog) {
	m.catalog = c
	m.resolutions = c.Resolutions()
	m.resolution = -1
	m.rates = nil
	m.rate = -1
	m.cursor[paneResolutions] = 0
	m.cursor[paneRates] = 0
}

func (m Model) pendingMode() model.Mode {
	var mode model.Mode
	if res := m.SelectedResolution(); res != nil {
		mode.Width, mode.Height = res.Width, res.Height
	}
	mode.Refresh = m.SelectedRate()
	return mode
}

// apply validates the selection and, when complete, submits it.
func (m Model) apply() (tea.Model, tea.Cmd) {
	device := m.SelectedDevice()
	res := m.SelectedResolution()
	refresh := m.SelectedRate()
	if err := display.ValidateSelection(device, res, refresh); err != nil {
		m.status = statusLine{kind: statusWarning, text: err.Error()}
		return m, nil
	}

	mode := m.pendingMode()
	m.busy = true
	m.applying = true
	m.status = statusLine{kind: statusInfo, text: fmt.Sprintf("applying %s on %s...", mode, device)}
	return m, applyCmd(m.svc, device, mode, display.ApplyOptions{DryRun: m.opts.DryRun})
}

// refresh re-enumerates everything from scratch.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.busy = true
	m.status = statusLine{kind: statusInfo, text: "refreshing display list..."}
	return m, refreshCmd(m.svc)
}

func (m Model) onRefreshed(msg refreshedMsg) Model {
	m.busy = false
	m.devices = nil
	m.device = -1
	m.cursor[paneDevices] = 0
	m.setCatalog(nil)
	m.focus = paneDevices

	if msg.err != nil {
		m.status = statusLine{kind: statusError, text: "display enumeration failed: " + msg.err.Error()}
		return m
	}
	m.devices = msg.devices
	if len(m.devices) == 0 {
		m.status = statusLine{kind: statusWarning, text: "no active displays found"}
		return m
	}

	m.device = 0
	if msg.modesErr != nil {
		m.status = statusLine{kind: statusError, text: "failed to read modes: " + msg.modesErr.Error()}
		return m
	}
	m.setCatalog(msg.catalog)
	m.focus = paneResolutions
	m.status = statusLine{kind: statusInfo, text: fmt.Sprintf("found %d active display(s)", len(m.devices))}
	return m
}

func (m Model) onModesLoaded(msg modesLoadedMsg) Model {
	if msg.device != m.SelectedDevice() {
		return m
	}
	m.busy = false
	if msg.err != nil {
		m.setCatalog(nil)
		m.status = statusLine{kind: statusError, text: "failed to read modes: " + msg.err.Error()}
		return m
	}
	m.setCatalog(msg.catalog)
	m.status = statusLine{kind: statusInfo, text: fmt.Sprintf("%s: %d resolution(s)", msg.device, len(m.resolutions))}
	return m
}

// onApplied reports the outcome and returns to the device-selected state,
// keeping the cursors where they were.
func (m Model) onApplied(msg appliedMsg) Model {
	m.busy = false
	m.applying = false
	m.resolution = -1
	m.rates = nil
	m.rate = -1

	switch {
	case msg.err != nil && display.IsValidation(msg.err):
		m.status = statusLine{kind: statusWarning, text: msg.err.Error()}
	case msg.err != nil:
		m.status = statusLine{kind: statusError, text: "apply failed: " + msg.err.Error()}
	case msg.result.OK:
		m.status = statusLine{kind: statusSuccess, text: msg.result.Message}
	default:
		m.status = statusLine{kind: statusError, text: "apply failed: " + msg.result.Message}
	}
	return m
}

func refreshCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		devices, err := svc.ListActiveDevices()
		if err != nil {
			return refreshedMsg{err: err}
		}
		msg := refreshedMsg{devices: devices}
		if len(devices) > 0 {
			msg.catalog, msg.modesErr = svc.ListModes(devices[0].Name)
		}
		return msg
	}
}

func loadModesCmd(svc Service, device string) tea.Cmd {
	return func() tea.Msg {
		catalog, err := svc.ListModes(device)
		return modesLoadedMsg{device: device, catalog: catalog, err: err}
	}
}

func applyCmd(svc Service, device string, mode model.Mode, opts display.ApplyOptions) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.ApplyMode(device, mode, opts)
		return appliedMsg{result: result, err: err}
	}
}
