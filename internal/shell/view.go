package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mj1618/displaymode/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("62"))

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	statusStyles = map[statusKind]lipgloss.Style{
		statusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		statusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		statusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		statusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

const defaultListHeight = 12

var paneWidths = [paneCount]int{
	paneDevices:     36,
	paneResolutions: 18,
	paneRates:       18,
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := "displaymode"
	if m.opts.DryRun {
		title += " (dry run)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	deviceItems := make([]string, len(m.devices))
	for i, d := range m.devices {
		deviceItems[i] = d.Label(i)
	}
	resItems := make([]string, len(m.resolutions))
	for i, r := range m.resolutions {
		resItems[i] = r.String()
	}
	rateItems := make([]string, len(m.rates))
	for i, r := range m.rates {
		rateItems[i] = fmt.Sprintf("%d Hz", r)
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(paneDevices, "Displays", deviceItems, m.device),
		m.renderPane(paneResolutions, "Resolutions", resItems, m.resolution),
		m.renderPane(paneRates, "Refresh rate", rateItems, m.rate),
	)
	b.WriteString(panes)
	b.WriteString("\n")

	b.WriteString(m.renderSelection())
	b.WriteString("\n")
	b.WriteString(statusStyles[m.status.kind].Render(m.status.text))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch pane · ↑/↓ move · enter select · a apply · r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) listHeight() int {
	if m.height <= 0 {
		return defaultListHeight
	}
	// title, pane borders and header, selection, status, help
	return max(m.height-10, 3)
}

func (m Model) renderPane(p pane, header string, items []string, selected int) string {
	style := paneStyle
	if m.focus == p {
		style = focusedPaneStyle
	}

	lines := []string{headerStyle.Render(header)}
	if len(items) == 0 {
		lines = append(lines, dimStyle.Render("(none)"))
	}

	// scroll so the cursor stays visible
	height := m.listHeight()
	start := 0
	if c := m.cursor[p]; c >= height {
		start = c - height + 1
	}
	end := min(start+height, len(items))

	for i := start; i < end; i++ {
		marker := "  "
		if i == selected {
			marker = "● "
		}
		line := marker + items[i]
		switch {
		case m.focus == p && i == m.cursor[p]:
			line = cursorStyle.Render("› " + line)
		case i == selected:
			line = "  " + selectedStyle.Render(line)
		default:
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return style.Width(paneWidths[p]).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSelection() string {
	device := m.SelectedDevice()
	if device == "" {
		device = "-"
	}
	mode := "-"
	if res := m.SelectedResolution(); res != nil {
		mode = res.String()
		if rate := m.SelectedRate(); rate > 0 {
			mode = model.Mode{Width: res.Width, Height: res.Height, Refresh: rate}.String()
		}
	}
	return dimStyle.Render(fmt.Sprintf("device: %s   mode: %s   state: %s", device, mode, m.State()))
}
