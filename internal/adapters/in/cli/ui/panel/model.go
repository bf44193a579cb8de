// Package panel implements the interactive volume export panel.
package panel

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vackup/internal/adapters/in/cli/ui/components"
	"github.com/bnema/vackup/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/vackup/internal/boundaries/in"
	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/internal/usecase/panel"
)

const (
	maxToasts      = 4
	listingMessage = "Loading volumes..."
)

type volumesMsg struct {
	volumes []domain.Volume
	err     error
}

type lookupMsg domain.Lookup

type selectionMsg struct {
	selection domain.DirectorySelection
	err       error
}

type exportDoneMsg struct {
	volume   string
	err      error
	panicked bool
}

// ToastMsg carries a notification into the event loop.
type ToastMsg components.Toast

// Model is the bubbletea model of the panel. All state mutations happen in
// Update.
type Model struct {
	ctx     context.Context
	svc     in.VolumeService
	picker  out.DirectoryPicker
	state   *panel.Panel
	spinner components.SpinnerModel
	cursor  int
	listing bool
	toasts  []components.Toast
	width   int
}

// New creates the panel model. initialPath may be empty.
func New(ctx context.Context, svc in.VolumeService, picker out.DirectoryPicker, initialPath string) Model {
	return Model{
		ctx:    ctx,
		svc:    svc,
		picker: picker,
		state:  panel.New(initialPath),
		spinner: components.NewSpinner(spinner.MiniDot, listingMessage),
		listing: true,
	}
}

// Init lists the volumes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), listCmd(m.ctx, m.svc))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case volumesMsg:
		m.listing = false
		if msg.err != nil {
			m.state.ApplyVolumes(nil)
			m.clampCursor()
			return m, nil
		}
		m.state.ApplyVolumes(msg.volumes)
		m.clampCursor()
		cmds := make([]tea.Cmd, 0, len(msg.volumes))
		for _, v := range m.state.Volumes() {
			cmds = append(cmds, lookupCmd(m.ctx, m.svc, v.Name))
		}
		return m, tea.Batch(cmds...)

	case lookupMsg:
		m.state.ApplyLookup(domain.Lookup(msg))
		return m, nil

	case selectionMsg:
		if msg.err != nil {
			m.pushToast(components.Toast{Kind: components.ToastError, Message: msg.err.Error()})
			return m, nil
		}
		m.state.ApplySelection(msg.selection)
		return m, nil

	case exportDoneMsg:
		m.state.FinishExport()
		m.spinner.SetMessage(listingMessage)
		if msg.panicked {
			m.pushToast(components.Toast{Kind: components.ToastError, Message: msg.err.Error()})
		}
		return m, nil

	case ToastMsg:
		m.pushToast(components.Toast(msg))
		return m, nil
	}

	updated, cmd := m.spinner.Update(msg)
	if s, ok := updated.(components.SpinnerModel); ok {
		m.spinner = s
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.state.Volumes())-1 {
			m.cursor++
		}

	case "r":
		if m.listing {
			return m, nil
		}
		m.listing = true
		return m, listCmd(m.ctx, m.svc)

	case "p":
		if !m.state.CanPickDirectory() {
			return m, nil
		}
		return m, pickCmd(m.ctx, m.picker)

	case "e", "enter":
		name, ok := m.selectedVolume()
		if !ok {
			return m, nil
		}
		path, err := m.state.BeginExport(name)
		if errors.Is(err, domain.ErrNoExportPath) {
			m.pushToast(components.Toast{Kind: components.ToastInfo, Message: "Choose an export directory first (p)"})
			return m, nil
		}
		if err != nil {
			return m, nil
		}
		m.spinner.SetMessage(fmt.Sprintf("%s %s to %s", styles.IconArchive, name, path))
		return m, exportCmd(m.ctx, m.svc, name, path)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Theme.Title.Render(styles.IconVolume + " Volumes"))
	b.WriteString("\n")
	b.WriteString(m.exportPathLine())
	b.WriteString("\n\n")

	switch {
	case m.listing && len(m.state.Volumes()) == 0:
		b.WriteString(m.spinner.View())
	case len(m.state.Volumes()) == 0:
		b.WriteString(styles.Theme.Muted.Render("No volumes found."))
	default:
		b.WriteString(components.VolumeTable(RowCells(m.state.Rows()),
			components.WithSelectedRow(m.cursor),
			components.WithMaxWidth(m.width),
		))
	}
	b.WriteString("\n")

	if m.state.Loading() {
		b.WriteString("\n")
		b.WriteString(styles.Theme.BadgeBusy.Render("exporting"))
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
		b.WriteString("\n")
	}

	if len(m.toasts) > 0 {
		b.WriteString("\n")
		b.WriteString(components.RenderToasts(m.toasts))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	b.WriteString("\n")
	return b.String()
}

func (m Model) exportPathLine() string {
	if m.state.ExportPath() == "" {
		return styles.Theme.Muted.Render(styles.IconFolder + " No export directory selected")
	}
	return styles.Theme.Subtitle.Render(styles.IconFolder + " Export to " + m.state.ExportPath())
}

func (m Model) helpLine() string {
	keys := []string{
		styles.RenderKeyHelp("↑/↓", "select"),
	}
	if m.state.CanPickDirectory() {
		keys = append(keys, styles.RenderKeyHelp("p", "choose directory"))
	}
	if m.state.ExportEnabled() {
		keys = append(keys, styles.RenderKeyHelp("e", "export"))
	}
	keys = append(keys,
		styles.RenderKeyHelp("r", "refresh"),
		styles.RenderKeyHelp("q", "quit"),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(keys, "  "))
}

func (m *Model) selectedVolume() (string, bool) {
	volumes := m.state.Volumes()
	if m.cursor < 0 || m.cursor >= len(volumes) {
		return "", false
	}
	return volumes[m.cursor].Name, true
}

func (m *Model) clampCursor() {
	n := len(m.state.Volumes())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) pushToast(t components.Toast) {
	m.toasts = append(m.toasts, t)
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
}

// State exposes the panel state, for tests and callers that inspect the
// final model.
func (m Model) State() *panel.Panel {
	return m.state
}

// RowCells converts rows into table cells. Unresolved container cells stay blank.
func RowCells(rows []domain.Row) [][]string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			r.Driver,
			r.Name,
			strconv.Itoa(r.Links),
			joinContainers(r.Containers),
			r.MountPoint,
			r.Size,
		}
	}
	return cells
}

func joinContainers(names string) string {
	var parts []string
	for _, n := range strings.Split(names, "\n") {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, ", ")
}
