package panel

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vackup/internal/adapters/in/cli/ui/components"
	"github.com/bnema/vackup/internal/adapters/out/dialog"
	"github.com/bnema/vackup/internal/domain"
)

type fakeService struct {
	mu        sync.Mutex
	volumes   []domain.Volume
	listErr   error
	exports   []string
	exportErr error
	panicWith any
}

func (f *fakeService) ListVolumes(context.Context) ([]domain.Volume, error) {
	return f.volumes, f.listErr
}

func (f *fakeService) ContainersForVolume(_ context.Context, name string) (string, bool) {
	return "ctr-" + name, true
}

func (f *fakeService) ResolveContainers(context.Context, []domain.Volume) domain.ContainerIndex {
	return domain.ContainerIndex{}
}

func (f *fakeService) Export(_ context.Context, volumeName, exportPath string) error {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	f.mu.Lock()
	f.exports = append(f.exports, volumeName+"->"+exportPath)
	f.mu.Unlock()
	return f.exportErr
}

func (f *fakeService) Import(context.Context, string, string) error        { return nil }
func (f *fakeService) LoadFromImage(context.Context, string, string) error { return nil }

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func stripANSI(s string) string {
	return regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`).ReplaceAllString(s, "")
}

func loadedModel(t *testing.T, svc *fakeService, path string) Model {
	t.Helper()
	m := New(context.Background(), svc, dialog.Static(""), path)
	m, _ = update(t, m, volumesMsg{volumes: svc.volumes})
	return m
}

func TestModel_VolumesSortedAndLookupsFired(t *testing.T) {
	svc := &fakeService{volumes: []domain.Volume{{Name: "b"}, {Name: "a"}}}
	m := New(context.Background(), svc, dialog.Static(""), "")

	m, cmd := update(t, m, volumesMsg{volumes: svc.volumes})
	require.NotNil(t, cmd)
	assert.False(t, m.listing)

	rows := m.State().Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Name)
	assert.Equal(t, "b", rows[1].Name)
	assert.False(t, rows[0].ContainersKnown)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)

	// Apply in reverse completion order.
	for i := len(batch) - 1; i >= 0; i-- {
		m, _ = update(t, m, batch[i]())
	}
	rows = m.State().Rows()
	assert.Equal(t, "ctr-a", rows[0].Containers)
	assert.Equal(t, "ctr-b", rows[1].Containers)
}

func TestModel_ListFailureLeavesTableEmpty(t *testing.T) {
	svc := &fakeService{}
	m := New(context.Background(), svc, dialog.Static(""), "")

	m, cmd := update(t, m, volumesMsg{err: domain.ErrEngineStderr})
	assert.Nil(t, cmd)
	assert.Empty(t, m.State().Rows())
	assert.Contains(t, stripANSI(m.View()), "No volumes found.")
}

func TestModel_RefreshFailureClearsPreviousVolumes(t *testing.T) {
	svc := &fakeService{volumes: []domain.Volume{{Name: "a"}, {Name: "b"}}}
	m := loadedModel(t, svc, "/tmp")
	m, _ = update(t, m, key("down"))

	m, cmd := update(t, m, key("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.listing)

	m, _ = update(t, m, volumesMsg{err: domain.ErrEngineStderr})
	assert.Empty(t, m.State().Volumes())
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, stripANSI(m.View()), "No volumes found.")

	_, export := update(t, m, key("e"))
	assert.Nil(t, export)
}

func TestModel_ExportRequiresDirectory(t *testing.T) {
	svc := &fakeService{volumes: []domain.Volume{{Name: "data1"}}}
	m := loadedModel(t, svc, "")

	m, cmd := update(t, m, key("e"))
	assert.Nil(t, cmd)
	assert.False(t, m.State().Loading())
	require.Len(t, m.toasts, 1)
	assert.Equal(t, components.ToastInfo, m.toasts[0].Kind)
	assert.Empty(t, svc.exports)
}

func TestModel_ExportFlow(t *testing.T) {
	svc := &fakeService{volumes: []domain.Volume{{Name: "data1"}, {Name: "data2"}}}
	m := loadedModel(t, svc, "/home/u/backups")

	m, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.State().Loading())
	assert.NotContains(t, stripANSI(m.helpLine()), "export")
	assert.Contains(t, stripANSI(m.View()), "data1 to /home/u/backups")

	// A second export is ignored while the first is in flight.
	m, _ = update(t, m, key("down"))
	m, second := update(t, m, key("e"))
	assert.Nil(t, second)
	assert.Equal(t, "data1", m.State().Exporting())

	// The picker is disabled too.
	_, pick := update(t, m, key("p"))
	assert.Nil(t, pick)

	done := cmd()
	m, _ = update(t, m, done)
	assert.False(t, m.State().Loading())
	assert.NotContains(t, stripANSI(m.View()), "exporting")
	assert.Equal(t, []string{"data1->/home/u/backups"}, svc.exports)
}

func TestModel_ExportErrorClearsFlag(t *testing.T) {
	svc := &fakeService{volumes: []domain.Volume{{Name: "data1"}}, exportErr: domain.ErrExportFailed}
	m := loadedModel(t, svc, "/tmp")

	m, cmd := update(t, m, key("e"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.False(t, m.State().Loading())
	assert.True(t, m.State().ExportEnabled())
	assert.Empty(t, m.toasts, "service errors are notified by the service itself")
}

func TestModel_ExportPanicClearsFlag(t *testing.T) {
	svc := &fakeService{volumes: []domain.Volume{{Name: "data1"}}, panicWith: "engine crashed"}
	m := loadedModel(t, svc, "/tmp")

	m, cmd := update(t, m, key("e"))
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(exportDoneMsg)
	require.True(t, ok)
	assert.True(t, done.panicked)

	m, _ = update(t, m, msg)
	assert.False(t, m.State().Loading())
	require.Len(t, m.toasts, 1)
	assert.Equal(t, components.ToastError, m.toasts[0].Kind)
	assert.Contains(t, m.toasts[0].Message, "engine crashed")
}

func TestModel_Selection(t *testing.T) {
	svc := &fakeService{volumes: []domain.Volume{{Name: "data1"}}}
	m := loadedModel(t, svc, "/old")

	m, _ = update(t, m, selectionMsg{selection: domain.DirectorySelection{Canceled: true}})
	assert.Equal(t, "/old", m.State().ExportPath())

	m, _ = update(t, m, selectionMsg{selection: domain.DirectorySelection{Paths: []string{"/new", "/other"}}})
	assert.Equal(t, "/new", m.State().ExportPath())
	assert.Contains(t, stripANSI(m.View()), "Export to /new")
}

func TestPickerCommand_RunsPicker(t *testing.T) {
	c := &pickerCommand{ctx: context.Background(), picker: dialog.Static("/srv")}
	require.NoError(t, c.Run())
	assert.Equal(t, []string{"/srv"}, c.selection.Paths)
}

func TestModel_ToastsAreCapped(t *testing.T) {
	m := New(context.Background(), &fakeService{}, dialog.Static(""), "")
	for i := 0; i < maxToasts+2; i++ {
		m, _ = update(t, m, ToastMsg{Kind: components.ToastSuccess, Message: strings.Repeat("x", i+1)})
	}
	require.Len(t, m.toasts, maxToasts)
	assert.Equal(t, strings.Repeat("x", maxToasts+2), m.toasts[maxToasts-1].Message)
}

func TestModel_ViewShowsRows(t *testing.T) {
	svc := &fakeService{volumes: []domain.Volume{{Name: "data1", Driver: "local", Links: 1, Size: "2kB"}}}
	m := loadedModel(t, svc, "")
	m, _ = update(t, m, lookupMsg{Volume: "data1", Containers: "web\ndb\n", Known: true})

	view := stripANSI(m.View())
	assert.Contains(t, view, "data1")
	assert.Contains(t, view, "web, db")
	assert.Contains(t, view, "No export directory selected")
}

func TestRowCells(t *testing.T) {
	cells := RowCells([]domain.Row{
		{Driver: "local", Name: "a", Links: 3, Containers: "x\ny\n", ContainersKnown: true, MountPoint: "/m", Size: "1B"},
		{Driver: "local", Name: "b"},
	})
	assert.Equal(t, []string{"local", "a", "3", "x, y", "/m", "1B"}, cells[0])
	assert.Equal(t, "", cells[1][3])
}

func TestToastSink_QueuesUntilAttached(t *testing.T) {
	sink := NewToastSink()
	sink.Error("early")

	var got []tea.Msg
	sink.Attach(func(msg tea.Msg) { got = append(got, msg) })
	sink.Success("late")

	require.Len(t, got, 2)
	assert.Equal(t, ToastMsg{Kind: components.ToastError, Message: "early"}, got[0])
	assert.Equal(t, ToastMsg{Kind: components.ToastSuccess, Message: "late"}, got[1])

	sink.Detach()
	sink.Error("dropped")
	assert.Len(t, got, 2)
}

func TestToastSink_TakePending(t *testing.T) {
	sink := NewToastSink()
	sink.Error("early")

	pending := sink.takePending()
	require.Len(t, pending, 1)
	assert.Empty(t, sink.takePending())

	var got []tea.Msg
	sink.Attach(func(msg tea.Msg) { got = append(got, msg) })
	assert.Empty(t, got)
}
