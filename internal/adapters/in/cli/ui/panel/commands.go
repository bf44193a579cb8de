package panel

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/vackup/internal/boundaries/in"
	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/internal/domain"
)

func listCmd(ctx context.Context, svc in.VolumeService) tea.Cmd {
	return func() tea.Msg {
		volumes, err := svc.ListVolumes(ctx)
		return volumesMsg{volumes: volumes, err: err}
	}
}

func lookupCmd(ctx context.Context, svc in.VolumeService, volumeName string) tea.Cmd {
	return func() tea.Msg {
		names, known := svc.ContainersForVolume(ctx, volumeName)
		return lookupMsg{Volume: volumeName, Containers: names, Known: known}
	}
}

// exportCmd always produces an exportDoneMsg, even when the export panics,
// so the loading flag is released.
func exportCmd(ctx context.Context, svc in.VolumeService, volumeName, exportPath string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = exportDoneMsg{
					volume:   volumeName,
					err:      fmt.Errorf("Failed to backup volume %s to %s: %v", volumeName, exportPath, r),
					panicked: true,
				}
			}
		}()

		err := svc.Export(ctx, volumeName, exportPath)
		return exportDoneMsg{volume: volumeName, err: err}
	}
}

// pickCmd hands the terminal to the picker while it runs.
func pickCmd(ctx context.Context, picker out.DirectoryPicker) tea.Cmd {
	c := &pickerCommand{ctx: ctx, picker: picker}
	return tea.Exec(c, func(err error) tea.Msg {
		if err != nil {
			return selectionMsg{err: err}
		}
		return selectionMsg{selection: c.selection}
	})
}

// pickerCommand adapts a DirectoryPicker to tea.ExecCommand.
type pickerCommand struct {
	ctx       context.Context
	picker    out.DirectoryPicker
	selection domain.DirectorySelection
}

func (c *pickerCommand) Run() error {
	sel, err := c.picker.PickDirectory(c.ctx)
	if err != nil {
		return err
	}
	c.selection = sel
	return nil
}

func (c *pickerCommand) SetStdin(io.Reader)  {}
func (c *pickerCommand) SetStdout(io.Writer) {}
func (c *pickerCommand) SetStderr(io.Writer) {}
