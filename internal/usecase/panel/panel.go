// Package panel holds the state behind the interactive volume export panel.
//
// A Panel is owned by a single event loop. Lookups and exports run
// elsewhere and report back through the Apply and Finish methods, so the
// state itself needs no locking.
package panel

import (
	"github.com/bnema/vackup/internal/domain"
)

// Panel is the in-memory state of one panel session.
type Panel struct {
	volumes    []domain.Volume
	containers domain.ContainerIndex
	exportPath string
	loading    bool
	exporting  string
}

// New creates an empty panel. initialPath may be empty.
func New(initialPath string) *Panel {
	return &Panel{
		containers: make(domain.ContainerIndex),
		exportPath: initialPath,
	}
}

// ApplyVolumes replaces the volume set with a sorted copy of volumes.
// The container index is kept: entries are never removed.
func (p *Panel) ApplyVolumes(volumes []domain.Volume) {
	sorted := make([]domain.Volume, len(volumes))
	copy(sorted, volumes)
	domain.SortVolumes(sorted)
	p.volumes = sorted
}

// ApplyLookup merges one container lookup into the index. Unknown results
// leave the cell blank.
func (p *Panel) ApplyLookup(lookup domain.Lookup) {
	if !lookup.Known {
		return
	}
	p.containers.Merge(lookup.Volume, lookup.Containers)
}

// ApplySelection updates the export path from a directory picker result.
// It reports whether the path changed.
func (p *Panel) ApplySelection(sel domain.DirectorySelection) bool {
	if p.loading || sel.Canceled || len(sel.Paths) == 0 || sel.Paths[0] == "" {
		return false
	}
	changed := p.exportPath != sel.Paths[0]
	p.exportPath = sel.Paths[0]
	return changed
}

// BeginExport marks an export of volumeName as in flight and returns the
// destination directory to use.
func (p *Panel) BeginExport(volumeName string) (string, error) {
	if p.exportPath == "" {
		return "", domain.ErrNoExportPath
	}
	if p.loading {
		return "", domain.ErrExportInFlight
	}
	p.loading = true
	p.exporting = volumeName
	return p.exportPath, nil
}

// FinishExport clears the loading flag. It is safe to call when no export
// is running.
func (p *Panel) FinishExport() {
	p.loading = false
	p.exporting = ""
}

// Rows projects the current state into display rows, sorted by name.
func (p *Panel) Rows() []domain.Row {
	rows := make([]domain.Row, 0, len(p.volumes))
	for _, v := range p.volumes {
		names, known := p.containers[v.Name]
		rows = append(rows, domain.Row{
			Driver:          v.Driver,
			Name:            v.Name,
			Links:           v.Links,
			Containers:      names,
			ContainersKnown: known,
			MountPoint:      v.MountPoint,
			Size:            v.Size,
		})
	}
	return rows
}

// Volumes returns the current sorted volume set.
func (p *Panel) Volumes() []domain.Volume {
	return p.volumes
}

// ExportPath returns the session-wide export directory.
func (p *Panel) ExportPath() string { return p.exportPath }

// Loading reports whether an export is in flight.
func (p *Panel) Loading() bool { return p.loading }

// Exporting returns the name of the volume being exported, if any.
func (p *Panel) Exporting() string { return p.exporting }

// ExportEnabled reports whether the export action can be triggered.
func (p *Panel) ExportEnabled() bool {
	return p.exportPath != "" && !p.loading
}

// CanPickDirectory reports whether the directory picker may be opened.
func (p *Panel) CanPickDirectory() bool {
	return !p.loading
}
