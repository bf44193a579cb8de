package domain

import "sort"

// Volume is a named persistent storage unit managed by the container engine.
type Volume struct {
	Name       string
	Driver     string
	Links      int
	MountPoint string
	Size       string
}

// SortVolumes orders volumes by name, byte-wise ascending.
func SortVolumes(volumes []Volume) {
	sort.SliceStable(volumes, func(i, j int) bool {
		return volumes[i].Name < volumes[j].Name
	})
}

// ContainerIndex maps a volume name to the newline-joined names of the
// containers referencing it. A missing key means the lookup has not resolved.
type ContainerIndex map[string]string

// Merge upserts a single lookup result.
func (idx ContainerIndex) Merge(volumeName, containers string) {
	idx[volumeName] = containers
}

// Lookup is the result of resolving the containers of one volume.
type Lookup struct {
	Volume     string
	Containers string
	// Known is false when the engine call failed outright.
	Known bool
}

// Row is the table projection of a single volume.
type Row struct {
	Driver          string
	Name            string
	Links           int
	Containers      string
	ContainersKnown bool
	MountPoint      string
	Size            string
}

// Operation names a long-running action on a volume.
type Operation string

const (
	OperationExport Operation = "export"
	OperationImport Operation = "import"
	OperationLoad   Operation = "load"
)
