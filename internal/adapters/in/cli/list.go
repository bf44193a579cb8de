package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/vackup/internal/adapters/in/cli/ui/components"
	uipanel "github.com/bnema/vackup/internal/adapters/in/cli/ui/panel"
	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/internal/usecase/panel"
	"github.com/bnema/vackup/internal/usecase/volumes"
)

// Output formats of the list command.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// volumeRecord is a volume as printed by list -o json|yaml.
type volumeRecord struct {
	Driver     string   `json:"driver" yaml:"driver"`
	Name       string   `json:"name" yaml:"name"`
	Links      int      `json:"links" yaml:"links"`
	Containers []string `json:"containers" yaml:"containers"`
	MountPoint string   `json:"mountpoint" yaml:"mountpoint"`
	Size       string   `json:"size" yaml:"size"`
}

// newListCmd creates the list command.
func newListCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List volumes with their containers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputTable, outputJSON, outputYAML:
			default:
				return fmt.Errorf("%w: unknown output format %q", domain.ErrInvalidOperation, output)
			}

			a, err := newApp(cmd.Context(), opts, cmd.ErrOrStderr(), terminalNotifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := a.Context(cmd.Context())
			vols, err := a.Volumes.ListVolumes(ctx)
			if err != nil {
				return err
			}
			idx := a.Volumes.ResolveContainers(ctx, vols)

			return renderVolumes(cmd.OutOrStdout(), output, vols, idx)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}

// volumeRows projects volumes and their lookups the same way the panel does.
func volumeRows(vols []domain.Volume, idx domain.ContainerIndex) []domain.Row {
	state := panel.New("")
	state.ApplyVolumes(vols)
	for name, containers := range idx {
		state.ApplyLookup(domain.Lookup{Volume: name, Containers: containers, Known: true})
	}
	return state.Rows()
}

func renderVolumes(w io.Writer, format string, vols []domain.Volume, idx domain.ContainerIndex) error {
	rows := volumeRows(vols, idx)

	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(rows))
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(rows)); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(rows) == 0 {
		return cliWriteLine(w, cliRenderMuted("No volumes found"))
	}

	if err := cliWriteLine(w, components.VolumeTable(uipanel.RowCells(rows))); err != nil {
		return err
	}
	summary := fmt.Sprintf("%d volumes, %s", len(rows), units.HumanSize(float64(volumes.TotalSize(vols))))
	return cliWriteLine(w, cliRenderMeta("Total:", summary))
}

func toRecords(rows []domain.Row) []volumeRecord {
	records := make([]volumeRecord, 0, len(rows))
	for _, r := range rows {
		containers := []string{}
		for _, n := range strings.Split(r.Containers, "\n") {
			if n = strings.TrimSpace(n); n != "" {
				containers = append(containers, n)
			}
		}
		records = append(records, volumeRecord{
			Driver:     r.Driver,
			Name:       r.Name,
			Links:      r.Links,
			Containers: containers,
			MountPoint: r.MountPoint,
			Size:       r.Size,
		})
	}
	return records
}
