package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bnema/vackup/internal/domain"
)

func sampleVolumes() ([]domain.Volume, domain.ContainerIndex) {
	vols := []domain.Volume{
		{Name: "web_data", Driver: "local", Links: 1, MountPoint: "/var/lib/docker/volumes/web_data/_data", Size: "1.5MB"},
		{Name: "db_data", Driver: "local", Links: 2, MountPoint: "/var/lib/docker/volumes/db_data/_data", Size: "2MB"},
		{Name: "cache", Driver: "local", MountPoint: "/var/lib/docker/volumes/cache/_data", Size: "N/A"},
	}
	idx := domain.ContainerIndex{
		"db_data":  "postgres\nadminer\n",
		"web_data": "nginx\n",
	}
	return vols, idx
}

func TestRenderVolumes_JSON(t *testing.T) {
	vols, idx := sampleVolumes()

	var buf bytes.Buffer
	require.NoError(t, renderVolumes(&buf, outputJSON, vols, idx))

	var got []volumeRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "cache", got[0].Name)
	assert.Empty(t, got[0].Containers)
	assert.Equal(t, "db_data", got[1].Name)
	assert.Equal(t, []string{"postgres", "adminer"}, got[1].Containers)
	assert.Equal(t, "web_data", got[2].Name)
}

func TestRenderVolumes_YAML(t *testing.T) {
	vols, idx := sampleVolumes()

	var buf bytes.Buffer
	require.NoError(t, renderVolumes(&buf, outputYAML, vols, idx))

	var got []volumeRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[1].Links)
	assert.Equal(t, "/var/lib/docker/volumes/web_data/_data", got[2].MountPoint)
}

func TestRenderVolumes_Table(t *testing.T) {
	vols, idx := sampleVolumes()

	var buf bytes.Buffer
	require.NoError(t, renderVolumes(&buf, outputTable, vols, idx))

	out := buf.String()
	assert.Contains(t, out, "Volume name")
	assert.Contains(t, out, "db_data")
	assert.Contains(t, out, "postgres, adminer")
	assert.Contains(t, out, "3 volumes, 3.5MB")
}

func TestRenderVolumes_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderVolumes(&buf, outputTable, nil, domain.ContainerIndex{}))
	assert.Contains(t, buf.String(), "No volumes found")
}

func TestVolumeRows_DoesNotMutateInput(t *testing.T) {
	vols, idx := sampleVolumes()
	_ = volumeRows(vols, idx)
	assert.Equal(t, "web_data", vols[0].Name)
}
