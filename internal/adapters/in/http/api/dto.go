package api

import (
	"strings"

	"github.com/bnema/vackup/internal/domain"
)

// VolumeResponse is a volume row as served over HTTP.
type VolumeResponse struct {
	Driver     string   `json:"driver"`
	Name       string   `json:"name"`
	Links      int      `json:"links"`
	Containers []string `json:"containers"`
	MountPoint string   `json:"mountpoint"`
	Size       string   `json:"size"`
}

// ContainersResponse lists the containers using a volume.
type ContainersResponse struct {
	Volume     string   `json:"volume"`
	Containers []string `json:"containers"`
}

// OperationResponse reports a completed operation.
type OperationResponse struct {
	Volume    string           `json:"volume"`
	Operation domain.Operation `json:"operation"`
	Target    string           `json:"target"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func toVolumeResponses(vols []domain.Volume, idx domain.ContainerIndex) []VolumeResponse {
	resp := make([]VolumeResponse, 0, len(vols))
	for _, v := range vols {
		resp = append(resp, VolumeResponse{
			Driver:     v.Driver,
			Name:       v.Name,
			Links:      v.Links,
			Containers: splitNames(idx[v.Name]),
			MountPoint: v.MountPoint,
			Size:       v.Size,
		})
	}
	return resp
}

func splitNames(joined string) []string {
	names := []string{}
	for _, n := range strings.Split(joined, "\n") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
