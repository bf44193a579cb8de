package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vackup/internal/adapters/out/ratelimit"
	"github.com/bnema/vackup/internal/boundaries/in/mocks"
	"github.com/bnema/vackup/internal/domain"
)

func newTestServer(t *testing.T, opts Options) (*Server, *mocks.MockVolumeService) {
	t.Helper()
	svc := mocks.NewMockVolumeService(t)
	return NewServer(svc, opts, zerolog.Nop()), svc
}

func do(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_ListVolumes(t *testing.T) {
	s, svc := newTestServer(t, Options{})

	vols := []domain.Volume{
		{Name: "a", Driver: "local", Links: 2, MountPoint: "/m/a", Size: "1GB"},
		{Name: "b", Driver: "local", MountPoint: "/m/b", Size: "10MB"},
	}
	svc.EXPECT().ListVolumes(mock.Anything).Return(vols, nil)
	svc.EXPECT().ResolveContainers(mock.Anything, vols).Return(domain.ContainerIndex{"a": "web\ndb\n"})

	rec := do(t, s, http.MethodGet, "/volumes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var got []VolumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, []string{"web", "db"}, got[0].Containers)
	assert.Equal(t, []string{}, got[1].Containers)
}

func TestServer_ListVolumes_EngineStderr(t *testing.T) {
	s, svc := newTestServer(t, Options{})
	svc.EXPECT().ListVolumes(mock.Anything).Return(nil, domain.ErrEngineStderr)

	rec := do(t, s, http.MethodGet, "/volumes")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestServer_VolumeContainers(t *testing.T) {
	s, svc := newTestServer(t, Options{})
	svc.EXPECT().ContainersForVolume(mock.Anything, "pgdata").Return("db\n", true)
	svc.EXPECT().ContainersForVolume(mock.Anything, "gone").Return("", false)

	rec := do(t, s, http.MethodGet, "/volumes/pgdata/containers")
	require.Equal(t, http.StatusOK, rec.Code)
	var got ContainersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"db"}, got.Containers)

	rec = do(t, s, http.MethodGet, "/volumes/gone/containers")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/volumes/-bad/containers")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Export(t *testing.T) {
	s, svc := newTestServer(t, Options{})
	svc.EXPECT().Export(mock.Anything, "data1", "/home/u/backups").Return(nil).Once()

	rec := do(t, s, http.MethodPost, "/volumes/data1/export?path=/home/u/backups")
	require.Equal(t, http.StatusOK, rec.Code)

	var got OperationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, OperationResponse{Volume: "data1", Operation: domain.OperationExport, Target: "/home/u/backups"}, got)
	assert.Empty(t, s.inflight.Snapshot(), "volume released after the export")
}

func TestServer_Export_RequiresPath(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	rec := do(t, s, http.MethodPost, "/volumes/data1/export")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Export_FailureReleasesVolume(t *testing.T) {
	s, svc := newTestServer(t, Options{})
	svc.EXPECT().Export(mock.Anything, "data1", "/tmp").Return(&domain.EngineError{Code: 125})

	rec := do(t, s, http.MethodPost, "/volumes/data1/export?path=/tmp")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, s.inflight.Snapshot())
}

func TestServer_SecondOperationOnBusyVolumeConflicts(t *testing.T) {
	s, svc := newTestServer(t, Options{})

	started := make(chan struct{})
	release := make(chan struct{})
	svc.EXPECT().Export(mock.Anything, "data1", "/tmp").RunAndReturn(func(context.Context, string, string) error {
		close(started)
		<-release
		return nil
	}).Once()

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- do(t, s, http.MethodPost, "/volumes/data1/export?path=/tmp")
	}()
	<-started

	rec := do(t, s, http.MethodGet, "/progress")
	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot map[string]Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, domain.OperationExport, snapshot["data1"].Operation)

	rec = do(t, s, http.MethodPost, "/volumes/data1/load?image=seed:1")
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(release)
	first := <-done
	assert.Equal(t, http.StatusOK, first.Code)
}

func TestServer_ImportAndLoad(t *testing.T) {
	s, svc := newTestServer(t, Options{})
	svc.EXPECT().Import(mock.Anything, "pgdata", "/backups/pgdata.tar.gz").Return(nil)
	svc.EXPECT().LoadFromImage(mock.Anything, "pgdata", "example/seed:1").Return(domain.ErrInvalidImage)

	rec := do(t, s, http.MethodPost, "/volumes/pgdata/import?path=/backups/pgdata.tar.gz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPost, "/volumes/pgdata/load?image=example/seed:1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/volumes/pgdata/load")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RateLimit(t *testing.T) {
	s, svc := newTestServer(t, Options{Limiter: ratelimit.NewMemoryStore(0.001, 1, zerolog.Nop())})
	svc.EXPECT().ContainersForVolume(mock.Anything, "a").Return("", true).Once()

	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/volumes/a/containers").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, s, http.MethodGet, "/volumes/a/containers").Code)
}

func TestServer_RecoversFromPanics(t *testing.T) {
	s, svc := newTestServer(t, Options{})
	svc.EXPECT().ListVolumes(mock.Anything).RunAndReturn(func(context.Context) ([]domain.Volume, error) {
		panic("boom")
	})

	rec := do(t, s, http.MethodGet, "/volumes")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_ServeOnUnixSocket(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "vackup.sock")
	s, svc := newTestServer(t, Options{Socket: socket})
	svc.EXPECT().ListVolumes(mock.Anything).Return([]domain.Volume{}, nil)
	svc.EXPECT().ResolveContainers(mock.Anything, mock.Anything).Return(domain.ContainerIndex{})

	ln, err := s.Listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- s.Serve(ctx, ln) }()

	client := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socket)
			},
		},
	}
	resp, err := client.Get("http://vackup/volumes")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	require.NoError(t, <-served)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(domain.ErrArchiveNotFound))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(domain.ErrEngineUnavailable))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("x")))
}

func TestProgress_BeginEnd(t *testing.T) {
	p := NewProgress()
	require.NoError(t, p.Begin("v", domain.OperationImport))
	assert.ErrorIs(t, p.Begin("v", domain.OperationExport), domain.ErrVolumeBusy)
	require.NoError(t, p.Begin("w", domain.OperationExport))
	p.End("v")
	require.NoError(t, p.Begin("v", domain.OperationLoad))
	assert.Len(t, p.Snapshot(), 2)
}
