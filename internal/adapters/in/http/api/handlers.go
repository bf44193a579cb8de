package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bnema/vackup/internal/domain"
	"github.com/bnema/vackup/internal/usecase/volumes"
	"github.com/bnema/vackup/pkg/logger"
)

func (s *Server) listVolumes(c echo.Context) error {
	ctx := c.Request().Context()

	vols, err := s.svc.ListVolumes(ctx)
	if err != nil {
		return s.fail(c, err)
	}
	idx := s.svc.ResolveContainers(ctx, vols)

	return c.JSON(http.StatusOK, toVolumeResponses(vols, idx))
}

func (s *Server) volumeContainers(c echo.Context) error {
	name := c.Param("volume")
	if err := volumes.ValidateVolumeName(name); err != nil {
		return s.fail(c, err)
	}

	names, known := s.svc.ContainersForVolume(c.Request().Context(), name)
	if !known {
		return s.fail(c, domain.ErrVolumeNotFound)
	}
	return c.JSON(http.StatusOK, ContainersResponse{Volume: name, Containers: splitNames(names)})
}

func (s *Server) exportVolume(c echo.Context) error {
	name := c.Param("volume")
	target := strings.TrimSpace(c.QueryParam("path"))
	if target == "" {
		return s.fail(c, domain.ErrNoExportPath)
	}

	return s.runOperation(c, name, domain.OperationExport, target, func() error {
		return s.svc.Export(c.Request().Context(), name, target)
	})
}

func (s *Server) importVolume(c echo.Context) error {
	name := c.Param("volume")
	archive := strings.TrimSpace(c.QueryParam("path"))
	if archive == "" {
		return s.fail(c, domain.ErrArchiveNotFound)
	}

	return s.runOperation(c, name, domain.OperationImport, archive, func() error {
		return s.svc.Import(c.Request().Context(), name, archive)
	})
}

func (s *Server) loadVolume(c echo.Context) error {
	name := c.Param("volume")
	image := strings.TrimSpace(c.QueryParam("image"))
	if image == "" {
		return s.fail(c, domain.ErrInvalidImage)
	}

	return s.runOperation(c, name, domain.OperationLoad, image, func() error {
		return s.svc.LoadFromImage(c.Request().Context(), name, image)
	})
}

func (s *Server) progress(c echo.Context) error {
	return c.JSON(http.StatusOK, s.inflight.Snapshot())
}

// runOperation holds the volume in the progress cache while fn runs.
func (s *Server) runOperation(c echo.Context, name string, op domain.Operation, target string, fn func() error) error {
	if err := volumes.ValidateVolumeName(name); err != nil {
		return s.fail(c, err)
	}
	if err := s.inflight.Begin(name, op); err != nil {
		return s.fail(c, err)
	}
	defer s.inflight.End(name)

	log := logger.FromCtx(c.Request().Context())
	log.Info().Str(logger.FieldVolume, name).Str(logger.FieldAction, string(op)).Msg("operation started")

	if err := fn(); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, OperationResponse{Volume: name, Operation: op, Target: target})
}

func (s *Server) fail(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.FromCtx(c.Request().Context()).Error().Err(err).Msg("request failed")
	}
	return c.JSON(status, ErrorResponse{
		Error:     err.Error(),
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

func statusFor(err error) int {
	var engineErr *domain.EngineError
	switch {
	case errors.Is(err, domain.ErrInvalidVolume),
		errors.Is(err, domain.ErrNoExportPath),
		errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrVolumeNotFound),
		errors.Is(err, domain.ErrArchiveNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVolumeBusy):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEngineUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrEngineStderr),
		errors.Is(err, domain.ErrExportFailed),
		errors.Is(err, domain.ErrImportFailed),
		errors.Is(err, domain.ErrLoadFailed),
		errors.As(err, &engineErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
