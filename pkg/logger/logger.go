// Package logger carries a zerolog logger through context.Context and
// defines the field names shared by every layer.
package logger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Common field names.
const (
	FieldLayer     = "layer"
	FieldAdapter   = "adapter"
	FieldUseCase   = "usecase"
	FieldComponent = "component"
	FieldAction    = "action"
	FieldVolume    = "volume"
	FieldPath      = "path"
	FieldImage     = "image"
	FieldEntityID  = "entity_id"
	FieldCount     = "count"
	FieldDuration  = "duration"
	FieldMethod    = "method"
	FieldStatus    = "status"
)

// CtxWithFields returns a context whose logger carries the given fields on top
// of the fields already attached to ctx.
func CtxWithFields(ctx context.Context, fields map[string]any) context.Context {
	l := FromCtx(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

// WithCtx attaches log to ctx.
func WithCtx(ctx context.Context, log zerolog.Logger) context.Context {
	return log.WithContext(ctx)
}

// FromCtx returns the logger stored in ctx, or zerolog's default context logger.
func FromCtx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WrapErr logs err at error level and returns it wrapped with msg.
func WrapErr(log *zerolog.Logger, err error, msg string) error {
	log.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
