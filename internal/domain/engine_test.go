package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineError_Error(t *testing.T) {
	cause := errors.New("exit status 125")

	tests := []struct {
		name string
		err  *EngineError
		want string
	}{
		{name: "stderr and cause", err: &EngineError{Code: 125, Stderr: "no such volume\n", Err: cause}, want: "engine exited with code 125: no such volume: exit status 125"},
		{name: "stderr only", err: &EngineError{Code: 1, Stderr: "boom"}, want: "engine exited with code 1: boom"},
		{name: "cause only", err: &EngineError{Code: -1, Err: cause}, want: "engine exited with code -1: exit status 125"},
		{name: "bare", err: &EngineError{Code: 2}, want: "engine exited with code 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestEngineError_UnwrapsThroughWrapping(t *testing.T) {
	cause := errors.New("fork/exec docker: no such file or directory")
	wrapped := fmt.Errorf("list volumes: %w", &EngineError{Code: -1, Err: cause})

	var engineErr *EngineError
	require.ErrorAs(t, wrapped, &engineErr)
	assert.Equal(t, -1, engineErr.Code)
	assert.ErrorIs(t, wrapped, cause)
}
