package domain

import (
	"fmt"
	"strings"
)

// CommandResult holds the captured output of an engine CLI invocation.
type CommandResult struct {
	Stdout string
	Stderr string
}

// EngineError is returned when an engine invocation fails to start or exits non-zero.
type EngineError struct {
	// Code is the process exit code, -1 when the process never ran.
	Code   int
	Stderr string
	Err    error
}

func (e *EngineError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	switch {
	case stderr != "" && e.Err != nil:
		return fmt.Sprintf("engine exited with code %d: %s: %v", e.Code, stderr, e.Err)
	case stderr != "":
		return fmt.Sprintf("engine exited with code %d: %s", e.Code, stderr)
	case e.Err != nil:
		return fmt.Sprintf("engine exited with code %d: %v", e.Code, e.Err)
	default:
		return fmt.Sprintf("engine exited with code %d", e.Code)
	}
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// DirectorySelection is the answer of a directory picker.
type DirectorySelection struct {
	Canceled bool
	Paths    []string
}
