// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

// Container represents a container referencing a volume.
type Container struct {
	ID     string
	Name   string
	Image  string
	State  string
	Labels map[string]string
}

// Running reports whether the engine considers the container running.
func (c Container) Running() bool {
	return c.State == "running"
}

// HelperSpec describes a throwaway container run to completion against a volume.
type HelperSpec struct {
	Image string
	Cmd   []string
	// Binds are engine bind specifications, "<source>:<target>[:mode]".
	Binds []string
}

// HelperResult holds the outcome of a helper container run.
type HelperResult struct {
	ExitCode int64
	Stdout   []byte
	Stderr   []byte
}
