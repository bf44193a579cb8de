// Package validation checks user-supplied image references before they
// reach the container engine.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Repository path components: lowercase alphanumerics separated by single
// '.', '_' or '-'.
var repoNameRegex = regexp.MustCompile(`^[a-z0-9]+(?:[._-][a-z0-9]+)*(?:/[a-z0-9]+(?:[._-][a-z0-9]+)*)*$`)

// Registry host, optionally with a port.
var registryHostRegex = regexp.MustCompile(`^[a-zA-Z0-9]+(?:[.-][a-zA-Z0-9]+)*(?::[0-9]{1,5})?$`)

// Tags: alphanumeric first character, max 128 characters.
var referenceRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,127}$`)

var digestRegex = regexp.MustCompile(`^(sha256:[a-f0-9]{64}|sha512:[a-f0-9]{128})$`)

// MaxRepositoryNameLength is the maximum allowed length for repository names.
const MaxRepositoryNameLength = 256

// ParseImageReference splits an image reference into name and tag or digest.
// Supported formats:
//   - image (tag defaults to "latest")
//   - image:tag
//   - image@sha256:...
//   - registry.example.com:5000/image:tag
func ParseImageReference(imageRef string) (string, string) {
	if idx := strings.Index(imageRef, "@"); idx != -1 {
		return imageRef[:idx], imageRef[idx+1:]
	}

	slashIdx := strings.LastIndex(imageRef, "/")
	if idx := strings.LastIndex(imageRef, ":"); idx != -1 && idx > slashIdx {
		return imageRef[:idx], imageRef[idx+1:]
	}

	return imageRef, "latest"
}

// ValidateImageReference checks that imageRef names a pullable image.
func ValidateImageReference(imageRef string) error {
	if imageRef == "" {
		return fmt.Errorf("image reference cannot be empty")
	}

	name, reference := ParseImageReference(imageRef)
	if err := ValidateReference(reference); err != nil {
		return err
	}

	repo := name
	if host, rest, ok := strings.Cut(name, "/"); ok && isRegistryHost(host) {
		if !registryHostRegex.MatchString(host) {
			return fmt.Errorf("invalid registry host %q", host)
		}
		repo = rest
	}
	return ValidateRepositoryName(repo)
}

// isRegistryHost reports whether the first path component of an image name
// is a registry rather than a repository namespace.
func isRegistryHost(component string) bool {
	return component == "localhost" || strings.ContainsAny(component, ".:")
}

// ValidateRepositoryName validates a repository path without registry host.
func ValidateRepositoryName(name string) error {
	if name == "" {
		return fmt.Errorf("repository name cannot be empty")
	}
	if len(name) > MaxRepositoryNameLength {
		return fmt.Errorf("repository name too long: %d chars (max %d)", len(name), MaxRepositoryNameLength)
	}
	if !repoNameRegex.MatchString(name) {
		return fmt.Errorf("invalid repository name format: must contain only lowercase letters, digits, and separators (., _, -)")
	}
	return nil
}

// ValidateReference validates a tag or digest.
func ValidateReference(reference string) error {
	if reference == "" {
		return fmt.Errorf("reference cannot be empty")
	}
	if IsDigest(reference) {
		return nil
	}
	if !referenceRegex.MatchString(reference) {
		return fmt.Errorf("invalid reference format: must be a valid tag or digest")
	}
	return nil
}

// IsDigest reports whether s is a sha256 or sha512 content digest.
func IsDigest(s string) bool {
	return digestRegex.MatchString(s)
}
