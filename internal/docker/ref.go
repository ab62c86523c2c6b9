// internal/docker/ref.go
package docker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/distribution/reference"
)

// BuildRef composes the fully-qualified image reference from its parts:
// [registry/][namespace/]repository[:tag]. Empty registry and namespace
// segments are omitted; the tag suffix is appended only when tag is
// non-empty. The composed string is validated as a well-formed docker
// reference so a bad config fails here instead of inside docker build.
func BuildRef(registry, namespace, repository, tag string) (string, error) {
	registry = strings.TrimSpace(registry)
	namespace = strings.TrimSpace(namespace)
	repository = strings.TrimSpace(repository)
	tag = strings.TrimSpace(tag)

	if repository == "" {
		return "", errors.New("image repository must not be empty")
	}

	parts := make([]string, 0, 3)
	if registry != "" {
		parts = append(parts, registry)
	}
	if namespace != "" {
		parts = append(parts, namespace)
	}
	parts = append(parts, repository)

	ref := strings.Join(parts, "/")
	if tag != "" {
		ref += ":" + tag
	}

	if _, err := reference.ParseNormalizedNamed(ref); err != nil {
		return "", fmt.Errorf("invalid image reference %q: %w", ref, err)
	}
	return ref, nil
}
