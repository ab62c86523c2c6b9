// internal/docker/push.go
package docker

import (
	"errors"
	"fmt"
	"strings"
)

// Push pushes a single ref. Registry credentials are the local docker
// daemon's problem; this tool never handles them.
func (c Client) Push(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errors.New("Push: no image reference")
	}
	fmt.Printf("[docker] pushing %s\n", ref)
	return c.Runner.Run("", "docker", "push", ref)
}
