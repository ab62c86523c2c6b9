// internal/docker/dangling.go
package docker

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Dangling returns the IDs of local images with no tag. docker repeats
// an ID when several dangling layers share it, so the list is deduped.
func (c Client) Dangling() ([]string, error) {
	out, err := c.Runner.Output("", "docker", "images", "--filter", "dangling=true", "--quiet")
	if err != nil {
		return nil, fmt.Errorf("listing dangling images: %w", err)
	}
	return lo.Uniq(strings.Fields(out)), nil
}

// RemoveImages removes the given image IDs. No-op for an empty list.
func (c Client) RemoveImages(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	args := append([]string{"rmi"}, ids...)
	return c.Runner.Run("", "docker", args...)
}
