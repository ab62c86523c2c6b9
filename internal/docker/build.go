// internal/docker/build.go
package docker

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Build runs docker build for the single ref in opts. The build context
// defaults to the current directory; the Dockerfile must exist there
// (skipped under dry-run, where nothing touches the filesystem).
func (c Client) Build(opts BuildOptions) error {
	ref := strings.TrimSpace(opts.Ref)
	if ref == "" {
		return errors.New("Build: no image reference")
	}

	df := strings.TrimSpace(opts.Dockerfile)
	if df == "" {
		df = "Dockerfile"
	}
	ctxPath := strings.TrimSpace(opts.ContextPath)
	if ctxPath == "" {
		ctxPath = "."
	}

	// Only validate filesystem when not in dry-run
	if !opts.DryRun {
		if st, err := os.Stat(df); err != nil || st.IsDir() {
			return fmt.Errorf("Build: Dockerfile %q not found or not a file", df)
		}
		if st, err := os.Stat(ctxPath); err != nil || !st.IsDir() {
			return fmt.Errorf("Build: context %q not found or not a directory", ctxPath)
		}
	}

	args := []string{"build", "-t", ref}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	args = append(args, "-f", df, ctxPath)

	fmt.Printf("[docker] building %s\n", ref)
	return c.Runner.Run("", "docker", args...)
}
