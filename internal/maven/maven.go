// internal/maven/maven.go
package maven

import (
	"fmt"

	"mvnship/internal/executil"
)

// Maven drives the external mvn CLI through a Runner.
type Maven struct {
	Runner executil.Runner
}

// Package runs "mvn clean package" in dir. An empty dir means the
// current directory.
func (m Maven) Package(dir string) error {
	fmt.Printf("[mvn] clean package%s\n", inDir(dir))
	return m.Runner.Run(dir, "mvn", "clean", "package")
}

// Clean runs "mvn clean" in dir.
func (m Maven) Clean(dir string) error {
	fmt.Printf("[mvn] clean%s\n", inDir(dir))
	return m.Runner.Run(dir, "mvn", "clean")
}

func inDir(dir string) string {
	if dir == "" {
		return ""
	}
	return " in " + dir
}
