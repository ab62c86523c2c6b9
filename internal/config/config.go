// internal/config/config.go
//
// Loads the flat key=value configuration file into an immutable Config.
// Workflows receive the struct; nothing downstream reads the process
// environment or the file again.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// FileName is the fixed relative path the configuration is read from.
const FileName = "mvnship.conf"

// Config is the per-invocation configuration. Load validates it once;
// empty optional fields carry their documented fallback meaning
// (empty registry: never push; empty tag: no tag suffix).
type Config struct {
	ImageRegistry   string
	ImageNamespace  string
	ImageRepository string
	ImageTag        string

	// ExternalArtifacts is the parsed EXTERNAL_ARTIFACTS list
	// (space-separated filenames in the file).
	ExternalArtifacts []string

	EntitlementsDir string
	JavaProjectDir  string

	// MavenRepository is M2, falling back to LOCAL_MAVEN_REPOSITORY.
	// May be empty; the artifact fetch fails only when it needs it.
	MavenRepository string
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("configuration file %s not found", path)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	get := func(key string) string {
		return strings.TrimSpace(values[key])
	}

	cfg := Config{
		ImageRegistry:     get("IMAGE_REGISTRY"),
		ImageNamespace:    get("IMAGE_NAMESPACE"),
		ImageRepository:   get("IMAGE_REPOSITORY"),
		ImageTag:          get("IMAGE_TAG"),
		ExternalArtifacts: lo.Uniq(strings.Fields(values["EXTERNAL_ARTIFACTS"])),
		EntitlementsDir:   get("ENTITLEMENTS_DIR"),
		JavaProjectDir:    get("JAVA_PROJECT_DIR"),
		MavenRepository:   firstNonEmpty(get("M2"), get("LOCAL_MAVEN_REPOSITORY")),
	}

	if cfg.ImageRepository == "" {
		return Config{}, errors.New("IMAGE_REPOSITORY must be set in " + path)
	}
	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
