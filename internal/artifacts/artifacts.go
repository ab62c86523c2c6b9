// internal/artifacts/artifacts.go
//
// Populates the local build-context directories the image build expects:
// artifacts/ gets external dependency jars copied out of the local maven
// repository, entitlements/ gets licensing files copied from a configured
// source directory.

package artifacts

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir is where fetched external artifacts land, relative to the build context.
const Dir = "artifacts"

// EntitlementsDir is the local entitlements directory inside the build context.
const EntitlementsDir = "entitlements"

// Fetch ensures every named artifact is present in Dir. Artifacts already
// there are left alone; the rest are located by filename under repoRoot
// (the local maven repository) and copied in. Any miss fails the whole
// fetch.
func Fetch(names []string, repoRoot string) error {
	if len(names) == 0 {
		return nil
	}
	if repoRoot == "" {
		return errors.New("M2 or LOCAL_MAVEN_REPOSITORY must be set when EXTERNAL_ARTIFACTS is configured")
	}
	if st, err := os.Stat(repoRoot); err != nil || !st.IsDir() {
		return fmt.Errorf("maven repository %q not found or not a directory", repoRoot)
	}
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", Dir, err)
	}

	for _, name := range names {
		dest := filepath.Join(Dir, name)
		if _, err := os.Stat(dest); err == nil {
			fmt.Printf("[artifacts] %s already present\n", name)
			continue
		}

		src, err := findByName(repoRoot, name)
		if err != nil {
			return err
		}
		fmt.Printf("[artifacts] copying %s\n", name)
		if err := copyFile(src, dest); err != nil {
			return fmt.Errorf("copying artifact %s: %w", name, err)
		}
	}
	return nil
}

// FetchEntitlements copies the regular files from srcDir into the local
// entitlements directory. No-op when srcDir is not configured.
func FetchEntitlements(srcDir string) error {
	if srcDir == "" {
		return nil
	}
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("reading entitlements source %q: %w", srcDir, err)
	}
	if err := os.MkdirAll(EntitlementsDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", EntitlementsDir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		src := filepath.Join(srcDir, e.Name())
		dest := filepath.Join(EntitlementsDir, e.Name())
		if err := copyFile(src, dest); err != nil {
			return fmt.Errorf("copying entitlement %s: %w", e.Name(), err)
		}
	}
	return nil
}

// findByName walks root for the first regular file whose base name matches.
func findByName(root, name string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree: keep looking elsewhere
			return fs.SkipDir
		}
		if !d.IsDir() && d.Name() == name {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("searching %q for %s: %w", root, name, err)
	}
	if found == "" {
		return "", fmt.Errorf("artifact %q not found under %s", name, root)
	}
	return found, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
