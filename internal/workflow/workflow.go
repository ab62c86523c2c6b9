// internal/workflow/workflow.go
//
// Sequences the build/clean/zip/dangling workflows over the loaded
// configuration and an injected Runner. Each workflow is a plain method
// returning an error; the entrypoint turns any error into exit 1.

package workflow

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mvnship/internal/artifacts"
	"mvnship/internal/config"
	"mvnship/internal/docker"
	"mvnship/internal/executil"
	"mvnship/internal/maven"
)

type Workflow struct {
	Config config.Config
	Runner executil.Runner

	BuildJava bool // run mvn clean package before the image build
	Push      bool // push after build (still gated on a configured registry)
	NoCache   bool // docker build --no-cache
	DryRun    bool
	Verbose   bool
}

// Build runs the full build sequence: maven build, fetch inputs, image
// build, optional push. Every failure is fatal to the invocation.
func (w *Workflow) Build() error {
	if w.BuildJava {
		m := maven.Maven{Runner: w.Runner}
		if err := m.Package(w.Config.JavaProjectDir); err != nil {
			return fmt.Errorf("java build failed: %w", err)
		}
	} else {
		w.debugf("skipping java build (--no-java)")
	}

	// The image build needs a Dockerfile in the current directory.
	if !w.DryRun {
		if st, err := os.Stat("Dockerfile"); err != nil || st.IsDir() {
			return fmt.Errorf("no Dockerfile in the current directory")
		}
	}

	if w.DryRun {
		w.debugf("dry-run: skipping artifact and entitlement fetch")
	} else {
		if err := artifacts.Fetch(w.Config.ExternalArtifacts, w.Config.MavenRepository); err != nil {
			return err
		}
		if err := artifacts.FetchEntitlements(w.Config.EntitlementsDir); err != nil {
			return err
		}
	}

	ref, err := docker.BuildRef(w.Config.ImageRegistry, w.Config.ImageNamespace,
		w.Config.ImageRepository, w.Config.ImageTag)
	if err != nil {
		return err
	}

	d := docker.Client{Runner: w.Runner}
	if err := d.Build(docker.BuildOptions{Ref: ref, NoCache: w.NoCache, DryRun: w.DryRun}); err != nil {
		return fmt.Errorf("image build failed: %w", err)
	}

	switch {
	case !w.Push:
		w.debugf("push skipped (--no-push)")
	case w.Config.ImageRegistry == "":
		w.debugf("push skipped (no IMAGE_REGISTRY configured)")
	default:
		if err := d.Push(ref); err != nil {
			return fmt.Errorf("image push failed: %w", err)
		}
	}

	fmt.Println("[mvnship] all ok")
	return nil
}

// Clean removes the local entitlements directory and runs mvn clean in
// the configured java project. Sub-step failures are warnings only.
func (w *Workflow) Clean() error {
	if _, err := os.Stat(artifacts.EntitlementsDir); err == nil {
		if w.DryRun {
			fmt.Printf("[DRY RUN] would remove %s\n", artifacts.EntitlementsDir)
		} else {
			fmt.Printf("[clean] removing %s\n", artifacts.EntitlementsDir)
			if err := os.RemoveAll(artifacts.EntitlementsDir); err != nil {
				fmt.Fprintf(os.Stderr, "warning: removing %s: %v\n", artifacts.EntitlementsDir, err)
			}
		}
	}

	if w.Config.JavaProjectDir != "" {
		m := maven.Maven{Runner: w.Runner}
		if err := m.Clean(w.Config.JavaProjectDir); err != nil {
			fmt.Fprintf(os.Stderr, "warning: mvn clean: %v\n", err)
		}
	}
	return nil
}

// Zip cleans, then archives the current directory to ../<dirname>.zip,
// leaving IDE metadata (*.iml) out.
func (w *Workflow) Zip() error {
	if err := w.Clean(); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	target := filepath.Join("..", filepath.Base(wd)+".zip")

	fmt.Printf("[zip] archiving to %s\n", target)
	if err := w.Runner.Run("", "zip", "-r", target, ".", "-x", "*.iml"); err != nil {
		return fmt.Errorf("archive failed: %w", err)
	}
	return nil
}

// Dangling removes local images that have no tag. Needs no configuration.
func (w *Workflow) Dangling() error {
	d := docker.Client{Runner: w.Runner}
	ids, err := d.Dangling()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("[docker] no dangling images found")
		return nil
	}
	fmt.Printf("[docker] removing %d dangling image(s)\n", len(ids))
	return d.RemoveImages(ids)
}

func (w *Workflow) debugf(format string, args ...any) {
	if w.Verbose {
		log.Printf("[mvnship] "+format, args...)
	}
}
