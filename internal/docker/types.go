// internal/docker/types.go
package docker

import "mvnship/internal/executil"

// Client wraps the docker CLI behind a Runner so tests can fake it.
type Client struct {
	Runner executil.Runner
}

type BuildOptions struct {
	Ref         string // fully-qualified repo[:tag]
	Dockerfile  string // default: "Dockerfile"
	ContextPath string // default: "."
	NoCache     bool   // docker build --no-cache
	DryRun      bool   // skip filesystem preconditions
}
