// mvnship main entrypoint
//
// Local developer tool that builds a container image out of a Maven
// project and optionally pushes it, plus cleanup/archival helpers.
// All real work is done by external tools (mvn, docker, zip); this
// binary sequences them and folds any failure into exit code 1.
//
// Keep this file simple: parse args, load config, run one workflow.
// The heavy lifting stays internal.

package main

import (
	"fmt"
	"log"
	"os"

	"mvnship/internal/cli"
	"mvnship/internal/config"
	"mvnship/internal/executil"
	"mvnship/internal/workflow"
)

func main() {
	// 1) Parse the invocation
	opts := cli.Parse(os.Args[1:])
	if opts.Command == cli.Help {
		fmt.Print(cli.Usage())
		return
	}

	// 2) Pick the runner (real or dry-run)
	var runner executil.Runner = executil.System{}
	if opts.DryRun {
		runner = executil.DryRunner{}
	}

	// 3) Load configuration; dangling is the only workflow that needs none
	var cfg config.Config
	if opts.Command != cli.Dangling {
		c, err := config.Load(config.FileName)
		if err != nil {
			fatal(err)
		}
		cfg = c
		if opts.Verbose {
			log.Printf("[mvnship] config: %+v", cfg)
		}
	}

	// 4) Dispatch
	w := &workflow.Workflow{
		Config:    cfg,
		Runner:    runner,
		BuildJava: opts.Java,
		Push:      opts.Push,
		NoCache:   opts.NoCache,
		DryRun:    opts.DryRun,
		Verbose:   opts.Verbose,
	}

	var err error
	switch opts.Command {
	case cli.Build:
		err = w.Build()
	case cli.Clean:
		err = w.Clean()
	case cli.Zip:
		err = w.Zip()
	case cli.Dangling:
		err = w.Dangling()
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[error]: %v\n", err)
	os.Exit(1)
}
