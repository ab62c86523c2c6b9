// internal/cli/cli.go
//
// Argument scanning for the mvnship entrypoint. The surface is
// deliberately forgiving: tokens are scanned in order, unrecognized
// tokens are ignored, the last command token wins, and help stops the
// scan. cobra/pflag-style strict parsing would reject half the invocations
// this tool has to accept, so the scanner is a plain loop.

package cli

import "strings"

// Command selects which workflow runs.
type Command string

const (
	Help     Command = "help"
	Build    Command = "build"
	Clean    Command = "clean"
	Dangling Command = "dangling"
	Zip      Command = "zip"
)

// Options is the parsed invocation: one command plus independent switches.
type Options struct {
	Command Command

	Push    bool // push after build (default true, cleared by --no-push)
	Java    bool // run the maven build first (default true, cleared by --no-java)
	NoCache bool // docker build --no-cache
	DryRun  bool // print external commands instead of executing
	Verbose bool // debug logging
}

// Parse scans args into Options. It never fails: no command token means
// help, and anything it does not recognize is skipped.
func Parse(args []string) Options {
	opts := Options{Command: Help, Push: true, Java: true}
	for _, arg := range args {
		switch arg {
		case "help", "--help":
			opts.Command = Help
			return opts
		case "build":
			opts.Command = Build
		case "clean":
			opts.Command = Clean
		case "dangling":
			opts.Command = Dangling
		case "zip":
			opts.Command = Zip
		case "--no-push":
			opts.Push = false
		case "--no-java":
			opts.Java = false
		case "--no-cache":
			opts.NoCache = true
		case "--dry-run":
			opts.DryRun = true
		case "-v":
			opts.Verbose = true
		}
	}
	return opts
}

// Usage returns the help text printed by the help command.
func Usage() string {
	lines := []string{
		"mvnship - build and ship a container image from a Maven project",
		"",
		"Usage:",
		"  mvnship [build|clean|dangling|zip|help] [flags]",
		"",
		"Commands:",
		"  build      run the maven build, build the image, push it",
		"  clean      remove entitlements and run the maven clean",
		"  dangling   remove local images that have no tag",
		"  zip        clean, then archive this directory to ../<dir>.zip",
		"  help       show this text",
		"",
		"Flags:",
		"  --no-push   build the image but do not push it",
		"  --no-java   skip the maven build",
		"  --no-cache  pass --no-cache to docker build",
		"  --dry-run   print external commands instead of running them",
		"  -v          verbose output",
		"",
		"Configuration is read from ./mvnship.conf (key=value lines).",
		"",
	}
	return strings.Join(lines, "\n")
}
