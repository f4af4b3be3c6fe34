package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/okshift/internal/adjust"
	"github.com/ironsheep/okshift/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Logging goes to stderr, stdout carries the colors
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cmd := cli.NewCommand(adjust.Oklch, cli.BuildInfo{
		Name:      "oklch",
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
