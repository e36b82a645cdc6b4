package main

import (
	"os"

	"github.com/katalvlaran/chroma/internal/cli"
)

// Build-time version metadata, injected via
// -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	os.Exit(cli.Main())
}
