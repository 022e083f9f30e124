package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/unoconf
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of unoconf",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("unoconf %s\n", resolveVersion())
	},
}

// resolveVersion falls back to the module version when installed with
// `go install ...@vX.Y.Z` and no ldflags were given.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}
