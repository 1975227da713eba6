package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Overridable at build time via -ldflags; otherwise filled from the
// binary's embedded build info.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// fillVersionFromBuildInfo populates any version field still at its default
// from the module and VCS metadata the toolchain stamps into the binary.
// Explicit -ldflags values win.
func fillVersionFromBuildInfo() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "none" {
				commit = s.Value
			}
		case "vcs.time":
			if date == "unknown" {
				date = s.Value
			}
		}
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("arrayctl %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
	},
}

func init() {
	fillVersionFromBuildInfo()
	rootCmd.AddCommand(versionCmd)
}
