package cmd

import "runtime/debug"

// Version is the release version of tempfile. Overridden at link time:
//
//	go build -ldflags "-X github.com/debtools/tempfile/cmd/tempfile/cmd.Version=2.1.0"
var Version = "dev"

// versionString prefers the linker-set version and falls back to module
// build info, which carries the tag for go-install builds.
func versionString() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}
