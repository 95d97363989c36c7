package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/itsmostafa/pageindex/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func init() {
	if Version != "dev" {
		return
	}
	// go install builds carry the module version instead of ldflags.
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}

func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
