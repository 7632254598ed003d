// Package version provides version information for the codeflat CLI tool.
package version

import (
	"fmt"
	"runtime"
)

// Release builds set these with -ldflags, e.g.
// -X codeflat/pkg/version.Version=1.2.3. Local builds report "dev".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// AppName is reported in log fields and version output.
const AppName = "codeflat"

// Info is what `codeflat version` prints; Version alone is the appVersion log field.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get snapshots the build variables and the running toolchain.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the full `codeflat version` line.
func (i Info) String() string {
	return fmt.Sprintf(
		"%s version %s (commit: %s) built at %s with %s on %s",
		AppName,
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
