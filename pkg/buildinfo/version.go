// Package buildinfo carries the version stamp baked into drawnet
// binaries at build time.
//
// Release builds override the defaults with ldflags, for example:
//
//	go build -ldflags "-X github.com/drawnet/drawnet/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/drawnet/drawnet/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/drawnet/drawnet/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// A binary built without the flags reports the "dev" placeholders.
package buildinfo

import "fmt"

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git revision the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Template is the cobra --version output template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
