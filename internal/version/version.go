package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/lppm/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/lppm/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/lppm/internal/version.Date={{.Date}}
)

// Info describes the build in one line per field
func Info() []string {
	return []string{
		"lppm version " + Version,
		"  commit: " + Commit,
		"  built:  " + Date,
	}
}
