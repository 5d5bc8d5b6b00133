// Package buildinfo carries version metadata stamped at link time via
// -ldflags "-X preplan.flightworks.org/internal/buildinfo.Version=...".
package buildinfo

var (
	Version       = "dev"
	Branch        = "unknown"
	CommitHash    = "unknown"
	CommitTime    = "unknown"
	CommitMessage = ""
	BuildTime     = "unknown"
	Dirty         = "unknown"
	Host          = "unknown"
	UserName      = ""
	UserEmail     = ""
	RemoteURL     = ""
)
