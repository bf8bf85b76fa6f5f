package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("pubfilter %s (commit=%s, date=%s)", Version, Commit, Date)
}

// UserAgent is sent on outbound requests unless the config overrides it.
func UserAgent() string {
	return "pubfilter/" + Version
}
