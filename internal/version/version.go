package version

import "fmt"

const name = "reqparse"

// Set at build time with -ldflags "-X reqparse/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", name, Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}

// ServerToken is the product token sent in the Server response field.
func ServerToken() string {
	return name + "/" + Version
}
