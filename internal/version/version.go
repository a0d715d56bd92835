package version

// version is set at build time via -ldflags "-X ...version.version=x.y.z".
var version = "dev"

// GetVersion returns the current reqwire version.
func GetVersion() string {
	return version
}
