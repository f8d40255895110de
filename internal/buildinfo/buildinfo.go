package buildinfo

// Stamped via -ldflags "-X github.com/zestagio/download-service/internal/buildinfo.version=..." etc.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// BuildInfo is exposed by the debug server at /version.
var BuildInfo = struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}{
	Version:   version,
	Commit:    commit,
	BuildTime: buildTime,
}

func Version() string {
	return version
}
