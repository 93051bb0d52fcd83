package version

import "runtime/debug"

// Set at build time:
//
//	go build -ldflags="-X github.com/Makepad-fr/showroom/internal/version.Version=v0.2.0"
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
				Version = info.Main.Version
			}
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && Commit == "" && len(s.Value) >= 7 {
					Commit = s.Value[:7]
				}
			}
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}
