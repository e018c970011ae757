package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Built     string `json:"built"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	})
}

// buildVersion reports the ldflags values, falling back to the module and
// VCS stamps the go tool embeds when they were not set.
func buildVersion() versionResult {
	res := versionResult{
		Version:   version,
		Commit:    commit,
		Built:     date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return res
	}
	if res.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		res.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && res.Commit == "none":
			res.Commit = s.Value
		case s.Key == "vcs.time" && res.Built == "unknown":
			res.Built = s.Value
		}
	}
	return res
}

func runVersion() error {
	res := buildVersion()
	if jsonOut {
		return printJSON(res)
	}
	printInfo("flexbctl %s\n", res.Version)
	printInfo("  commit: %s\n", res.Commit)
	printInfo("  built: %s\n", res.Built)
	printInfo("  go: %s %s\n", res.GoVersion, res.Platform)
	return nil
}
