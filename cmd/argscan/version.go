package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"argscan/internal/version"
)

const versionTagline = "every token accounted for"

// versionPayload is the machine-readable form; the fingerprint fields stay
// empty unless --full is given.
type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Tagline    string `json:"tagline"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include git and build fingerprints")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show argscan build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := buildVersionPayload(versionShowFull)
		switch strings.ToLower(versionFormat) {
		case "pretty":
			renderVersionPretty(cmd.OutOrStdout(), payload)
			return nil
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

// buildVersionPayload prefers the ldflags variables; when they are empty the
// fingerprints fall back to the vcs stamps the Go toolchain embeds.
func buildVersionPayload(full bool) versionPayload {
	p := versionPayload{
		Tool:    "argscan",
		Version: strings.TrimSpace(version.Version),
		Tagline: versionTagline,
	}
	if p.Version == "" {
		p.Version = "dev"
	}
	if !full {
		return p
	}

	p.GitCommit = strings.TrimSpace(version.GitCommit)
	p.GitMessage = strings.TrimSpace(version.GitMessage)
	p.BuildDate = strings.TrimSpace(version.BuildDate)
	if p.GitCommit != "" && p.BuildDate != "" {
		return p
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if p.GitCommit == "" {
					p.GitCommit = setting.Value
				}
			case "vcs.time":
				if p.BuildDate == "" {
					p.BuildDate = setting.Value
				}
			}
		}
	}
	return p
}

func renderVersionPretty(out io.Writer, p versionPayload) {
	shown := p.Version
	if shown == version.Version {
		shown = version.Pretty()
	}
	fmt.Fprintf(out, "argscan %s - %s\n", shown, p.Tagline)

	printed := false
	for _, row := range []struct{ label, value string }{
		{"commit", p.GitCommit},
		{"message", p.GitMessage},
		{"built", p.BuildDate},
	} {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", row.label, row.value)
		printed = true
	}
	if !printed {
		fmt.Fprintln(out, "pass --full for git and build fingerprints")
	}
}
