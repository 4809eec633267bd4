package cmd

import (
	"fmt"

	"github.com/connorholly11/friend-meetup/internal/cli/api"
	"github.com/connorholly11/friend-meetup/internal/cli/output"
	"github.com/spf13/cobra"
)

// Version is set at build time with
// -ldflags "-X github.com/connorholly11/friend-meetup/internal/cli/cmd.Version=1.2.3".
var Version = "dev"

// supportedAPIVersion is the /api revision these commands are written against.
const supportedAPIVersion = "v1"

type versionReport struct {
	CLIVersion    string `json:"cliVersion"`
	Server        string `json:"server"`
	ServerVersion string `json:"serverVersion,omitempty"`
	APIVersion    string `json:"apiVersion,omitempty"`
	Compatible    bool   `json:"compatible"`
	ServerError   string `json:"serverError,omitempty"`
}

// checkServerVersion asks the server for GET /api/version and compares its
// API revision with the one this client speaks.
func checkServerVersion(client *api.Client, server string) versionReport {
	report := versionReport{CLIVersion: Version, Server: server}

	var resp api.Response[api.VersionInfo]
	if err := client.Get("/version", nil, &resp); err != nil {
		report.ServerError = err.Error()
		return report
	}
	report.ServerVersion = resp.Data.Version
	report.APIVersion = resp.Data.APIVersion
	report.Compatible = resp.Data.APIVersion == supportedAPIVersion
	return report
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the CLI version and check the server speaks the same API",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := checkServerVersion(apiClient, cfg.ServerURL)

		if flagJSON {
			output.JSON(report)
		} else {
			var server *api.VersionInfo
			if report.ServerError == "" {
				server = &api.VersionInfo{Version: report.ServerVersion, APIVersion: report.APIVersion}
			}
			output.VersionInfo(report.CLIVersion, report.Server, server, report.Compatible)
		}

		if report.ServerError == "" && !report.Compatible {
			return fmt.Errorf("server API %q is not supported (need %q)", report.APIVersion, supportedAPIVersion)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
