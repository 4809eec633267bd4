package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/connorholly11/friend-meetup/internal/cli/api"
	"github.com/connorholly11/friend-meetup/internal/cli/config"
	"github.com/spf13/cobra"
)

// sessionAnnotation marks commands that call the API as a signed-in member.
const sessionAnnotation = "meetup/session"

// serverEnv overrides the configured server when --server is not given.
const serverEnv = "MEETUP_SERVER"

var (
	flagJSON      bool
	flagServerURL string

	cfg       *config.Config
	apiClient *api.Client
)

var rootCmd = &cobra.Command{
	Use:   "meetup",
	Short: "Friend meetup CLI: plan hangouts from the terminal",
	Long: `meetup talks to a friend-meetup server so you can create groups,
invite friends, vote on activities and line up who is free and who hosts.

Get started:
  meetup signup alice          Create an account
  meetup login alice           Sign in and store a token
  meetup group create Hikers   Start a group
  meetup suggest 1 Bowling     Suggest an activity to group 1`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: connect,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "Server URL (default: $"+serverEnv+", then config, then "+config.DefaultURL+")")
}

// connect loads the stored session, picks the server and refuses
// session-only commands when nobody is signed in.
func connect(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded

	switch {
	case flagServerURL != "":
		cfg.ServerURL = flagServerURL
	case os.Getenv(serverEnv) != "":
		cfg.ServerURL = os.Getenv(serverEnv)
	}
	apiClient = api.NewClient(cfg.ServerURL, cfg.Token())

	if cmd.Annotations[sessionAnnotation] != "" && !cfg.HasToken() {
		return fmt.Errorf("not authenticated, run \"meetup login\" first")
	}
	return nil
}

func requireSession(cmds ...*cobra.Command) {
	for _, c := range cmds {
		if c.Annotations == nil {
			c.Annotations = map[string]string{}
		}
		c.Annotations[sessionAnnotation] = "required"
	}
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// parseIDArg parses a positive numeric id from a positional argument.
func parseIDArg(name, value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return uint(id), nil
}
