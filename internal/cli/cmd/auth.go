package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/connorholly11/friend-meetup/internal/cli/api"
	"github.com/connorholly11/friend-meetup/internal/cli/config"
	"github.com/connorholly11/friend-meetup/internal/cli/output"
	"github.com/spf13/cobra"
)

var flagPassword string

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var signupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := resolvePassword(cmd.InOrStdin())
		if err != nil {
			return err
		}

		var resp api.Response[api.SignupResponse]
		if err := apiClient.Post("/auth/signup", credentials{Username: args[0], Password: password}, &resp); err != nil {
			return fmt.Errorf("signing up: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Created user %s (id %d). Run \"meetup login %s\" next.", args[0], resp.Data.UserID, args[0])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Sign in and store the session token",
	Long: `Sign in with a username and password. The password is read from
--password or, when omitted, from the first line of standard input.

  meetup login alice --password s3cret
  echo s3cret | meetup login alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := resolvePassword(cmd.InOrStdin())
		if err != nil {
			return err
		}

		var resp api.Response[api.LoginResponse]
		if err := apiClient.Post("/auth/login", credentials{Username: args[0], Password: password}, &resp); err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) && apiErr.Status == 401 {
				return fmt.Errorf("login failed: %s", apiErr.Message)
			}
			return fmt.Errorf("logging in: %w", err)
		}

		cfg.SignIn(resp.Data.Token, resp.Data.User.Username, resp.Data.UserID)
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data.User)
			return nil
		}
		output.Message("Logged in as %s (id %d)", resp.Data.User.Username, resp.Data.UserID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session, keeping the server URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		// reload so a --server override is not persisted
		stored, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if !stored.HasToken() {
			output.Message("Not logged in.")
			return nil
		}

		username := stored.Session.Username
		stored.SignOut()
		if err := config.Save(stored); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		output.Message("Logged out %s.", username)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp api.Response[api.User]
		if err := apiClient.Get("/auth/me", nil, &resp); err != nil {
			return fmt.Errorf("fetching user: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.UserInfo(resp.Data)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&flagPassword, "password", "", "Password (read from stdin when omitted)")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Password (read from stdin when omitted)")
	requireSession(whoamiCmd)
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)
}

// resolvePassword prefers --password and falls back to one line of input.
func resolvePassword(in io.Reader) (string, error) {
	if flagPassword != "" {
		return flagPassword, nil
	}
	if in == nil {
		in = os.Stdin
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	return password, nil
}
