package cmd

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/connorholly11/friend-meetup/internal/cli/api"
	"github.com/connorholly11/friend-meetup/internal/cli/output"
	"github.com/spf13/cobra"
)

var flagHostUser uint

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Offer to host and find hosts",
}

var hostSetCmd = &cobra.Command{
	Use:   "set <group-id> <day> <activity>",
	Short: "Offer to host an activity on a weekday (replaces an earlier offer for that day)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		body := map[string]string{"dayOfWeek": args[1], "activity": args[2]}
		var resp api.Response[map[string]uint]
		if err := apiClient.Put(fmt.Sprintf("/groups/%d/hosting", groupID), body, &resp); err != nil {
			return fmt.Errorf("setting hosting offer: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Hosting %s on %s in group %d", args[2], args[1], groupID)
		return nil
	},
}

var hostListCmd = &cobra.Command{
	Use:     "list <group-id>",
	Aliases: []string{"ls"},
	Short:   "List hosting offers in a group",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		params := url.Values{}
		if flagHostUser > 0 {
			params.Set("userId", strconv.FormatUint(uint64(flagHostUser), 10))
		}
		var resp api.Response[[]api.HostingOffer]
		if err := apiClient.Get(fmt.Sprintf("/groups/%d/hosting", groupID), params, &resp); err != nil {
			return fmt.Errorf("listing hosting offers: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.HostingTable(resp.Data)
		return nil
	},
}

var hostRemoveCmd = &cobra.Command{
	Use:     "remove <group-id> <day>",
	Aliases: []string{"rm"},
	Short:   "Withdraw your hosting offer for a weekday",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		var resp api.Response[map[string]int64]
		if err := apiClient.Delete(fmt.Sprintf("/groups/%d/hosting/%s", groupID, url.PathEscape(args[1])), &resp); err != nil {
			return fmt.Errorf("removing hosting offer: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Removed hosting offer for %s", args[1])
		return nil
	},
}

var hostFindCmd = &cobra.Command{
	Use:   "find <group-id> <day> <activity>",
	Short: "Find who can host an activity on a weekday",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		params := url.Values{"day": {args[1]}, "activity": {args[2]}}
		var resp api.Response[[]uint]
		if err := apiClient.Get(fmt.Sprintf("/groups/%d/hosts", groupID), params, &resp); err != nil {
			return fmt.Errorf("finding hosts: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.UserIDs(resp.Data, "No hosts found.")
		return nil
	},
}

func init() {
	hostListCmd.Flags().UintVar(&flagHostUser, "user", 0, "Only show offers from this user id")
	requireSession(hostSetCmd, hostListCmd, hostRemoveCmd, hostFindCmd)
	hostCmd.AddCommand(hostSetCmd, hostListCmd, hostRemoveCmd, hostFindCmd)
	rootCmd.AddCommand(hostCmd)
}
